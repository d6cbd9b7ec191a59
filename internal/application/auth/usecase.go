package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication flows: login, change-password and the
// startup super_admin seed.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifies email/password and issues a signed token carrying the
// principal's id, tenant and role. The lookup is by exact email equality;
// bcrypt's comparison is constant-time.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	tenantID := ""
	if user.TenantID != nil {
		tenantID = *user.TenantID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, tenantID, string(user.Role), user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Address:     user.Address,
		Role:        string(user.Role),
	}, nil
}

// ChangePassword verifies the principal's current password and replaces
// it. Only the authenticated account itself can be changed.
func (uc *AuthUseCase) ChangePassword(p access.Principal, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(p.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// SeedSuperAdmin creates the tenant-less super_admin account when absent.
// Idempotent; called once at startup with configured credentials.
func (uc *AuthUseCase) SeedSuperAdmin(email, password string) error {
	if email == "" || password == "" {
		log.Warn().Msg("super admin seed skipped: ADMIN_USER/ADMIN_PASSWORD not set")
		return nil
	}
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     nil,
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.userRepo.Create(admin)
}
