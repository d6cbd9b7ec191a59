package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// UserUseCase tenant-user CRUD and listing. Every operation receives the
// caller's Principal and applies the tenant scope before touching rows.
type UserUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
}

// NewUserUseCase builds the use case.
func NewUserUseCase(userRepo repository.UserRepository, mailer Mailer) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, mailer: mailer}
}

// Create provisions a user in the caller's tenant with a generated
// password delivered by mail (staff accounts get no mail). The tenant is
// taken from the principal; any tenant field in the request body is
// ignored upstream.
func (uc *UserUseCase) Create(p access.Principal, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !entity.ValidTenantRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if p.TenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	password, err := randomPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tenantID := p.TenantID
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     &tenantID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	if user.Role != entity.RoleStaff {
		uc.sendWelcome(user, password)
	}
	return toUserResponse(user), nil
}

// Update mutates name, phone, address and role. A row in another tenant
// answers like a missing row.
func (uc *UserUseCase) Update(p access.Principal, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !entity.ValidTenantRole(role) {
		return nil, domain.ErrInvalidInput
	}
	scope := access.ScopeFor(p, access.ResourceUsers)
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || !scope.AllowsTenant(user.TenantID) {
		return nil, domain.ErrUserNotFound
	}
	user.Name = in.Name
	user.Phone = in.Phone
	user.Address = in.Address
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetDetail fetches a user with its tenant, applying the caller's tenant
// predicate so cross-tenant ids are indistinguishable from absent ones.
func (uc *UserUseCase) GetDetail(p access.Principal, id string) (*dto.UserDetailResponse, error) {
	scope := access.ScopeFor(p, access.ResourceUsers)
	row, err := uc.userRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if row == nil || !scope.AllowsTenant(row.User.TenantID) {
		return nil, domain.ErrUserNotFound
	}
	return toUserDetailResponse(row), nil
}

// List returns the page of users visible to the principal: own tenant
// intersected with the AccessPolicy role subset. A staff caller gets an
// empty page, not an error.
func (uc *UserUseCase) List(p access.Principal, q listing.Query) (*dto.UserListResponse, error) {
	q = q.Normalized()
	scope := access.ScopeFor(p, access.ResourceUsers)
	if scope.Empty() {
		return &dto.UserListResponse{Data: []dto.UserDetailResponse{}, Total: 0, Page: q.Page, Limit: q.Limit}, nil
	}
	rows, total, err := uc.userRepo.List(scope, q)
	if err != nil {
		return nil, err
	}
	data := make([]dto.UserDetailResponse, 0, len(rows))
	for i := range rows {
		data = append(data, *toUserDetailResponse(&rows[i]))
	}
	return &dto.UserListResponse{Data: data, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

// Delete removes a user within the caller's tenant scope.
func (uc *UserUseCase) Delete(p access.Principal, id string) error {
	scope := access.ScopeFor(p, access.ResourceUsers)
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || !scope.AllowsTenant(user.TenantID) {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

func (uc *UserUseCase) sendWelcome(user *entity.User, password string) {
	if err := uc.mailer.Send(strings.ToLower(user.Email), LoginPasswordSubject, welcomeBody(user.Name, user.Email, password)); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("welcome mail delivery failed")
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Role:    string(u.Role),
	}
}

func toUserDetailResponse(row *repository.UserWithTenant) *dto.UserDetailResponse {
	out := &dto.UserDetailResponse{UserResponse: *toUserResponse(&row.User)}
	if row.User.TenantID != nil {
		out.Tenant = &dto.TenantRef{ID: *row.User.TenantID, Name: row.TenantName}
	}
	return out
}
