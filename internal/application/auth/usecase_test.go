package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/jwt"
)

var testJWT = auth.JWTConfig{
	Secret:     "unit-test-secret",
	ExpMinutes: 60,
	Issuer:     "backoffice-api-test",
}

// fakeUserRepo covers only what the auth flows touch.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetDetail(string) (*repository.UserWithTenant, error) { return nil, nil }

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(access.Scope, listing.Query) ([]repository.UserWithTenant, int, error) {
	return nil, 0, nil
}

func (r *fakeUserRepo) ListByTenant(string) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func seedAccount(repo *fakeUserRepo, id, email, password string, role entity.Role, tenantID *string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	now := time.Now()
	repo.users[id] = &entity.User{
		ID:           id,
		TenantID:     tenantID,
		Name:         "Account " + id,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestLogin_IssuesTokenWithTenantAndRoleClaims(t *testing.T) {
	repo := newFakeUserRepo()
	tenantID := "t-1"
	seedAccount(repo, "u-1", "maria@acme.com", "secret123", entity.RoleManager, &tenantID)
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@acme.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", out.ID)
	assert.Equal(t, "manager", out.Role)
	require.NotEmpty(t, out.AccessToken)

	claims, err := jwt.Parse(testJWT.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "t-1", claims.TenantID)
	assert.Equal(t, "manager", claims.Role)
}

func TestLogin_SuperAdminTokenHasNoTenant(t *testing.T) {
	repo := newFakeUserRepo()
	seedAccount(repo, "u-0", "root@example.com", "secret123", entity.RoleSuperAdmin, nil)
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(dto.LoginRequest{Email: "root@example.com", Password: "secret123"})
	require.NoError(t, err)

	claims, err := jwt.Parse(testJWT.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Empty(t, claims.TenantID)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	tenantID := "t-1"
	seedAccount(repo, "u-1", "maria@acme.com", "secret123", entity.RoleManager, &tenantID)
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "maria@acme.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestChangePassword_OnlyOwnAccount(t *testing.T) {
	repo := newFakeUserRepo()
	tenantID := "t-1"
	seedAccount(repo, "u-1", "maria@acme.com", "oldpass99", entity.RoleStaff, &tenantID)
	uc := auth.NewAuthUseCase(repo, testJWT)

	p := access.Principal{UserID: "u-1", Role: entity.RoleStaff, TenantID: "t-1"}
	err := uc.ChangePassword(p, dto.ChangePasswordRequest{CurrentPassword: "oldpass99", NewPassword: "newpass99"})
	require.NoError(t, err)

	stored, _ := repo.GetByID("u-1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass99")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("oldpass99")))
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	repo := newFakeUserRepo()
	tenantID := "t-1"
	seedAccount(repo, "u-1", "maria@acme.com", "oldpass99", entity.RoleStaff, &tenantID)
	uc := auth.NewAuthUseCase(repo, testJWT)

	p := access.Principal{UserID: "u-1", Role: entity.RoleStaff, TenantID: "t-1"}
	err := uc.ChangePassword(p, dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpass99"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestChangePassword_MissingAccount(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	p := access.Principal{UserID: "gone", Role: entity.RoleStaff, TenantID: "t-1"}
	err := uc.ChangePassword(p, dto.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "y"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSeedSuperAdmin_CreatesTenantlessAccountOnce(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	require.NoError(t, uc.SeedSuperAdmin("root@example.com", "bootstrap"))
	admin, err := repo.GetByEmail("root@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleSuperAdmin, admin.Role)
	assert.Nil(t, admin.TenantID)

	// Idempotent on restart.
	require.NoError(t, uc.SeedSuperAdmin("root@example.com", "bootstrap"))
	assert.Len(t, repo.users, 1)
}

func TestSeedSuperAdmin_SkippedWithoutCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	require.NoError(t, uc.SeedSuperAdmin("", ""))
	assert.Empty(t, repo.users)
}
