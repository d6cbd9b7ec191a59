package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userSortColumns maps listing sortBy fields to columns.
var userSortColumns = map[string]string{
	"id":        "u.id",
	"name":      "u.name",
	"email":     "u.email",
	"phone":     "u.phone",
	"address":   "u.address",
	"role":      "u.role",
	"createdAt": "u.created_at",
	"updatedAt": "u.updated_at",
}

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, tenant_id, name, email, phone, address, password_hash, role, created_at, updated_at`

// Create persists a new user.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, tenant_id, name, email, phone, address, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.TenantID, user.Name, user.Email, user.Phone, user.Address,
		user.PasswordHash, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by id; nil when absent.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail fetches a user by exact email equality; nil when absent.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.TenantID, &u.Name, &u.Email, &u.Phone, &u.Address,
		&u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetDetail fetches a user joined with its tenant name; nil when absent.
func (r *UserRepo) GetDetail(id string) (*repository.UserWithTenant, error) {
	query := `
		SELECT u.id, u.tenant_id, u.name, u.email, u.phone, u.address, u.role, u.created_at, u.updated_at,
		       COALESCE(t.name, '')
		FROM users u
		LEFT JOIN tenants t ON t.id = u.tenant_id
		WHERE u.id = $1`
	var row repository.UserWithTenant
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&row.User.ID, &row.User.TenantID, &row.User.Name, &row.User.Email, &row.User.Phone,
		&row.User.Address, &row.User.Role, &row.User.CreatedAt, &row.User.UpdatedAt,
		&row.TenantName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user detail: %w", err)
	}
	return &row, nil
}

// Update persists mutable user fields.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, phone = $3, address = $4, password_hash = $5, role = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Phone, user.Address, user.PasswordHash, user.Role, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List returns one page of users matching the scope plus the total match
// count before pagination. Search covers user name and tenant name; the
// scope predicate is never weakened by search.
func (r *UserRepo) List(scope access.Scope, q listing.Query) ([]repository.UserWithTenant, int, error) {
	from := ` FROM users u LEFT JOIN tenants t ON t.id = u.tenant_id`
	where := ` WHERE 1=1`
	var args []any

	if !scope.All {
		args = append(args, scope.TenantID)
		where += fmt.Sprintf(` AND u.tenant_id = $%d`, len(args))
	}
	if scope.RoleRestricted() {
		roles := make([]string, len(scope.Roles))
		for i, role := range scope.Roles {
			roles[i] = string(role)
		}
		args = append(args, roles)
		where += fmt.Sprintf(` AND u.role = ANY($%d)`, len(args))
	}
	if q.Search != "" {
		args = append(args, searchPattern(q.Search))
		where += fmt.Sprintf(` AND (u.name ILIKE $%d OR t.name ILIKE $%d)`, len(args), len(args))
	}

	var total int
	if err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	args = append(args, q.Limit, q.Offset())
	query := `
		SELECT u.id, u.tenant_id, u.name, u.email, u.phone, u.address, u.role, u.created_at, u.updated_at,
		       COALESCE(t.name, '')` +
		from + where + orderClause(userSortColumns, q, "u.id") +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []repository.UserWithTenant
	for rows.Next() {
		var row repository.UserWithTenant
		if err := rows.Scan(
			&row.User.ID, &row.User.TenantID, &row.User.Name, &row.User.Email, &row.User.Phone,
			&row.User.Address, &row.User.Role, &row.User.CreatedAt, &row.User.UpdatedAt,
			&row.TenantName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, row)
	}
	return list, total, rows.Err()
}

// ListByTenant returns every user of a tenant, id ascending.
func (r *UserRepo) ListByTenant(tenantID string) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE tenant_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list users by tenant: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.TenantID, &u.Name, &u.Email, &u.Phone, &u.Address,
			&u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete removes a user by id.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
