package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

var tenantSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// TenantRepo implements the TenantRepository port over PostgreSQL.
type TenantRepo struct {
	pool *pgxpool.Pool
}

// NewTenantRepository builds the persistence adapter for tenants.
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// Create persists a new tenant.
func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	query := `INSERT INTO tenants (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTenantAlreadyExists
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID fetches a tenant by id; nil when absent.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM tenants WHERE id = $1`, id)
}

// GetByName fetches a tenant by its unique name; nil when absent.
func (r *TenantRepo) GetByName(name string) (*entity.Tenant, error) {
	return r.getOne(`SELECT id, name, created_at, updated_at FROM tenants WHERE name = $1`, name)
}

func (r *TenantRepo) getOne(query string, arg any) (*entity.Tenant, error) {
	var t entity.Tenant
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// Update persists mutable tenant fields.
func (r *TenantRepo) Update(tenant *entity.Tenant) error {
	query := `UPDATE tenants SET name = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, tenant.ID, tenant.Name, tenant.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTenantAlreadyExists
		}
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// List returns one page of tenants plus the total match count. Search
// matches the tenant name, case-insensitively.
func (r *TenantRepo) List(q listing.Query) ([]*entity.Tenant, int, error) {
	where := ` WHERE 1=1`
	var args []any
	if q.Search != "" {
		args = append(args, searchPattern(q.Search))
		where += fmt.Sprintf(` AND name ILIKE $%d`, len(args))
	}

	var total int
	if err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM tenants`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tenants: %w", err)
	}

	args = append(args, q.Limit, q.Offset())
	query := `SELECT id, name, created_at, updated_at FROM tenants` + where +
		orderClause(tenantSortColumns, q, "id") +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}

// Delete removes a tenant by id; users and products cascade at the
// schema level.
func (r *TenantRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	return nil
}
