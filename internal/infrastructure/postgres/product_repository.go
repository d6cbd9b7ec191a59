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

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productSortColumns = map[string]string{
	"id":          "p.id",
	"name":        "p.name",
	"description": "p.description",
	"price":       "p.price",
	"createdAt":   "p.created_at",
	"updatedAt":   "p.updated_at",
}

// ProductRepo implements the ProductRepository port over PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, tenant_id, name, description, price, created_at, updated_at`

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.TenantID, product.Name, product.Description, product.Price,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by id; nil when absent.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByName fetches a product by its unique name; nil when absent.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM products WHERE name = $1`, name)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetDetail fetches a product joined with its tenant name; nil when
// absent.
func (r *ProductRepo) GetDetail(id string) (*repository.ProductWithTenant, error) {
	query := `
		SELECT p.id, p.tenant_id, p.name, p.description, p.price, p.created_at, p.updated_at, t.name
		FROM products p
		JOIN tenants t ON t.id = p.tenant_id
		WHERE p.id = $1`
	var row repository.ProductWithTenant
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&row.Product.ID, &row.Product.TenantID, &row.Product.Name, &row.Product.Description,
		&row.Product.Price, &row.Product.CreatedAt, &row.Product.UpdatedAt,
		&row.TenantName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &row, nil
}

// Update persists mutable product fields.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List returns one page of products matching the scope plus the total
// match count before pagination. Search covers product name and tenant
// name.
func (r *ProductRepo) List(scope access.Scope, q listing.Query) ([]repository.ProductWithTenant, int, error) {
	from := ` FROM products p JOIN tenants t ON t.id = p.tenant_id`
	where := ` WHERE 1=1`
	var args []any

	if !scope.All {
		args = append(args, scope.TenantID)
		where += fmt.Sprintf(` AND p.tenant_id = $%d`, len(args))
	}
	if q.Search != "" {
		args = append(args, searchPattern(q.Search))
		where += fmt.Sprintf(` AND (p.name ILIKE $%d OR t.name ILIKE $%d)`, len(args), len(args))
	}

	var total int
	if err := r.pool.QueryRow(context.Background(), `SELECT COUNT(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	args = append(args, q.Limit, q.Offset())
	query := `
		SELECT p.id, p.tenant_id, p.name, p.description, p.price, p.created_at, p.updated_at, t.name` +
		from + where + orderClause(productSortColumns, q, "p.id") +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductWithTenant
	for rows.Next() {
		var row repository.ProductWithTenant
		if err := rows.Scan(
			&row.Product.ID, &row.Product.TenantID, &row.Product.Name, &row.Product.Description,
			&row.Product.Price, &row.Product.CreatedAt, &row.Product.UpdatedAt,
			&row.TenantName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, total, rows.Err()
}

// ListByTenant returns every product of a tenant, id ascending.
func (r *ProductRepo) ListByTenant(tenantID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1 ORDER BY id ASC`
	rows, err := r.pool.Query(context.Background(), query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list products by tenant: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete removes a product by id.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
