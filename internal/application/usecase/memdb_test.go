package usecase_test

import (
	"sort"
	"strings"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/access"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/listing"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// In-memory repository fakes with the same contract as the postgres
// implementations: scope and search filters, total counted before paging,
// id ascending as the stable order.

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type fakeUserRepo struct {
	users       map[string]*entity.User
	tenantNames map[string]string
	createErr   error
	listCalls   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}, tenantNames: map[string]string{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
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

func (r *fakeUserRepo) GetDetail(id string) (*repository.UserWithTenant, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	row := repository.UserWithTenant{User: *u}
	if u.TenantID != nil {
		row.TenantName = r.tenantNames[*u.TenantID]
	}
	return &row, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(scope access.Scope, q listing.Query) ([]repository.UserWithTenant, int, error) {
	r.listCalls++
	var rows []repository.UserWithTenant
	for _, u := range r.users {
		if !scope.AllowsTenant(u.TenantID) || !scope.AllowsRole(u.Role) {
			continue
		}
		row := repository.UserWithTenant{User: *u}
		if u.TenantID != nil {
			row.TenantName = r.tenantNames[*u.TenantID]
		}
		if q.Search != "" {
			s := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(u.Name), s) &&
				!strings.Contains(strings.ToLower(row.TenantName), s) {
				continue
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if q.Sorted() && q.SortBy == "name" && rows[i].User.Name != rows[j].User.Name {
			if q.Descending() {
				return rows[i].User.Name > rows[j].User.Name
			}
			return rows[i].User.Name < rows[j].User.Name
		}
		return rows[i].User.ID < rows[j].User.ID
	})
	total := len(rows)
	return page(rows, q), total, nil
}

func (r *fakeUserRepo) ListByTenant(tenantID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.TenantID != nil && *u.TenantID == tenantID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeTenantRepo struct {
	tenants map[string]*entity.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[string]*entity.Tenant{}}
}

func (r *fakeTenantRepo) Create(tenant *entity.Tenant) error {
	for _, t := range r.tenants {
		if t.Name == tenant.Name {
			return domain.ErrTenantAlreadyExists
		}
	}
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTenantRepo) GetByName(name string) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantRepo) Update(tenant *entity.Tenant) error {
	cp := *tenant
	r.tenants[tenant.ID] = &cp
	return nil
}

func (r *fakeTenantRepo) List(q listing.Query) ([]*entity.Tenant, int, error) {
	var rows []*entity.Tenant
	for _, t := range r.tenants {
		if q.Search != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(q.Search)) {
			continue
		}
		cp := *t
		rows = append(rows, &cp)
	}
	sort.Slice(rows, func(i, j int) bool {
		if q.Sorted() && q.SortBy == "name" && rows[i].Name != rows[j].Name {
			if q.Descending() {
				return rows[i].Name > rows[j].Name
			}
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})
	total := len(rows)
	return page(rows, q), total, nil
}

func (r *fakeTenantRepo) Delete(id string) error {
	delete(r.tenants, id)
	return nil
}

type fakeProductRepo struct {
	products    map[string]*entity.Product
	tenantNames map[string]string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}, tenantNames: map[string]string{}}
}

func (r *fakeProductRepo) Create(product *entity.Product) error {
	for _, p := range r.products {
		if p.Name == product.Name {
			return domain.ErrProductAlreadyExists
		}
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetDetail(id string) (*repository.ProductWithTenant, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &repository.ProductWithTenant{Product: *p, TenantName: r.tenantNames[p.TenantID]}, nil
}

func (r *fakeProductRepo) Update(product *entity.Product) error {
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(scope access.Scope, q listing.Query) ([]repository.ProductWithTenant, int, error) {
	var rows []repository.ProductWithTenant
	for _, p := range r.products {
		tid := p.TenantID
		if !scope.AllowsTenant(&tid) {
			continue
		}
		row := repository.ProductWithTenant{Product: *p, TenantName: r.tenantNames[p.TenantID]}
		if q.Search != "" {
			s := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) &&
				!strings.Contains(strings.ToLower(row.TenantName), s) {
				continue
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if q.Sorted() && q.SortBy == "name" && rows[i].Product.Name != rows[j].Product.Name {
			if q.Descending() {
				return rows[i].Product.Name > rows[j].Product.Name
			}
			return rows[i].Product.Name < rows[j].Product.Name
		}
		return rows[i].Product.ID < rows[j].Product.ID
	})
	total := len(rows)
	return page(rows, q), total, nil
}

func (r *fakeProductRepo) ListByTenant(tenantID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.TenantID == tenantID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func page[T any](rows []T, q listing.Query) []T {
	q = q.Normalized()
	off := q.Offset()
	if off >= len(rows) {
		return nil
	}
	end := off + q.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[off:end]
}

func adminOf(tenantID string) access.Principal {
	return access.Principal{UserID: "caller-1", Role: entity.RoleAdmin, TenantID: tenantID}
}

func managerOf(tenantID string) access.Principal {
	return access.Principal{UserID: "caller-2", Role: entity.RoleManager, TenantID: tenantID}
}

func staffOf(tenantID string) access.Principal {
	return access.Principal{UserID: "caller-3", Role: entity.RoleStaff, TenantID: tenantID}
}

func superAdmin() access.Principal {
	return access.Principal{UserID: "caller-0", Role: entity.RoleSuperAdmin}
}

func strptr(s string) *string { return &s }
