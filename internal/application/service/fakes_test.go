package service

import (
	"context"
	"sort"
	"strings"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

// In-memory repository fakes. They keep the same semantics the GORM
// implementations have (copy-on-read, sequential IDs) so service tests do
// not need a database.

type fakeBusinessRepo struct {
	businesses map[uint]*entity.Business
	nextID     uint
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: map[uint]*entity.Business{}, nextID: 1}
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	b.ID = r.nextID
	r.nextID++
	clone := *b
	r.businesses[b.ID] = &clone
	return nil
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id uint) (*entity.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBusinessRepo) GetDefault(_ context.Context) (*entity.Business, error) {
	for _, b := range r.businesses {
		if b.IsDefault {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessRepo) List(_ context.Context) ([]entity.Business, error) {
	ids := make([]int, 0, len(r.businesses))
	for id := range r.businesses {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]entity.Business, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.businesses[uint(id)])
	}
	return out, nil
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *entity.Business) error {
	clone := *b
	r.businesses[b.ID] = &clone
	return nil
}

func (r *fakeBusinessRepo) Delete(_ context.Context, id uint) error {
	delete(r.businesses, id)
	return nil
}

func (r *fakeBusinessRepo) SetDefault(_ context.Context, id uint) error {
	for bid, b := range r.businesses {
		b.IsDefault = bid == id
	}
	return nil
}

func (r *fakeBusinessRepo) IncrementInvoiceSequence(_ context.Context, id uint) error {
	if b, ok := r.businesses[id]; ok {
		b.InvoiceNumberNext++
	}
	return nil
}

func (r *fakeBusinessRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.businesses)), nil
}

type fakeCustomerRepo struct {
	customers map[uint]*entity.Customer
	nextID    uint
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[uint]*entity.Customer{}, nextID: 1}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uint) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, businessID uint, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0)
	for _, c := range r.customers {
		if c.BusinessID != businessID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	clone := *c
	r.customers[c.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uint) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) CountByBusiness(_ context.Context, businessID uint) (int64, error) {
	var n int64
	for _, c := range r.customers {
		if c.BusinessID == businessID {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[uint]*entity.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*entity.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uint) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(ids))
	seen := map[uint]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(_ context.Context, businessID uint, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0)
	for _, p := range r.products {
		if p.BusinessID != businessID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountByBusiness(_ context.Context, businessID uint) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.BusinessID == businessID {
			n++
		}
	}
	return n, nil
}

type fakeInvoiceRepo struct {
	invoices map[uint]*entity.Invoice
	nextID   uint
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[uint]*entity.Invoice{}, nextID: 1}
}

func cloneInvoice(in *entity.Invoice) *entity.Invoice {
	clone := *in
	clone.Items = make([]entity.InvoiceItem, len(in.Items))
	copy(clone.Items, in.Items)
	return &clone
}

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	inv.ID = r.nextID
	r.nextID++
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}
	r.invoices[inv.ID] = cloneInvoice(inv)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id uint) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(inv), nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, businessID uint, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, 0)
	for _, inv := range r.invoices {
		if inv.BusinessID == businessID {
			out = append(out, *cloneInvoice(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeInvoiceRepo) ListRecent(_ context.Context, businessID uint, limit int) ([]entity.Invoice, error) {
	all, _, _ := r.List(context.Background(), businessID, nil)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
	}
	r.invoices[inv.ID] = cloneInvoice(inv)
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id uint) error {
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) CountByBusiness(_ context.Context, businessID uint) (int64, error) {
	var n int64
	for _, inv := range r.invoices {
		if inv.BusinessID == businessID {
			n++
		}
	}
	return n, nil
}

func (r *fakeInvoiceRepo) SumGrandTotal(_ context.Context, businessID uint) (float64, error) {
	var sum float64
	for _, inv := range r.invoices {
		if inv.BusinessID == businessID {
			sum += inv.GrandTotal
		}
	}
	return sum, nil
}

func (r *fakeInvoiceRepo) MonthlySales(_ context.Context, businessID uint, months int) ([]repository.MonthlySales, error) {
	byMonth := map[string]*repository.MonthlySales{}
	for _, inv := range r.invoices {
		if inv.BusinessID != businessID || len(inv.Date) < 7 {
			continue
		}
		month := inv.Date[:7]
		row, ok := byMonth[month]
		if !ok {
			row = &repository.MonthlySales{Month: month}
			byMonth[month] = row
		}
		row.Invoices++
		row.Revenue += inv.GrandTotal
	}
	out := make([]repository.MonthlySales, 0, len(byMonth))
	for _, row := range byMonth {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	if len(out) > months {
		out = out[:months]
	}
	return out, nil
}

// Interface conformance checks.
var (
	_ repository.BusinessRepository = (*fakeBusinessRepo)(nil)
	_ repository.CustomerRepository = (*fakeCustomerRepo)(nil)
	_ repository.ProductRepository  = (*fakeProductRepo)(nil)
	_ repository.InvoiceRepository  = (*fakeInvoiceRepo)(nil)
)
