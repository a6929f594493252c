package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

// MonthlySales is one row of the sales report: invoices grouped by the
// YYYY-MM prefix of their date.
type MonthlySales struct {
	Month    string  `json:"month"`
	Invoices int64   `json:"invoices"`
	Revenue  float64 `json:"revenue"`
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	List(ctx context.Context, businessID uint, params *pagination.PaginationParams) ([]entity.Invoice, int64, error)
	ListRecent(ctx context.Context, businessID uint, limit int) ([]entity.Invoice, error)
	// Update persists the invoice and replaces its items wholesale.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uint) error
	CountByBusiness(ctx context.Context, businessID uint) (int64, error)
	SumGrandTotal(ctx context.Context, businessID uint) (float64, error)
	MonthlySales(ctx context.Context, businessID uint, months int) ([]MonthlySales, error)
}
