package service

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/apperror"
)

// DashboardService aggregates headline figures for a business.
type DashboardService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	businessRepo repository.BusinessRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		businessRepo: businessRepo,
	}
}

// DashboardStats represents the dashboard stats response
type DashboardStats struct {
	TotalInvoices  int64            `json:"totalInvoices"`
	TotalRevenue   float64          `json:"totalRevenue"`
	TotalCustomers int64            `json:"totalCustomers"`
	TotalProducts  int64            `json:"totalProducts"`
	RecentInvoices []entity.Invoice `json:"recentInvoices"`
}

// GetStats returns the dashboard stats of a business.
func (s *DashboardService) GetStats(ctx context.Context, businessID uint) (*DashboardStats, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}

	stats := &DashboardStats{}
	if stats.TotalInvoices, err = s.invoiceRepo.CountByBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.invoiceRepo.SumGrandTotal(ctx, businessID); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.customerRepo.CountByBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.productRepo.CountByBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	if stats.RecentInvoices, err = s.invoiceRepo.ListRecent(ctx, businessID, 5); err != nil {
		return nil, err
	}
	if stats.RecentInvoices == nil {
		stats.RecentInvoices = []entity.Invoice{}
	}
	return stats, nil
}

// SalesReport represents the monthly sales report response
type SalesReport struct {
	TotalRevenue float64                   `json:"totalRevenue"`
	Months       []repository.MonthlySales `json:"months"`
}

// GetMonthlySales returns per-month invoice counts and revenue for a business,
// most recent month first, together with the all-time revenue.
func (s *DashboardService) GetMonthlySales(ctx context.Context, businessID uint, months int) (*SalesReport, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}
	if months <= 0 || months > 24 {
		months = 12
	}
	sales, err := s.invoiceRepo.MonthlySales(ctx, businessID, months)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []repository.MonthlySales{}
	}
	total, err := s.invoiceRepo.SumGrandTotal(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &SalesReport{TotalRevenue: total, Months: sales}, nil
}
