package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/pagination"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_items.position asc")
		}).
		First(&invoice, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, businessID uint, params *pagination.PaginationParams) ([]entity.Invoice, int64, error) {
	params.Validate()

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).Where("business_id = ?", businessID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []entity.Invoice
	err := query.Order("created_at desc").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&invoices).Error
	return invoices, total, err
}

func (r *invoiceRepository) ListRecent(ctx context.Context, businessID uint, limit int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at desc").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}

// Update saves the invoice and replaces its items wholesale: a partial item
// merge could leave stale derived figures behind.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("invoice_id = ?", invoice.ID).Delete(&entity.InvoiceItem{}).Error; err != nil {
			return err
		}
		for i := range invoice.Items {
			invoice.Items[i].ID = 0
			invoice.Items[i].InvoiceID = invoice.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(invoice).Error
	})
}

func (r *invoiceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&entity.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Invoice{}, id).Error
	})
}

func (r *invoiceRepository) CountByBusiness(ctx context.Context, businessID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}

func (r *invoiceRepository) SumGrandTotal(ctx context.Context, businessID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("business_id = ?", businessID).
		Select("COALESCE(SUM(grand_total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *invoiceRepository) MonthlySales(ctx context.Context, businessID uint, months int) ([]repository.MonthlySales, error) {
	var rows []repository.MonthlySales
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("business_id = ?", businessID).
		Select("LEFT(date, 7) AS month, COUNT(*) AS invoices, COALESCE(SUM(grand_total), 0) AS revenue").
		Group("LEFT(date, 7)").
		Order("month desc").
		Limit(months).
		Scan(&rows).Error
	return rows, err
}
