package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/pagination"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, businessID uint, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	params.Validate()

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Where("business_id = ?", businessID)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR gstin ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []entity.Customer
	err := query.Order("name asc").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&customers).Error
	return customers, total, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, id).Error
}

func (r *customerRepository) CountByBusiness(ctx context.Context, businessID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}
