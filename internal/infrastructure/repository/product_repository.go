package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/pagination"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []entity.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) List(ctx context.Context, businessID uint, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error) {
	params.Validate()

	query := r.db.WithContext(ctx).Model(&entity.Product{}).Where("business_id = ?", businessID)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR hsn ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []entity.Product
	err := query.Order("name asc").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, id).Error
}

func (r *productRepository) CountByBusiness(ctx context.Context, businessID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("business_id = ?", businessID).
		Count(&count).Error
	return count, err
}
