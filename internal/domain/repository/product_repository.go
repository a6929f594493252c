package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error)
	List(ctx context.Context, businessID uint, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	CountByBusiness(ctx context.Context, businessID uint) (int64, error)
}
