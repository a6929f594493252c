package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uint) (*entity.Customer, error)
	List(ctx context.Context, businessID uint, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uint) error
	CountByBusiness(ctx context.Context, businessID uint) (int64, error)
}
