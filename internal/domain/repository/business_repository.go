package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
)

// BusinessRepository defines the interface for business data operations
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id uint) (*entity.Business, error)
	GetDefault(ctx context.Context) (*entity.Business, error)
	List(ctx context.Context) ([]entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
	Delete(ctx context.Context, id uint) error
	// SetDefault marks the given business as default and clears the flag on
	// every other business.
	SetDefault(ctx context.Context, id uint) error
	// IncrementInvoiceSequence advances the business's invoice counter by one.
	IncrementInvoiceSequence(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
