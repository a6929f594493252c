package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
