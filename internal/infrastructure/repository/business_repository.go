package repository

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"gorm.io/gorm"
)

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	return r.db.WithContext(ctx).Create(business).Error
}

func (r *businessRepository) GetByID(ctx context.Context, id uint) (*entity.Business, error) {
	var business entity.Business
	err := r.db.WithContext(ctx).First(&business, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

// GetDefault returns the default business, falling back to the oldest one
// when no business carries the flag.
func (r *businessRepository) GetDefault(ctx context.Context) (*entity.Business, error) {
	var business entity.Business
	err := r.db.WithContext(ctx).Where("is_default = ?", true).First(&business).Error
	if err == gorm.ErrRecordNotFound {
		err = r.db.WithContext(ctx).Order("id asc").First(&business).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) List(ctx context.Context) ([]entity.Business, error) {
	var businesses []entity.Business
	err := r.db.WithContext(ctx).Order("id asc").Find(&businesses).Error
	return businesses, err
}

func (r *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	return r.db.WithContext(ctx).Save(business).Error
}

func (r *businessRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Business{}, id).Error
}

func (r *businessRepository) SetDefault(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Business{}).Where("is_default = ?", true).Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Business{}).Where("id = ?", id).Update("is_default", true).Error
	})
}

func (r *businessRepository) IncrementInvoiceSequence(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entity.Business{}).
		Where("id = ?", id).
		UpdateColumn("invoice_number_next", gorm.Expr("invoice_number_next + 1")).Error
}

func (r *businessRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Business{}).Count(&count).Error
	return count, err
}
