package service

import (
	"context"
	"time"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/apperror"
)

// BusinessService handles business profiles, their invoice customization and
// the per-business invoice number sequence.
type BusinessService struct {
	businessRepo repository.BusinessRepository
}

// NewBusinessService creates a new business service
func NewBusinessService(businessRepo repository.BusinessRepository) *BusinessService {
	return &BusinessService{businessRepo: businessRepo}
}

// CreateBusinessInput represents the create business input
type CreateBusinessInput struct {
	Name                     string
	Address                  string
	GSTIN                    string
	State                    string
	Phone                    string
	Logo                     *string
	InvoiceNumberPrefix      string
	InvoiceNumberNext        int
	InvoiceNumberIncludeYear *bool
	InvoiceSettings          *entity.InvoiceSettings
}

// CreateBusiness creates a business with canonical invoice settings unless
// the input carries its own. The first business ever created becomes the
// default.
func (s *BusinessService) CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.Business, error) {
	count, err := s.businessRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	business := &entity.Business{
		Name:                     input.Name,
		Address:                  input.Address,
		GSTIN:                    input.GSTIN,
		State:                    input.State,
		Phone:                    input.Phone,
		Logo:                     input.Logo,
		IsDefault:                count == 0,
		InvoiceNumberPrefix:      input.InvoiceNumberPrefix,
		InvoiceNumberNext:        input.InvoiceNumberNext,
		InvoiceNumberIncludeYear: true,
	}
	if business.Name == "" {
		business.Name = "New Business"
	}
	if business.InvoiceNumberPrefix == "" {
		business.InvoiceNumberPrefix = "INV"
	}
	if business.InvoiceNumberNext < 1 {
		business.InvoiceNumberNext = 1
	}
	if input.InvoiceNumberIncludeYear != nil {
		business.InvoiceNumberIncludeYear = *input.InvoiceNumberIncludeYear
	}

	if input.InvoiceSettings != nil {
		business.InvoiceSettings = normalizeSettings(*input.InvoiceSettings)
	} else {
		business.InvoiceSettings = entity.DefaultInvoiceSettings()
	}

	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// GetBusiness retrieves a business by ID
func (s *BusinessService) GetBusiness(ctx context.Context, id uint) (*entity.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}
	return business, nil
}

// GetDefaultBusiness retrieves the default business
func (s *BusinessService) GetDefaultBusiness(ctx context.Context) (*entity.Business, error) {
	business, err := s.businessRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}
	return business, nil
}

// ListBusinesses lists all businesses
func (s *BusinessService) ListBusinesses(ctx context.Context) ([]entity.Business, error) {
	return s.businessRepo.List(ctx)
}

// UpdateBusinessInput represents the update business input. Nil fields keep
// their current value; a non-nil InvoiceSettings replaces the customization
// wholesale, lists included.
type UpdateBusinessInput struct {
	Name                     *string
	Address                  *string
	GSTIN                    *string
	State                    *string
	Phone                    *string
	Logo                     *string
	RemoveLogo               bool
	InvoiceNumberPrefix      *string
	InvoiceNumberNext        *int
	InvoiceNumberIncludeYear *bool
	InvoiceSettings          *entity.InvoiceSettings
}

// UpdateBusiness applies an update input to a business.
func (s *BusinessService) UpdateBusiness(ctx context.Context, id uint, input *UpdateBusinessInput) (*entity.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}

	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.GSTIN != nil {
		business.GSTIN = *input.GSTIN
	}
	if input.State != nil {
		business.State = *input.State
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}
	if input.RemoveLogo {
		business.Logo = nil
	} else if input.Logo != nil {
		business.Logo = input.Logo
	}
	if input.InvoiceNumberPrefix != nil && *input.InvoiceNumberPrefix != "" {
		business.InvoiceNumberPrefix = *input.InvoiceNumberPrefix
	}
	if input.InvoiceNumberNext != nil && *input.InvoiceNumberNext >= 1 {
		business.InvoiceNumberNext = *input.InvoiceNumberNext
	}
	if input.InvoiceNumberIncludeYear != nil {
		business.InvoiceNumberIncludeYear = *input.InvoiceNumberIncludeYear
	}
	if input.InvoiceSettings != nil {
		business.InvoiceSettings = normalizeSettings(*input.InvoiceSettings)
	}

	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, err
	}
	return business, nil
}

// DeleteBusiness removes a business. Invoices that reference it keep their
// saved data; nothing cascades. When the default business goes away another
// one inherits the flag.
func (s *BusinessService) DeleteBusiness(ctx context.Context, id uint) error {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if business == nil {
		return apperror.NewNotFoundError("Business")
	}

	wasDefault := business.IsDefault
	if err := s.businessRepo.Delete(ctx, id); err != nil {
		return err
	}

	if wasDefault {
		remaining, err := s.businessRepo.List(ctx)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			return s.businessRepo.SetDefault(ctx, remaining[0].ID)
		}
	}
	return nil
}

// SetDefaultBusiness marks a business as the default one.
func (s *BusinessService) SetDefaultBusiness(ctx context.Context, id uint) error {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if business == nil {
		return apperror.NewNotFoundError("Business")
	}
	return s.businessRepo.SetDefault(ctx, id)
}

// NextInvoiceNumber previews the number the next saved invoice will get.
func (s *BusinessService) NextInvoiceNumber(ctx context.Context, id uint) (string, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if business == nil {
		return "", apperror.NewNotFoundError("Business")
	}
	return business.NextInvoiceNumber(time.Now()), nil
}

// normalizeSettings repairs submitted settings so whatever is stored is
// always renderable, and empty lists fall back to the canonical defaults.
func normalizeSettings(settings entity.InvoiceSettings) entity.InvoiceSettings {
	settings.Columns = entity.NormalizeColumns(settings.Columns)
	settings.HeaderFields = settings.EffectiveHeaderFields()
	settings.SummaryRows = settings.EffectiveSummaryRows()
	return settings
}
