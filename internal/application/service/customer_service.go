package service

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/apperror"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

// CustomerService handles customer-related business logic
type CustomerService struct {
	customerRepo repository.CustomerRepository
	businessRepo repository.BusinessRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, businessRepo repository.BusinessRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		businessRepo: businessRepo,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	BusinessID uint
	Name       string
	Address    string
	GSTIN      string
	State      string
	Phone      string
}

// CreateCustomer creates a customer under the given business.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	business, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}

	customer := &entity.Customer{
		BusinessID: input.BusinessID,
		Name:       input.Name,
		Address:    input.Address,
		GSTIN:      input.GSTIN,
		State:      input.State,
		Phone:      input.Phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers of a business with pagination and search
func (s *CustomerService) ListCustomers(ctx context.Context, businessID uint, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, businessID, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(customers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateCustomerInput represents the update customer input. Nil fields keep
// their current value.
type UpdateCustomerInput struct {
	Name    *string
	Address *string
	GSTIN   *string
	State   *string
	Phone   *string
}

// UpdateCustomer applies an update input to a customer. Invoices saved
// earlier keep the snapshot taken at save time.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.GSTIN != nil {
		customer.GSTIN = *input.GSTIN
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Saved invoices keep their snapshot.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}
