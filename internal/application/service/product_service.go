package service

import (
	"context"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/gst"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/apperror"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

// ProductService handles product-related business logic
type ProductService struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, businessRepo repository.BusinessRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		businessRepo: businessRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	BusinessID uint
	Name       string
	HSN        string
	Rate       float64
	GSTPercent *float64
	Unit       string
}

// CreateProduct creates a product under the given business. A missing GST
// percentage defaults to the standard rate; an explicit zero stays zero.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	business, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}

	gstPercent := gst.DefaultRate
	if input.GSTPercent != nil {
		gstPercent = *input.GSTPercent
	}
	unit := input.Unit
	if unit == "" {
		unit = "Pcs"
	}

	product := &entity.Product{
		BusinessID: input.BusinessID,
		Name:       input.Name,
		HSN:        input.HSN,
		Rate:       input.Rate,
		GSTPercent: gstPercent,
		Unit:       unit,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products of a business with pagination and search
func (s *ProductService) ListProducts(ctx context.Context, businessID uint, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, businessID, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateProductInput represents the update product input. Nil fields keep
// their current value.
type UpdateProductInput struct {
	Name       *string
	HSN        *string
	Rate       *float64
	GSTPercent *float64
	Unit       *string
}

// UpdateProduct applies an update input to a product. Lines on saved
// invoices keep the rate and GST they were computed with.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.HSN != nil {
		product.HSN = *input.HSN
	}
	if input.Rate != nil {
		product.Rate = *input.Rate
	}
	if input.GSTPercent != nil {
		product.GSTPercent = *input.GSTPercent
	}
	if input.Unit != nil && *input.Unit != "" {
		product.Unit = *input.Unit
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product. Saved invoice lines keep their copy.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
