package service

import (
	"context"
	"time"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/gst"
	"github.com/devashishs/billmate-api/internal/domain/repository"
	"github.com/devashishs/billmate-api/pkg/apperror"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

// InvoiceService handles invoice-related business logic. Every save recomputes
// the derived tax fields of each line and the document totals; values the
// client sends for those fields are ignored.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	businessRepo repository.BusinessRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	now          func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	businessRepo repository.BusinessRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		now:          time.Now,
	}
}

// InvoiceItemInput represents one line of an invoice being saved. GSTPercent
// is a pointer so an absent rate can default without stealing explicit zero.
type InvoiceItemInput struct {
	ProductID   *uint
	ProductName string
	HSN         string
	Unit        string
	Qty         float64
	Rate        float64
	Discount    float64
	GSTPercent  *float64
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	BusinessID uint
	Date       string
	DueDate    string
	PONumber   string
	CustomerID *uint
	RoundOff   float64
	Items      []InvoiceItemInput
}

// CreateInvoice saves a new invoice: lines without a product or with zero
// quantity are dropped, the rest are computed, the customer is snapshotted,
// and the business's invoice sequence issues the number and advances.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	business, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}

	invoice := &entity.Invoice{
		BusinessID:    input.BusinessID,
		InvoiceNumber: business.NextInvoiceNumber(s.now()),
		Date:          input.Date,
		DueDate:       input.DueDate,
		PONumber:      input.PONumber,
		RoundOff:      input.RoundOff,
	}
	if invoice.Date == "" {
		invoice.Date = s.now().Format("2006-01-02")
	}

	if err := s.snapshotCustomer(ctx, invoice, input.CustomerID); err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	invoice.GrandTotal = gst.Aggregate(items, invoice.RoundOff).GrandTotal

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	if err := s.businessRepo.IncrementInvoiceSequence(ctx, business.ID); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices of a business with pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, businessID uint, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, businessID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(invoices, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateInvoiceInput represents the update invoice input. Nil fields keep
// their current value; a non-nil Items replaces the lines wholesale. The
// invoice number is opaque once issued and cannot be changed here.
type UpdateInvoiceInput struct {
	Date            *string
	DueDate         *string
	PONumber        *string
	CustomerID      *uint
	DetachCustomer  bool
	RefreshSnapshot bool
	RoundOff        *float64
	Items           []InvoiceItemInput
}

// UpdateInvoice applies an update input to an invoice and recomputes every
// derived figure.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uint, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.Date != nil {
		invoice.Date = *input.Date
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.PONumber != nil {
		invoice.PONumber = *input.PONumber
	}
	if input.DetachCustomer {
		if err := s.snapshotCustomer(ctx, invoice, nil); err != nil {
			return nil, err
		}
	} else if input.CustomerID != nil || input.RefreshSnapshot {
		customerID := invoice.CustomerID
		if input.CustomerID != nil {
			customerID = input.CustomerID
		}
		if err := s.snapshotCustomer(ctx, invoice, customerID); err != nil {
			return nil, err
		}
	}
	if input.RoundOff != nil {
		invoice.RoundOff = *input.RoundOff
	}
	if input.Items != nil {
		items, err := s.buildItems(ctx, input.Items)
		if err != nil {
			return nil, err
		}
		invoice.Items = items
	} else {
		for i := range invoice.Items {
			gst.Recompute(&invoice.Items[i])
		}
	}
	invoice.GrandTotal = gst.Aggregate(invoice.Items, invoice.RoundOff).GrandTotal

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// DeleteInvoice removes an invoice and its items.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// snapshotCustomer copies the customer's identity fields onto the invoice.
// The copy is intentionally never refreshed when the customer record changes
// later. A missing customer leaves the snapshot blank rather than failing.
func (s *InvoiceService) snapshotCustomer(ctx context.Context, invoice *entity.Invoice, customerID *uint) error {
	invoice.CustomerID = customerID
	invoice.CustomerName = ""
	invoice.CustomerAddr = ""
	invoice.CustomerGSTIN = ""
	invoice.CustomerState = ""
	if customerID == nil {
		return nil
	}
	customer, err := s.customerRepo.GetByID(ctx, *customerID)
	if err != nil {
		return err
	}
	if customer != nil {
		invoice.CustomerName = customer.Name
		invoice.CustomerAddr = customer.Address
		invoice.CustomerGSTIN = customer.GSTIN
		invoice.CustomerState = customer.State
	}
	return nil
}

// buildItems turns line inputs into computed invoice items. Lines without a
// product or with qty <= 0 are skipped, matching how drafts discard unused
// rows. Product name, HSN, unit and the GST rate default from the product
// record; a deleted product leaves them as submitted.
func (s *InvoiceService) buildItems(ctx context.Context, inputs []InvoiceItemInput) ([]entity.InvoiceItem, error) {
	productIDs := make([]uint, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID != nil {
			productIDs = append(productIDs, *in.ProductID)
		}
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uint]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	items := make([]entity.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		if in.ProductID == nil || in.Qty <= 0 {
			continue
		}

		item := entity.InvoiceItem{
			Position:    len(items),
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			HSN:         in.HSN,
			Unit:        in.Unit,
			Qty:         in.Qty,
			Rate:        in.Rate,
			Discount:    in.Discount,
		}

		product := productMap[*in.ProductID]
		if product != nil {
			item.ProductName = product.Name
			if item.HSN == "" {
				item.HSN = product.HSN
			}
			if item.Unit == "" {
				item.Unit = product.Unit
			}
		}
		if item.Unit == "" {
			item.Unit = "Pcs"
		}

		switch {
		case in.GSTPercent != nil:
			item.GSTPercent = *in.GSTPercent
		case product != nil:
			item.GSTPercent = product.GSTPercent
		default:
			item.GSTPercent = gst.DefaultRate
		}

		gst.Recompute(&item)
		items = append(items, item)
	}
	return items, nil
}
