package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/internal/application/service"
	"github.com/devashishs/billmate-api/internal/presentation/http/dto/request"
	"github.com/devashishs/billmate-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	renderService  *service.RenderService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, renderService *service.RenderService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		renderService:  renderService,
	}
}

// List handles listing invoices of a business
func (h *InvoiceHandler) List(c *gin.Context) {
	businessID, ok := parseBusinessID(c)
	if !ok {
		response.BadRequest(c, "Invalid or missing business_id")
		return
	}

	params := parsePagination(c)

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), businessID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	businessID := parseOptionalID(req.BusinessID)
	if businessID == nil {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		BusinessID: *businessID,
		Date:       req.Date,
		DueDate:    req.DueDate,
		PONumber:   req.PONumber,
		CustomerID: parseOptionalID(req.CustomerID),
		RoundOff:   req.RoundOff,
		Items:      itemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateInvoiceInput{
		Date:     req.Date,
		DueDate:  req.DueDate,
		PONumber: req.PONumber,
		RoundOff: req.RoundOff,
	}
	if req.CustomerID != nil {
		if *req.CustomerID == "" {
			input.DetachCustomer = true
		} else {
			customerID := parseOptionalID(*req.CustomerID)
			if customerID == nil {
				response.BadRequest(c, "Invalid customer ID")
				return
			}
			input.CustomerID = customerID
		}
	}
	if req.Items != nil {
		input.Items = itemInputs(req.Items)
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Print handles rendering an invoice as a printable HTML document
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	html, err := h.renderService.RenderInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// itemInputs converts request line items to service inputs
func itemInputs(items []request.InvoiceItemRequest) []service.InvoiceItemInput {
	inputs := make([]service.InvoiceItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, service.InvoiceItemInput{
			ProductID:   parseOptionalID(it.ProductID),
			ProductName: it.ProductName,
			HSN:         it.HSN,
			Unit:        it.Unit,
			Qty:         it.Qty,
			Rate:        it.Rate,
			Discount:    it.Discount,
			GSTPercent:  it.GSTPercent,
		})
	}
	return inputs
}
