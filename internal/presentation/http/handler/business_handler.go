package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/internal/application/service"
	"github.com/devashishs/billmate-api/internal/presentation/http/dto/request"
	"github.com/devashishs/billmate-api/internal/presentation/http/dto/response"
)

// BusinessHandler handles business-related HTTP requests
type BusinessHandler struct {
	businessService *service.BusinessService
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessService *service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// List handles listing all businesses
func (h *BusinessHandler) List(c *gin.Context) {
	businesses, err := h.businessService.ListBusinesses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Businesses retrieved successfully", businesses)
}

// Create handles creating a business
func (h *BusinessHandler) Create(c *gin.Context) {
	var req request.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), &service.CreateBusinessInput{
		Name:                     req.Name,
		Address:                  req.Address,
		GSTIN:                    req.GSTIN,
		State:                    req.State,
		Phone:                    req.Phone,
		Logo:                     req.Logo,
		InvoiceNumberPrefix:      req.InvoiceNumberPrefix,
		InvoiceNumberNext:        req.InvoiceNumberNext,
		InvoiceNumberIncludeYear: req.InvoiceNumberIncludeYear,
		InvoiceSettings:          req.InvoiceSettings,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Business created successfully", business)
}

// Get handles getting a single business
func (h *BusinessHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business retrieved successfully", business)
}

// GetDefault handles getting the default business
func (h *BusinessHandler) GetDefault(c *gin.Context) {
	business, err := h.businessService.GetDefaultBusiness(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business retrieved successfully", business)
}

// Update handles updating a business
func (h *BusinessHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	var req request.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	business, err := h.businessService.UpdateBusiness(c.Request.Context(), id, &service.UpdateBusinessInput{
		Name:                     req.Name,
		Address:                  req.Address,
		GSTIN:                    req.GSTIN,
		State:                    req.State,
		Phone:                    req.Phone,
		Logo:                     req.Logo,
		RemoveLogo:               req.RemoveLogo,
		InvoiceNumberPrefix:      req.InvoiceNumberPrefix,
		InvoiceNumberNext:        req.InvoiceNumberNext,
		InvoiceNumberIncludeYear: req.InvoiceNumberIncludeYear,
		InvoiceSettings:          req.InvoiceSettings,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business updated successfully", business)
}

// Delete handles deleting a business
func (h *BusinessHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	if err := h.businessService.DeleteBusiness(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SetDefault handles marking a business as the default
func (h *BusinessHandler) SetDefault(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	if err := h.businessService.SetDefaultBusiness(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Default business updated successfully", business)
}

// GetSettings handles getting a business's invoice customization
func (h *BusinessHandler) GetSettings(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice settings retrieved successfully", business.InvoiceSettings)
}

// NextInvoiceNumber handles previewing the next invoice number
func (h *BusinessHandler) NextInvoiceNumber(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	number, err := h.businessService.NextInvoiceNumber(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next invoice number retrieved successfully", gin.H{"invoiceNumber": number})
}
