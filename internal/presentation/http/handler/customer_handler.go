package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/internal/application/service"
	"github.com/devashishs/billmate-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers of a business
func (h *CustomerHandler) List(c *gin.Context) {
	businessID, ok := parseBusinessID(c)
	if !ok {
		response.BadRequest(c, "Invalid or missing business_id")
		return
	}

	search := c.Query("search")
	params := parsePagination(c)

	result, err := h.customerService.ListCustomers(c.Request.Context(), businessID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		BusinessID string `json:"businessId" binding:"required"`
		Name       string `json:"name" binding:"required,max=255"`
		Address    string `json:"address" binding:"omitempty,max=1000"`
		GSTIN      string `json:"gstin" binding:"omitempty,max=20"`
		State      string `json:"state" binding:"omitempty,max=100"`
		Phone      string `json:"phone" binding:"omitempty,max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	businessID := parseOptionalID(req.BusinessID)
	if businessID == nil {
		response.BadRequest(c, "Invalid business ID")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		BusinessID: *businessID,
		Name:       req.Name,
		Address:    req.Address,
		GSTIN:      req.GSTIN,
		State:      req.State,
		Phone:      req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name    *string `json:"name" binding:"omitempty,max=255"`
		Address *string `json:"address" binding:"omitempty,max=1000"`
		GSTIN   *string `json:"gstin" binding:"omitempty,max=20"`
		State   *string `json:"state" binding:"omitempty,max=100"`
		Phone   *string `json:"phone" binding:"omitempty,max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &service.UpdateCustomerInput{
		Name:    req.Name,
		Address: req.Address,
		GSTIN:   req.GSTIN,
		State:   req.State,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
