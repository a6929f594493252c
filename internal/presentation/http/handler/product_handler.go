package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/internal/application/service"
	"github.com/devashishs/billmate-api/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products of a business
func (h *ProductHandler) List(c *gin.Context) {
	businessID, ok := parseBusinessID(c)
	if !ok {
		response.BadRequest(c, "Invalid or missing business_id")
		return
	}

	search := c.Query("search")
	params := parsePagination(c)

	result, err := h.productService.ListProducts(c.Request.Context(), businessID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		BusinessID string   `json:"businessId" binding:"required"`
		Name       string   `json:"name" binding:"required,max=255"`
		HSN        string   `json:"hsn" binding:"omitempty,max=20"`
		Rate       float64  `json:"rate" binding:"omitempty,min=0"`
		GSTPercent *float64 `json:"gstPercent" binding:"omitempty,min=0,max=100"`
		Unit       string   `json:"unit" binding:"omitempty,max=20"`
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

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		BusinessID: *businessID,
		Name:       req.Name,
		HSN:        req.HSN,
		Rate:       req.Rate,
		GSTPercent: req.GSTPercent,
		Unit:       req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req struct {
		Name       *string  `json:"name" binding:"omitempty,max=255"`
		HSN        *string  `json:"hsn" binding:"omitempty,max=20"`
		Rate       *float64 `json:"rate" binding:"omitempty,min=0"`
		GSTPercent *float64 `json:"gstPercent" binding:"omitempty,min=0,max=100"`
		Unit       *string  `json:"unit" binding:"omitempty,max=20"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:       req.Name,
		HSN:        req.HSN,
		Rate:       req.Rate,
		GSTPercent: req.GSTPercent,
		Unit:       req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
