package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/internal/application/service"
	"github.com/devashishs/billmate-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard and report HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles getting dashboard stats for a business
func (h *DashboardHandler) Stats(c *gin.Context) {
	businessID, ok := parseBusinessID(c)
	if !ok {
		response.BadRequest(c, "Invalid or missing business_id")
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), businessID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// MonthlySales handles getting the monthly sales report for a business
func (h *DashboardHandler) MonthlySales(c *gin.Context) {
	businessID, ok := parseBusinessID(c)
	if !ok {
		response.BadRequest(c, "Invalid or missing business_id")
		return
	}

	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	report, err := h.dashboardService.GetMonthlySales(c.Request.Context(), businessID, months)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly sales retrieved successfully", report)
}
