package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devashishs/billmate-api/pkg/pagination"
)

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseBusinessID parses the required business_id query parameter.
func parseBusinessID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("business_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseOptionalID parses a string-encoded record ID from a request body.
// An empty string means no reference.
func parseOptionalID(s string) *uint {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

// parsePagination builds pagination params from page/per_page query values.
func parsePagination(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}
