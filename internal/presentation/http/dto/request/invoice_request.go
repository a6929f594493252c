package request

// InvoiceItemRequest represents one invoice line in a save request. IDs are
// sent as strings, matching how the API serializes them.
type InvoiceItemRequest struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName" binding:"omitempty,max=255"`
	HSN         string   `json:"hsn" binding:"omitempty,max=20"`
	Unit        string   `json:"unit" binding:"omitempty,max=20"`
	Qty         float64  `json:"qty"`
	Rate        float64  `json:"rate" binding:"omitempty,min=0"`
	Discount    float64  `json:"discount" binding:"omitempty,min=0"`
	GSTPercent  *float64 `json:"gstPercent" binding:"omitempty,min=0,max=100"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	BusinessID string               `json:"businessId" binding:"required"`
	Date       string               `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DueDate    string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	PONumber   string               `json:"poNumber" binding:"omitempty,max=100"`
	CustomerID string               `json:"customerId"`
	RoundOff   float64              `json:"roundOff"`
	Items      []InvoiceItemRequest `json:"items"`
}

// UpdateInvoiceRequest represents an invoice update request. Nil fields keep
// their current value. CustomerID distinguishes absent (keep) from empty
// string (detach the customer).
type UpdateInvoiceRequest struct {
	Date       *string              `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DueDate    *string              `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	PONumber   *string              `json:"poNumber" binding:"omitempty,max=100"`
	CustomerID *string              `json:"customerId"`
	RoundOff   *float64             `json:"roundOff"`
	Items      []InvoiceItemRequest `json:"items"`
}
