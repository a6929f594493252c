package entity

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is a saved tax invoice. The customer fields are a snapshot taken at
// save time and never refreshed when the customer record changes. GrandTotal
// caches the aggregator's result for the saved items and round-off.
type Invoice struct {
	ID            uint           `gorm:"primaryKey" json:"id,string"`
	BusinessID    uint           `gorm:"not null;index" json:"business_id,string"`
	InvoiceNumber string         `gorm:"size:100;not null;index" json:"invoice_number"`
	Date          string         `gorm:"size:10;not null" json:"date"`
	DueDate       string         `gorm:"size:10" json:"due_date"`
	PONumber      string         `gorm:"size:100" json:"po_number"`
	CustomerID    *uint          `gorm:"index" json:"customer_id,omitempty,string"`
	CustomerName  string         `gorm:"size:255" json:"customer_name"`
	CustomerAddr  string         `gorm:"type:text;column:customer_address" json:"customer_address"`
	CustomerGSTIN string         `gorm:"size:20" json:"customer_gstin"`
	CustomerState string         `gorm:"size:100" json:"customer_state"`
	RoundOff      float64        `gorm:"default:0" json:"round_off"`
	GrandTotal    float64        `gorm:"default:0" json:"grand_total"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line of an invoice. Position fixes the serial number
// shown on the printed document. Taxable, CGST, SGST, IGST and Amount are
// derived from the first five value fields and rewritten on every save.
type InvoiceItem struct {
	ID          uint           `gorm:"primaryKey" json:"id,string"`
	InvoiceID   uint           `gorm:"not null;index" json:"invoice_id,string"`
	Position    int            `gorm:"not null;default:0" json:"position"`
	ProductID   *uint          `gorm:"index" json:"product_id,omitempty,string"`
	ProductName string         `gorm:"size:255" json:"product_name"`
	HSN         string         `gorm:"size:20" json:"hsn"`
	Unit        string         `gorm:"size:20;default:'Pcs'" json:"unit"`
	Qty         float64        `gorm:"not null;default:0" json:"qty"`
	Rate        float64        `gorm:"not null;default:0" json:"rate"`
	Discount    float64        `gorm:"not null;default:0" json:"discount"`
	GSTPercent  float64        `gorm:"not null;default:18" json:"gst_percent"`
	Taxable     float64        `gorm:"not null;default:0" json:"taxable"`
	CGST        float64        `gorm:"not null;default:0" json:"cgst"`
	SGST        float64        `gorm:"not null;default:0" json:"sgst"`
	IGST        float64        `gorm:"not null;default:0" json:"igst"`
	Amount      float64        `gorm:"not null;default:0" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
