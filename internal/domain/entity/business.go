package entity

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Business is one invoicing identity. Every customer, product and invoice
// belongs to exactly one business, and each business carries its own invoice
// customization and invoice number sequence.
type Business struct {
	ID        uint           `gorm:"primaryKey" json:"id,string"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   string         `gorm:"type:text" json:"address"`
	GSTIN     string         `gorm:"size:20" json:"gstin"`
	State     string         `gorm:"size:100" json:"state"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Logo      *string        `gorm:"type:text" json:"logo,omitempty"`
	IsDefault bool           `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Invoice number sequence
	InvoiceNumberPrefix      string `gorm:"size:20;default:'INV'" json:"invoice_number_prefix"`
	InvoiceNumberNext        int    `gorm:"default:1" json:"invoice_number_next"`
	InvoiceNumberIncludeYear bool   `gorm:"default:true" json:"invoice_number_include_year"`

	InvoiceSettings InvoiceSettings `gorm:"embedded;embeddedPrefix:settings_" json:"invoice_settings"`
}

// TableName returns the table name for the Business model
func (Business) TableName() string {
	return "businesses"
}

// NextInvoiceNumber formats the number the next saved invoice will get:
// {prefix}-{year}-{next:04d}, or {prefix}-{next:04d} when the year is
// excluded. Whitespace in the prefix collapses to a dash.
func (b *Business) NextInvoiceNumber(now time.Time) string {
	prefix := strings.Join(strings.Fields(b.InvoiceNumberPrefix), "-")
	if prefix == "" {
		prefix = "INV"
	}
	next := b.InvoiceNumberNext
	if next < 1 {
		next = 1
	}
	if b.InvoiceNumberIncludeYear {
		return fmt.Sprintf("%s-%d-%04d", prefix, now.Year(), next)
	}
	return fmt.Sprintf("%s-%04d", prefix, next)
}
