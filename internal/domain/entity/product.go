package entity

import (
	"time"

	"gorm.io/gorm"
)

// Product is a sellable item or service, scoped to one business. Rate and
// GSTPercent are the defaults pulled into a new invoice line; the line keeps
// its own copy afterwards.
type Product struct {
	ID         uint           `gorm:"primaryKey" json:"id,string"`
	BusinessID uint           `gorm:"not null;index" json:"business_id,string"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	HSN        string         `gorm:"size:20" json:"hsn"`
	Rate       float64        `gorm:"not null;default:0" json:"rate"`
	GSTPercent float64        `gorm:"not null;default:18" json:"gst_percent"`
	Unit       string         `gorm:"size:20;default:'Pcs'" json:"unit"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
