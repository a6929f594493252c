package entity

import (
	"time"

	"gorm.io/gorm"
)

// Customer is a billing recipient, scoped to one business.
type Customer struct {
	ID         uint           `gorm:"primaryKey" json:"id,string"`
	BusinessID uint           `gorm:"not null;index" json:"business_id,string"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Address    string         `gorm:"type:text" json:"address"`
	GSTIN      string         `gorm:"size:20" json:"gstin"`
	State      string         `gorm:"size:100" json:"state"`
	Phone      string         `gorm:"size:50" json:"phone"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
