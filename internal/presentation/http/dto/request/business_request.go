package request

import "github.com/devashishs/billmate-api/internal/domain/entity"

// CreateBusinessRequest represents a business creation request
type CreateBusinessRequest struct {
	Name                     string                  `json:"name" binding:"omitempty,max=255"`
	Address                  string                  `json:"address" binding:"omitempty,max=1000"`
	GSTIN                    string                  `json:"gstin" binding:"omitempty,max=20"`
	State                    string                  `json:"state" binding:"omitempty,max=100"`
	Phone                    string                  `json:"phone" binding:"omitempty,max=20"`
	Logo                     *string                 `json:"logo"`
	InvoiceNumberPrefix      string                  `json:"invoiceNumberPrefix" binding:"omitempty,max=20"`
	InvoiceNumberNext        int                     `json:"invoiceNumberNext" binding:"omitempty,min=1"`
	InvoiceNumberIncludeYear *bool                   `json:"invoiceNumberIncludeYear"`
	InvoiceSettings          *entity.InvoiceSettings `json:"invoiceSettings"`
}

// UpdateBusinessRequest represents a business update request
type UpdateBusinessRequest struct {
	Name                     *string                 `json:"name" binding:"omitempty,max=255"`
	Address                  *string                 `json:"address" binding:"omitempty,max=1000"`
	GSTIN                    *string                 `json:"gstin" binding:"omitempty,max=20"`
	State                    *string                 `json:"state" binding:"omitempty,max=100"`
	Phone                    *string                 `json:"phone" binding:"omitempty,max=20"`
	Logo                     *string                 `json:"logo"`
	RemoveLogo               bool                    `json:"removeLogo"`
	InvoiceNumberPrefix      *string                 `json:"invoiceNumberPrefix" binding:"omitempty,max=20"`
	InvoiceNumberNext        *int                    `json:"invoiceNumberNext" binding:"omitempty,min=1"`
	InvoiceNumberIncludeYear *bool                   `json:"invoiceNumberIncludeYear"`
	InvoiceSettings          *entity.InvoiceSettings `json:"invoiceSettings"`
}
