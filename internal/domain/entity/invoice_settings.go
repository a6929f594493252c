package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/devashishs/billmate-api/internal/domain/enum"
)

// Header field and summary row identifiers. Unlike column kinds these carry
// no calculation role, so plain string ids are enough.
const (
	HeaderFieldInvoiceNumber = "invoiceNumber"
	HeaderFieldDate          = "date"
	HeaderFieldDueDate       = "dueDate"
	HeaderFieldPONumber      = "poNumber"

	SummaryRowSubtotal      = "subtotal"
	SummaryRowDiscountTotal = "discountTotal"
	SummaryRowCGSTTotal     = "cgstTotal"
	SummaryRowSGSTTotal     = "sgstTotal"
	SummaryRowIGSTTotal     = "igstTotal"
	SummaryRowRoundOff      = "roundOff"
	SummaryRowGrandTotal    = "grandTotal"
)

// ColumnSpec is a business's rendition of one invoice item column.
type ColumnSpec struct {
	Kind    enum.ColumnKind `json:"kind"`
	Label   string          `json:"label"`
	Visible bool            `json:"visible"`
	Order   int             `json:"order"`
}

// EffectiveLabel returns the label shown on the invoice: the custom label if
// set, otherwise the kind's role label.
func (c ColumnSpec) EffectiveLabel() string {
	if label := strings.TrimSpace(c.Label); label != "" {
		return label
	}
	return c.Kind.RoleLabel()
}

// HeaderFieldSpec is one field in the invoice header block.
type HeaderFieldSpec struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// SummaryRowSpec is one row in the invoice totals section.
type SummaryRowSpec struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// ColumnSpecList is stored as a JSONB column.
type ColumnSpecList []ColumnSpec

func (l ColumnSpecList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *ColumnSpecList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// HeaderFieldList is stored as a JSONB column.
type HeaderFieldList []HeaderFieldSpec

func (l HeaderFieldList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *HeaderFieldList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// SummaryRowList is stored as a JSONB column.
type SummaryRowList []SummaryRowSpec

func (l SummaryRowList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *SummaryRowList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return fmt.Errorf("unsupported column type %T", value)
}

// InvoiceSettings is a business's invoice customization: which columns,
// header fields and summary rows appear, their labels and order, plus the
// free-text blocks. Updates replace the three lists wholesale.
type InvoiceSettings struct {
	Columns      ColumnSpecList  `gorm:"type:jsonb" json:"columns"`
	HeaderFields HeaderFieldList `gorm:"type:jsonb" json:"header_fields"`
	SummaryRows  SummaryRowList  `gorm:"type:jsonb" json:"summary_rows"`
	ShowBillTo   bool            `gorm:"default:true" json:"show_bill_to"`
	ShowShipTo   bool            `gorm:"default:false" json:"show_ship_to"`
	ShowTerms    bool            `gorm:"default:false" json:"show_terms"`
	TermsText    string          `gorm:"type:text" json:"terms_text"`
	ShowNotes    bool            `gorm:"default:false" json:"show_notes"`
	NotesText    string          `gorm:"type:text" json:"notes_text"`
}

// DefaultColumns returns the canonical column set: all twelve kinds in
// display order, discount and IGST hidden. The result is a fresh copy.
func DefaultColumns() ColumnSpecList {
	cols := make(ColumnSpecList, 0, 12)
	for i, kind := range enum.AllColumnKinds() {
		visible := kind != enum.ColumnKindDiscount && kind != enum.ColumnKindIGST
		cols = append(cols, ColumnSpec{
			Kind:    kind,
			Label:   kind.RoleLabel(),
			Visible: visible,
			Order:   i,
		})
	}
	return cols
}

// DefaultHeaderFields returns the canonical header fields as a fresh copy.
func DefaultHeaderFields() HeaderFieldList {
	return HeaderFieldList{
		{ID: HeaderFieldInvoiceNumber, Label: "Invoice No", Visible: true},
		{ID: HeaderFieldDate, Label: "Date", Visible: true},
		{ID: HeaderFieldDueDate, Label: "Due Date", Visible: false},
		{ID: HeaderFieldPONumber, Label: "PO No", Visible: false},
	}
}

// DefaultSummaryRows returns the canonical summary rows as a fresh copy.
func DefaultSummaryRows() SummaryRowList {
	return SummaryRowList{
		{ID: SummaryRowSubtotal, Label: "Subtotal", Visible: true},
		{ID: SummaryRowDiscountTotal, Label: "Discount", Visible: false},
		{ID: SummaryRowCGSTTotal, Label: "CGST Total", Visible: true},
		{ID: SummaryRowSGSTTotal, Label: "SGST Total", Visible: true},
		{ID: SummaryRowIGSTTotal, Label: "IGST Total", Visible: false},
		{ID: SummaryRowRoundOff, Label: "Round Off", Visible: true},
		{ID: SummaryRowGrandTotal, Label: "Grand Total", Visible: true},
	}
}

// DefaultInvoiceSettings returns the settings installed on a new business.
func DefaultInvoiceSettings() InvoiceSettings {
	return InvoiceSettings{
		Columns:      DefaultColumns(),
		HeaderFields: DefaultHeaderFields(),
		SummaryRows:  DefaultSummaryRows(),
		ShowBillTo:   true,
	}
}

// NormalizeColumns repairs a column list so it is always renderable: stable
// sort by Order (ties keep input position), unknown kinds replaced by the
// canonical kind at the same position (qty once past the canonical twelve),
// Order rewritten to the final index. Columns are never dropped. The
// operation is idempotent.
func NormalizeColumns(raw ColumnSpecList) ColumnSpecList {
	if len(raw) == 0 {
		return DefaultColumns()
	}
	cols := make(ColumnSpecList, len(raw))
	copy(cols, raw)
	sort.SliceStable(cols, func(i, j int) bool {
		return cols[i].Order < cols[j].Order
	})
	canonical := enum.AllColumnKinds()
	for i := range cols {
		if !cols[i].Kind.IsValid() {
			if i < len(canonical) {
				cols[i].Kind = canonical[i]
			} else {
				cols[i].Kind = enum.ColumnKindQty
			}
		}
		cols[i].Order = i
	}
	return cols
}

// NormalizedColumns returns the settings' column list normalized, falling
// back to defaults when the list is missing.
func (s InvoiceSettings) NormalizedColumns() ColumnSpecList {
	return NormalizeColumns(s.Columns)
}

// VisibleColumns returns the normalized columns filtered to visible ones,
// order preserved.
func (s InvoiceSettings) VisibleColumns() ColumnSpecList {
	cols := s.NormalizedColumns()
	visible := make(ColumnSpecList, 0, len(cols))
	for _, c := range cols {
		if c.Visible {
			visible = append(visible, c)
		}
	}
	return visible
}

// EffectiveHeaderFields returns the header fields, defaulted when missing.
func (s InvoiceSettings) EffectiveHeaderFields() HeaderFieldList {
	if len(s.HeaderFields) == 0 {
		return DefaultHeaderFields()
	}
	return s.HeaderFields
}

// VisibleHeaderFields returns the visible header fields in order.
func (s InvoiceSettings) VisibleHeaderFields() HeaderFieldList {
	fields := s.EffectiveHeaderFields()
	visible := make(HeaderFieldList, 0, len(fields))
	for _, f := range fields {
		if f.Visible {
			visible = append(visible, f)
		}
	}
	return visible
}

// EffectiveSummaryRows returns the summary rows, defaulted when missing.
func (s InvoiceSettings) EffectiveSummaryRows() SummaryRowList {
	if len(s.SummaryRows) == 0 {
		return DefaultSummaryRows()
	}
	return s.SummaryRows
}

// VisibleSummaryRows returns the visible summary rows in order.
func (s InvoiceSettings) VisibleSummaryRows() SummaryRowList {
	rows := s.EffectiveSummaryRows()
	visible := make(SummaryRowList, 0, len(rows))
	for _, r := range rows {
		if r.Visible {
			visible = append(visible, r)
		}
	}
	return visible
}
