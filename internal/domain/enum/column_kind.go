package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ColumnKind identifies an invoice item column. The kind fixes the column's
// calculation role; only its display label is customizable per business.
type ColumnKind int

const (
	ColumnKindSr ColumnKind = iota
	ColumnKindParticulars
	ColumnKindHSN
	ColumnKindUnit
	ColumnKindQty
	ColumnKindRate
	ColumnKindDiscount
	ColumnKindTaxable
	ColumnKindCGST
	ColumnKindSGST
	ColumnKindIGST
	ColumnKindAmount
)

// ColumnKindInvalid marks a kind that failed to parse. Settings normalization
// coerces it back to a known kind by position.
const ColumnKindInvalid ColumnKind = -1

var columnKindIDs = [...]string{
	"sr", "particulars", "hsn", "unit", "qty", "rate",
	"discount", "taxable", "cgst", "sgst", "igst", "amount",
}

var columnKindRoleLabels = [...]string{
	"S.No", "Particulars", "HSN", "Unit", "Qty", "Rate",
	"Discount", "Taxable Value", "CGST", "SGST", "IGST", "Amount",
}

// AllColumnKinds returns every kind in canonical display order.
func AllColumnKinds() []ColumnKind {
	kinds := make([]ColumnKind, len(columnKindIDs))
	for i := range kinds {
		kinds[i] = ColumnKind(i)
	}
	return kinds
}

// ColumnKindFromString parses a column kind identifier.
func ColumnKindFromString(s string) (ColumnKind, bool) {
	for i, id := range columnKindIDs {
		if id == s {
			return ColumnKind(i), true
		}
	}
	return ColumnKindInvalid, false
}

// IsValid reports whether the kind is one of the known column kinds.
func (k ColumnKind) IsValid() bool {
	return k >= 0 && int(k) < len(columnKindIDs)
}

func (k ColumnKind) String() string {
	if !k.IsValid() {
		return "invalid"
	}
	return columnKindIDs[k]
}

// RoleLabel returns the immutable semantic name of the kind, used when a
// business has not set a custom display label.
func (k ColumnKind) RoleLabel() string {
	if !k.IsValid() {
		return ""
	}
	return columnKindRoleLabels[k]
}

// Numeric reports whether the column carries a monetary figure and is
// right-aligned on the printed invoice.
func (k ColumnKind) Numeric() bool {
	switch k {
	case ColumnKindRate, ColumnKindDiscount, ColumnKindTaxable,
		ColumnKindCGST, ColumnKindSGST, ColumnKindIGST, ColumnKindAmount:
		return true
	}
	return false
}

func (k ColumnKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts a column kind identifier. Unknown identifiers decode
// to ColumnKindInvalid rather than erroring so corrupted settings stay
// loadable; normalization repairs them.
func (k *ColumnKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		if kind := ColumnKind(i); kind.IsValid() {
			*k = kind
		} else {
			*k = ColumnKindInvalid
		}
		return nil
	}
	if kind, ok := ColumnKindFromString(str); ok {
		*k = kind
	} else {
		*k = ColumnKindInvalid
	}
	return nil
}

func (k ColumnKind) Value() (driver.Value, error) {
	return k.String(), nil
}

func (k *ColumnKind) Scan(value interface{}) error {
	if value == nil {
		*k = ColumnKindInvalid
		return nil
	}
	switch v := value.(type) {
	case string:
		kind, _ := ColumnKindFromString(v)
		*k = kind
	case []byte:
		kind, _ := ColumnKindFromString(string(v))
		*k = kind
	case int64:
		if kind := ColumnKind(v); kind.IsValid() {
			*k = kind
		} else {
			*k = ColumnKindInvalid
		}
	}
	return nil
}
