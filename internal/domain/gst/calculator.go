// Package gst derives GST tax figures for invoice lines and documents.
// Everything here is pure: results depend only on the arguments, and the
// arithmetic is plain float64 so repeated calls yield identical output.
package gst

import (
	"math"

	"github.com/devashishs/billmate-api/internal/domain/entity"
)

// DefaultRate is the GST percentage applied when a line does not specify one.
const DefaultRate = 18.0

// Line holds the derived figures for one invoice line.
type Line struct {
	Taxable float64
	CGST    float64
	SGST    float64
	IGST    float64
	Amount  float64
}

// ComputeLine derives the tax figures for one line. The taxable value floors
// at zero when the discount exceeds qty*rate; the inputs themselves are not
// clamped. The GST amount splits equally into CGST and SGST; IGST stays zero
// for every sale, matching the behavior invoices have always been issued
// with (changing it would change financial output for inter-state sales).
func ComputeLine(qty, rate, discount, gstPercent float64) Line {
	taxable := math.Max(0, qty*rate-discount)
	gstAmount := taxable * gstPercent / 100
	cgst := gstAmount / 2
	sgst := gstAmount / 2
	igst := 0.0
	return Line{
		Taxable: taxable,
		CGST:    cgst,
		SGST:    sgst,
		IGST:    igst,
		Amount:  taxable + cgst + sgst + igst,
	}
}

// Recompute rewrites an item's derived fields from its value fields.
func Recompute(it *entity.InvoiceItem) {
	line := ComputeLine(it.Qty, it.Rate, it.Discount, it.GSTPercent)
	it.Taxable = line.Taxable
	it.CGST = line.CGST
	it.SGST = line.SGST
	it.IGST = line.IGST
	it.Amount = line.Amount
}

// Totals holds the document-level sums for a set of invoice lines.
type Totals struct {
	Subtotal      float64
	DiscountTotal float64
	CGSTTotal     float64
	SGSTTotal     float64
	IGSTTotal     float64
	GrandTotal    float64
}

// Aggregate sums the derived fields of the given items and produces the
// grand total: the tax-inclusive sum plus the user's round-off adjustment,
// rounded to the nearest whole currency unit. The sums are independent of
// item order. No items yields zero totals with GrandTotal = round(roundOff).
func Aggregate(items []entity.InvoiceItem, roundOff float64) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.Taxable
		t.DiscountTotal += it.Discount
		t.CGSTTotal += it.CGST
		t.SGSTTotal += it.SGST
		t.IGSTTotal += it.IGST
	}
	t.GrandTotal = roundHalfUp(t.Subtotal + t.CGSTTotal + t.SGSTTotal + t.IGSTTotal + roundOff)
	return t
}

// roundHalfUp rounds to the nearest integer with halves rounding up
// (toward +inf), so a -2.5 total becomes -2, not -3.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
