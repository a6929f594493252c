package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/devashishs/billmate-api/internal/domain/entity"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func uintPtr(v uint) *uint        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

type invoiceFixture struct {
	svc          *InvoiceService
	businessRepo *fakeBusinessRepo
	customerRepo *fakeCustomerRepo
	productRepo  *fakeProductRepo
	invoiceRepo  *fakeInvoiceRepo
	business     *entity.Business
	customer     *entity.Customer
	product      *entity.Product
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	ctx := context.Background()

	businessRepo := newFakeBusinessRepo()
	customerRepo := newFakeCustomerRepo()
	productRepo := newFakeProductRepo()
	invoiceRepo := newFakeInvoiceRepo()

	business := &entity.Business{
		Name:                     "Test Traders",
		State:                    "Maharashtra",
		InvoiceNumberPrefix:      "INV",
		InvoiceNumberNext:        1,
		InvoiceNumberIncludeYear: true,
		InvoiceSettings:          entity.DefaultInvoiceSettings(),
	}
	if err := businessRepo.Create(ctx, business); err != nil {
		t.Fatalf("create business: %v", err)
	}

	customer := &entity.Customer{
		BusinessID: business.ID,
		Name:       "ABC Traders",
		Address:    "12 Market Road",
		GSTIN:      "27AAAAA0000A1Z5",
		State:      "Maharashtra",
	}
	if err := customerRepo.Create(ctx, customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	product := &entity.Product{
		BusinessID: business.ID,
		Name:       "Product A",
		HSN:        "8471",
		Rate:       500,
		GSTPercent: 18,
		Unit:       "Pcs",
	}
	if err := productRepo.Create(ctx, product); err != nil {
		t.Fatalf("create product: %v", err)
	}

	svc := NewInvoiceService(invoiceRepo, businessRepo, customerRepo, productRepo)
	svc.now = func() time.Time {
		return time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)
	}

	return &invoiceFixture{
		svc:          svc,
		businessRepo: businessRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		invoiceRepo:  invoiceRepo,
		business:     business,
		customer:     customer,
		product:      product,
	}
}

func TestCreateInvoice(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	invoice, err := f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
		CustomerID: &f.customer.ID,
		RoundOff:   -0.5,
		Items: []InvoiceItemInput{
			{ProductID: &f.product.ID, Qty: 2, Rate: 500, Discount: 50},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if invoice.InvoiceNumber != "INV-2025-0001" {
		t.Errorf("InvoiceNumber = %q, want INV-2025-0001", invoice.InvoiceNumber)
	}
	if invoice.CustomerName != "ABC Traders" || invoice.CustomerGSTIN != "27AAAAA0000A1Z5" {
		t.Errorf("customer snapshot missing: %+v", invoice)
	}
	if len(invoice.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(invoice.Items))
	}

	item := invoice.Items[0]
	if item.ProductName != "Product A" || item.HSN != "8471" || item.Unit != "Pcs" {
		t.Errorf("product fields not filled from record: %+v", item)
	}
	if item.GSTPercent != 18 {
		t.Errorf("GSTPercent = %v, want 18 from product", item.GSTPercent)
	}
	if !almostEqual(item.Taxable, 950) || !almostEqual(item.CGST, 85.5) || !almostEqual(item.SGST, 85.5) || item.IGST != 0 {
		t.Errorf("line figures wrong: %+v", item)
	}
	// 950 + 85.5 + 85.5 - 0.5 = 1120.5, rounds up to 1121.
	if !almostEqual(invoice.GrandTotal, 1121) {
		t.Errorf("GrandTotal = %v, want 1121", invoice.GrandTotal)
	}

	// The sequence advances for the next invoice.
	business, _ := f.businessRepo.GetByID(ctx, f.business.ID)
	if business.InvoiceNumberNext != 2 {
		t.Errorf("InvoiceNumberNext = %d, want 2", business.InvoiceNumberNext)
	}
	next, err := f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-11",
	})
	if err != nil {
		t.Fatalf("second CreateInvoice: %v", err)
	}
	if next.InvoiceNumber != "INV-2025-0002" {
		t.Errorf("second InvoiceNumber = %q, want INV-2025-0002", next.InvoiceNumber)
	}
}

func TestCreateInvoiceSkipsUnusableRows(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
		Items: []InvoiceItemInput{
			{ProductID: nil, Qty: 2, Rate: 100},
			{ProductID: &f.product.ID, Qty: 0, Rate: 100},
			{ProductID: &f.product.ID, Qty: -1, Rate: 100},
			{ProductID: &f.product.ID, Qty: 1, Rate: 100},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if len(invoice.Items) != 1 {
		t.Fatalf("items = %d, want 1 (blank and zero-qty rows dropped)", len(invoice.Items))
	}
	if invoice.Items[0].Position != 0 {
		t.Errorf("Position = %d, want 0", invoice.Items[0].Position)
	}
}

func TestCreateInvoiceGSTPercentDefaults(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	// Explicit zero stays zero.
	invoice, err := f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
		Items: []InvoiceItemInput{
			{ProductID: &f.product.ID, Qty: 1, Rate: 100, GSTPercent: floatPtr(0)},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if invoice.Items[0].GSTPercent != 0 {
		t.Errorf("explicit zero GSTPercent = %v, want 0", invoice.Items[0].GSTPercent)
	}
	if !almostEqual(invoice.Items[0].Amount, 100) {
		t.Errorf("Amount = %v, want 100", invoice.Items[0].Amount)
	}

	// A reference to a product that no longer exists falls back to the
	// standard rate and keeps the submitted fields.
	invoice, err = f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
		Items: []InvoiceItemInput{
			{ProductID: uintPtr(9999), ProductName: "Gone", Qty: 1, Rate: 100},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	item := invoice.Items[0]
	if item.GSTPercent != 18 {
		t.Errorf("GSTPercent = %v, want 18 default", item.GSTPercent)
	}
	if item.ProductName != "Gone" {
		t.Errorf("ProductName = %q, want submitted name kept", item.ProductName)
	}
	if item.Unit != "Pcs" {
		t.Errorf("Unit = %q, want Pcs fallback", item.Unit)
	}
}

func TestCreateInvoiceMissingBusiness(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{BusinessID: 9999})
	if err == nil {
		t.Fatal("expected error for missing business")
	}
}

func TestUpdateInvoiceRecomputesAndKeepsNumber(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
		CustomerID: &f.customer.ID,
		Items: []InvoiceItemInput{
			{ProductID: &f.product.ID, Qty: 2, Rate: 500, Discount: 50},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	updated, err := f.svc.UpdateInvoice(ctx, created.ID, &UpdateInvoiceInput{
		Date:     strPtr("2025-04-12"),
		RoundOff: floatPtr(0),
		Items: []InvoiceItemInput{
			{ProductID: &f.product.ID, Qty: 1, Rate: 100},
		},
	})
	if err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}

	if updated.InvoiceNumber != created.InvoiceNumber {
		t.Errorf("invoice number changed on update: %q -> %q", created.InvoiceNumber, updated.InvoiceNumber)
	}
	if updated.Date != "2025-04-12" {
		t.Errorf("Date = %q, want 2025-04-12", updated.Date)
	}
	if len(updated.Items) != 1 || !almostEqual(updated.Items[0].Amount, 118) {
		t.Errorf("items not replaced and recomputed: %+v", updated.Items)
	}
	if !almostEqual(updated.GrandTotal, 118) {
		t.Errorf("GrandTotal = %v, want 118", updated.GrandTotal)
	}
	// The customer snapshot survives an update that does not touch it.
	if updated.CustomerName != "ABC Traders" {
		t.Errorf("CustomerName = %q, want ABC Traders", updated.CustomerName)
	}
}

func TestUpdateInvoiceDetachCustomer(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
		CustomerID: &f.customer.ID,
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	updated, err := f.svc.UpdateInvoice(ctx, created.ID, &UpdateInvoiceInput{DetachCustomer: true})
	if err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}
	if updated.CustomerID != nil || updated.CustomerName != "" {
		t.Errorf("customer not detached: %+v", updated)
	}
}

func TestSnapshotSurvivesCustomerEdits(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
		CustomerID: &f.customer.ID,
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	f.customer.Name = "Renamed Traders"
	if err := f.customerRepo.Update(ctx, f.customer); err != nil {
		t.Fatalf("update customer: %v", err)
	}

	got, err := f.svc.GetInvoice(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if got.CustomerName != "ABC Traders" {
		t.Errorf("CustomerName = %q, want snapshot ABC Traders", got.CustomerName)
	}
}

func TestDeleteInvoice(t *testing.T) {
	f := newInvoiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateInvoice(ctx, &CreateInvoiceInput{
		BusinessID: f.business.ID,
		Date:       "2025-04-10",
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if err := f.svc.DeleteInvoice(ctx, created.ID); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}
	if _, err := f.svc.GetInvoice(ctx, created.ID); err == nil {
		t.Error("expected error getting deleted invoice")
	}
	if err := f.svc.DeleteInvoice(ctx, created.ID); err == nil {
		t.Error("expected error deleting missing invoice")
	}
}
