package service

import (
	"context"
	"testing"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/internal/domain/enum"
)

func TestCreateBusinessDefaults(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBusinessService(repo)
	ctx := context.Background()

	first, err := svc.CreateBusiness(ctx, &CreateBusinessInput{})
	if err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}
	if first.Name != "New Business" {
		t.Errorf("Name = %q, want New Business", first.Name)
	}
	if first.InvoiceNumberPrefix != "INV" || first.InvoiceNumberNext != 1 {
		t.Errorf("numbering defaults wrong: %+v", first)
	}
	if !first.InvoiceNumberIncludeYear {
		t.Error("IncludeYear should default to true")
	}
	if !first.IsDefault {
		t.Error("first business should become the default")
	}
	if len(first.InvoiceSettings.Columns) != 12 {
		t.Errorf("settings columns = %d, want 12", len(first.InvoiceSettings.Columns))
	}

	second, err := svc.CreateBusiness(ctx, &CreateBusinessInput{Name: "Second"})
	if err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}
	if second.IsDefault {
		t.Error("second business should not be the default")
	}
}

func TestCreateBusinessNormalizesSettings(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBusinessService(repo)

	business, err := svc.CreateBusiness(context.Background(), &CreateBusinessInput{
		Name: "Acme",
		InvoiceSettings: &entity.InvoiceSettings{
			Columns: entity.ColumnSpecList{
				{Kind: enum.ColumnKindAmount, Order: 9},
				{Kind: enum.ColumnKindInvalid, Order: 1},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}

	cols := business.InvoiceSettings.Columns
	if len(cols) != 2 {
		t.Fatalf("columns = %d, want 2", len(cols))
	}
	if cols[0].Kind != enum.ColumnKindSr {
		t.Errorf("repaired first kind = %s, want sr", cols[0].Kind)
	}
	if cols[1].Kind != enum.ColumnKindAmount || cols[1].Order != 1 {
		t.Errorf("second column wrong: %+v", cols[1])
	}
	if len(business.InvoiceSettings.HeaderFields) != 4 {
		t.Errorf("header fields = %d, want defaults", len(business.InvoiceSettings.HeaderFields))
	}
	if len(business.InvoiceSettings.SummaryRows) != 7 {
		t.Errorf("summary rows = %d, want defaults", len(business.InvoiceSettings.SummaryRows))
	}
}

func TestUpdateBusinessPartial(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBusinessService(repo)
	ctx := context.Background()

	created, err := svc.CreateBusiness(ctx, &CreateBusinessInput{Name: "Acme", State: "Karnataka"})
	if err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}

	logo := "data:image/png;base64,xxx"
	updated, err := svc.UpdateBusiness(ctx, created.ID, &UpdateBusinessInput{
		Phone: strPtr("9876543210"),
		Logo:  &logo,
	})
	if err != nil {
		t.Fatalf("UpdateBusiness: %v", err)
	}
	if updated.Name != "Acme" || updated.State != "Karnataka" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.Phone != "9876543210" || updated.Logo == nil {
		t.Errorf("updated fields not applied: %+v", updated)
	}

	cleared, err := svc.UpdateBusiness(ctx, created.ID, &UpdateBusinessInput{RemoveLogo: true})
	if err != nil {
		t.Fatalf("UpdateBusiness: %v", err)
	}
	if cleared.Logo != nil {
		t.Error("RemoveLogo should clear the logo")
	}
}

func TestDeleteBusinessReassignsDefault(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBusinessService(repo)
	ctx := context.Background()

	first, _ := svc.CreateBusiness(ctx, &CreateBusinessInput{Name: "First"})
	second, _ := svc.CreateBusiness(ctx, &CreateBusinessInput{Name: "Second"})

	if err := svc.DeleteBusiness(ctx, first.ID); err != nil {
		t.Fatalf("DeleteBusiness: %v", err)
	}

	got, err := svc.GetDefaultBusiness(ctx)
	if err != nil {
		t.Fatalf("GetDefaultBusiness: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("default = %d, want %d", got.ID, second.ID)
	}
}

func TestSetDefaultBusiness(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBusinessService(repo)
	ctx := context.Background()

	first, _ := svc.CreateBusiness(ctx, &CreateBusinessInput{Name: "First"})
	second, _ := svc.CreateBusiness(ctx, &CreateBusinessInput{Name: "Second"})

	if err := svc.SetDefaultBusiness(ctx, second.ID); err != nil {
		t.Fatalf("SetDefaultBusiness: %v", err)
	}

	a, _ := svc.GetBusiness(ctx, first.ID)
	b, _ := svc.GetBusiness(ctx, second.ID)
	if a.IsDefault || !b.IsDefault {
		t.Errorf("default flags wrong: first=%v second=%v", a.IsDefault, b.IsDefault)
	}

	if err := svc.SetDefaultBusiness(ctx, 9999); err == nil {
		t.Error("expected error for missing business")
	}
}

func TestNextInvoiceNumberPreview(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBusinessService(repo)
	ctx := context.Background()

	includeYear := false
	created, err := svc.CreateBusiness(ctx, &CreateBusinessInput{
		Name:                     "Acme",
		InvoiceNumberPrefix:      "ACM",
		InvoiceNumberNext:        25,
		InvoiceNumberIncludeYear: &includeYear,
	})
	if err != nil {
		t.Fatalf("CreateBusiness: %v", err)
	}

	number, err := svc.NextInvoiceNumber(ctx, created.ID)
	if err != nil {
		t.Fatalf("NextInvoiceNumber: %v", err)
	}
	if number != "ACM-0025" {
		t.Errorf("number = %q, want ACM-0025", number)
	}
}
