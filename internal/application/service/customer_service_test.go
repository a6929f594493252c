package service

import (
	"context"
	"testing"

	"github.com/devashishs/billmate-api/internal/domain/entity"
	"github.com/devashishs/billmate-api/pkg/pagination"
)

func customerFixture(t *testing.T) (*CustomerService, *entity.Business, *fakeCustomerRepo) {
	t.Helper()
	businessRepo := newFakeBusinessRepo()
	customerRepo := newFakeCustomerRepo()

	business := &entity.Business{Name: "Test Traders"}
	if err := businessRepo.Create(context.Background(), business); err != nil {
		t.Fatalf("create business: %v", err)
	}
	return NewCustomerService(customerRepo, businessRepo), business, customerRepo
}

func TestCreateCustomer(t *testing.T) {
	svc, business, _ := customerFixture(t)
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, &CreateCustomerInput{
		BusinessID: business.ID,
		Name:       "ABC Traders",
		State:      "Maharashtra",
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if customer.ID == 0 {
		t.Error("customer should get an ID")
	}
	if customer.BusinessID != business.ID {
		t.Errorf("BusinessID = %d, want %d", customer.BusinessID, business.ID)
	}

	if _, err := svc.CreateCustomer(ctx, &CreateCustomerInput{BusinessID: 9999, Name: "X"}); err == nil {
		t.Error("expected error for missing business")
	}
}

func TestListCustomersSearch(t *testing.T) {
	svc, business, _ := customerFixture(t)
	ctx := context.Background()

	for _, name := range []string{"ABC Traders", "XYZ Retail", "ABC Wholesale"} {
		if _, err := svc.CreateCustomer(ctx, &CreateCustomerInput{BusinessID: business.ID, Name: name}); err != nil {
			t.Fatalf("CreateCustomer: %v", err)
		}
	}

	params := &pagination.PaginationParams{Page: 1, PerPage: 10}
	result, err := svc.ListCustomers(ctx, business.ID, params, "abc")
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(result.Items) != 2 {
		t.Errorf("search results = %d, want 2", len(result.Items))
	}
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc, business, _ := customerFixture(t)
	ctx := context.Background()

	created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{
		BusinessID: business.ID,
		Name:       "ABC Traders",
		State:      "Maharashtra",
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	updated, err := svc.UpdateCustomer(ctx, created.ID, &UpdateCustomerInput{
		Phone: strPtr("9876543210"),
	})
	if err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}
	if updated.Name != "ABC Traders" || updated.State != "Maharashtra" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.Phone != "9876543210" {
		t.Errorf("Phone = %q, want 9876543210", updated.Phone)
	}
}

func TestDeleteCustomer(t *testing.T) {
	svc, business, _ := customerFixture(t)
	ctx := context.Background()

	created, err := svc.CreateCustomer(ctx, &CreateCustomerInput{BusinessID: business.ID, Name: "ABC"})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	if err := svc.DeleteCustomer(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}
	if _, err := svc.GetCustomer(ctx, created.ID); err == nil {
		t.Error("expected error getting deleted customer")
	}
	if err := svc.DeleteCustomer(ctx, created.ID); err == nil {
		t.Error("expected error deleting missing customer")
	}
}
