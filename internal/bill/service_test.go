package bill

import (
	"context"
	"errors"
	"testing"
)

func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo, nil), repo
}

func validCreateRequest() *CreateBillRequest {
	return &CreateBillRequest{
		HouseholdID:  1,
		Title:        "Electric bill",
		Amount:       80,
		SplitBetween: []string{"Alex", "Sam", "Jordan", "You"},
		SplitType:    SplitTypeEven,
		DueDate:      "2025-02-01",
	}
}

func TestCreateDefaultsPayerToCreator(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.Create(context.Background(), "You", validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if b.Payer != "You" {
		t.Errorf("payer = %q, want creator", b.Payer)
	}
	if !b.Payments["You"] || b.Payments["Alex"] {
		t.Error("payments should default to false for everyone but the payer")
	}
	if b.Status != StatusUnpaid {
		t.Errorf("status = %v, want unpaid", b.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateBillRequest)
		wantErr error
	}{
		{"missing title", func(r *CreateBillRequest) { r.Title = "" }, ErrTitleRequired},
		{"zero amount", func(r *CreateBillRequest) { r.Amount = 0 }, ErrAmountInvalid},
		{"missing due date", func(r *CreateBillRequest) { r.DueDate = "" }, ErrDueDateRequired},
		{"no participants", func(r *CreateBillRequest) { r.SplitBetween = nil }, ErrNoParticipants},
		{"bad split type", func(r *CreateBillRequest) { r.SplitType = "weird" }, ErrInvalidSplitType},
		{"bad direction", func(r *CreateBillRequest) { r.PaymentDirection = "sideways" }, ErrInvalidDirection},
		{
			"custom split sum mismatch",
			func(r *CreateBillRequest) {
				r.SplitType = SplitTypeCustom
				r.CustomSplitAmounts = map[string]string{"Alex": "10", "Sam": "10"}
			},
			ErrCustomSplitSum,
		},
		{
			"custom split sum within epsilon passes",
			func(r *CreateBillRequest) {
				r.Amount = 45.5
				r.SplitType = SplitTypeCustom
				r.CustomSplitAmounts = map[string]string{"You": "45.5", "Jordan": "0"}
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), "You", req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrBillNotFound) {
		t.Errorf("GetByID() error = %v, want ErrBillNotFound", err)
	}
}

func TestTogglePaymentPersists(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Alex", &CreateBillRequest{
		HouseholdID: 1, Title: "Wifi", Amount: 40,
		SplitBetween: []string{"Alex", "Sam"}, SplitType: SplitTypeEven,
		DueDate: "2025-02-15",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	toggled, err := svc.TogglePayment(ctx, created.ID, "Sam")
	if err != nil {
		t.Fatalf("TogglePayment() error = %v", err)
	}
	if toggled.Status != StatusPaid {
		t.Errorf("status = %v, want paid", toggled.Status)
	}
	if toggled.Payer != "Sam" {
		t.Errorf("payer = %q, want most recent payer Sam", toggled.Payer)
	}

	stored, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !stored.Payments["Sam"] {
		t.Error("toggle was not persisted")
	}
}

func TestSetStatusValidatesInput(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetStatus(context.Background(), 1, "pending")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("SetStatus() error = %v, want ErrInvalidStatus", err)
	}
}

func TestSetStatusPaid(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Alex", validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	paid, err := svc.SetStatus(ctx, created.ID, StatusPaid)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if paid.Status != StatusPaid {
		t.Errorf("status = %v, want paid", paid.Status)
	}
	for _, p := range paid.SplitBetween {
		if !paid.Payments[p] {
			t.Errorf("%s flag = false, want true", p)
		}
	}
}

func TestUpdateAppliesPatch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Alex", validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newTitle := "Electric + internet"
	newAmount := 100.0
	updated, err := svc.Update(ctx, created.ID, &UpdateBillRequest{
		Title:  &newTitle,
		Amount: &newAmount,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != newTitle || updated.Amount != newAmount {
		t.Errorf("patch not applied: %q %v", updated.Title, updated.Amount)
	}
	if updated.DueDate != created.DueDate {
		t.Error("untouched fields should be preserved")
	}
}

func TestUpdateNewParticipantsStartUnpaid(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Alex", &CreateBillRequest{
		HouseholdID: 1, Title: "Rent", Amount: 900,
		SplitBetween: []string{"Alex"}, SplitType: SplitTypeEven,
		DueDate: "2025-02-01",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Status != StatusPaid {
		t.Fatalf("single-payer bill should start paid, got %v", created.Status)
	}

	updated, err := svc.Update(ctx, created.ID, &UpdateBillRequest{
		SplitBetween: []string{"Alex", "Sam"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Payments["Sam"] {
		t.Error("new participant should start unpaid")
	}
	if updated.Status != StatusUnpaid {
		t.Errorf("status = %v, want re-derived unpaid", updated.Status)
	}
}

func TestUpdateRejectsBadCustomSplitWithoutWriting(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Alex", validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	custom := SplitTypeCustom
	_, err = svc.Update(ctx, created.ID, &UpdateBillRequest{
		SplitType:          &custom,
		CustomSplitAmounts: map[string]string{"Alex": "1"},
	})
	if !errors.Is(err, ErrCustomSplitSum) {
		t.Fatalf("Update() error = %v, want ErrCustomSplitSum", err)
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.SplitType != SplitTypeEven {
		t.Error("rejected update must not change the stored record")
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "Alex", validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("GetByID() after delete = %v, want ErrBillNotFound", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("Delete() twice = %v, want ErrBillNotFound", err)
	}
}

func TestOverview(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "Alex", validCreateRequest()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	overview, err := svc.Overview(ctx, 1, "You")
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if overview.Summary.Total != 1 || overview.Summary.Unpaid != 1 {
		t.Errorf("summary = %+v, want one unpaid bill", overview.Summary)
	}
	if overview.YouOwe != 20 {
		t.Errorf("YouOwe = %v, want 20", overview.YouOwe)
	}
	if len(overview.Upcoming) != 1 {
		t.Errorf("upcoming = %d, want 1", len(overview.Upcoming))
	}
	if len(overview.Balances) == 0 {
		t.Error("expected at least one who-owes-whom balance")
	}
}
