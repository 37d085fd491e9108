package bill

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/middleware"
	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/response"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc, _ := newTestService()
	handler := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := middleware.WithTestUser(req.Context(), 1, "You")
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Mount("/bills", handler.Routes())

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func decodeBill(t *testing.T, resp *http.Response) *BillResponse {
	t.Helper()
	var envelope struct {
		Success bool          `json:"success"`
		Data    *BillResponse `json:"data"`
		Error   *response.APIError
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope.Data
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestCreateAndToggleOverHTTP(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/bills", CreateBillRequest{
		HouseholdID:  1,
		Title:        "Internet",
		Amount:       50,
		SplitBetween: []string{"You", "Sam"},
		SplitType:    SplitTypeEven,
		DueDate:      "2025-04-01",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	created := decodeBill(t, resp)
	if created.Payer != "You" {
		t.Errorf("payer = %q, want the authenticated creator", created.Payer)
	}
	if created.YourShare != 25 {
		t.Errorf("your_share = %v, want 25", created.YourShare)
	}

	toggleURL := fmt.Sprintf("%s/bills/%d/toggle-payment", server.URL, created.ID)
	resp = postJSON(t, toggleURL, TogglePaymentRequest{Participant: "Sam"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", resp.StatusCode)
	}
	toggled := decodeBill(t, resp)
	if toggled.Status != StatusPaid {
		t.Errorf("status = %v, want paid after the last participant settles", toggled.Status)
	}
}

func TestCreateValidationOverHTTP(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/bills", CreateBillRequest{
		HouseholdID:  1,
		Title:        "Groceries",
		Amount:       30,
		SplitBetween: []string{"You", "Sam"},
		SplitType:    SplitTypeCustom,
		CustomSplitAmounts: map[string]string{
			"You": "10",
			"Sam": "10",
		},
		DueDate: "2025-04-01",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for custom split sum mismatch", resp.StatusCode)
	}
}

func TestGetMissingBillOverHTTP(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/bills/999")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
