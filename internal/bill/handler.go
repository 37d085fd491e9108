package bill

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/middleware"
	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/response"
)

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/overview", h.Overview)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/toggle-payment", h.TogglePayment)
	r.Post("/{id}/status", h.SetStatus)

	return r
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrAmountInvalid) ||
		errors.Is(err, ErrDueDateRequired) ||
		errors.Is(err, ErrNoParticipants) ||
		errors.Is(err, ErrInvalidSplitType) ||
		errors.Is(err, ErrInvalidDirection) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrCustomSplitSum) ||
		errors.Is(err, ErrParticipantMissing)
}

// Create handles POST /bills
// @Summary      Create a new bill
// @Description  Create a bill with split configuration; payments default to unpaid except the payer
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body CreateBillRequest true "Bill creation request"
// @Success      201 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	b, err := h.service.Create(r.Context(), viewer, &req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create bill")
		return
	}

	response.JSON(w, http.StatusCreated, b.ToResponse(viewer))
}

// List handles GET /bills?household_id=N
// @Summary      List household bills
// @Description  Get all bills for a household, sorted by due date with unparseable dates last
// @Tags         bills
// @Produce      json
// @Param        household_id query int true "Household ID"
// @Success      200 {object} response.APIResponse{data=[]BillResponse}
// @Router       /bills [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	householdID, err := strconv.ParseInt(r.URL.Query().Get("household_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	bills, err := h.service.ListByHousehold(r.Context(), householdID)
	if err != nil {
		response.InternalError(w, "Failed to list bills")
		return
	}

	sorted := SortByDueDate(bills)
	out := make([]*BillResponse, len(sorted))
	for i, b := range sorted {
		out[i] = b.ToResponse(viewer)
	}
	response.JSON(w, http.StatusOK, out)
}

// Overview handles GET /bills/overview?household_id=N
// @Summary      Bills dashboard
// @Description  Summary counts, what the viewer owes, upcoming bills and who-owes-whom balances
// @Tags         bills
// @Produce      json
// @Param        household_id query int true "Household ID"
// @Success      200 {object} response.APIResponse{data=OverviewResponse}
// @Router       /bills/overview [get]
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	householdID, err := strconv.ParseInt(r.URL.Query().Get("household_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	overview, err := h.service.Overview(r.Context(), householdID, viewer)
	if err != nil {
		response.InternalError(w, "Failed to build overview")
		return
	}
	response.JSON(w, http.StatusOK, overview)
}

// GetByID handles GET /bills/{id}
// @Summary      Get bill by ID
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get bill")
		return
	}
	response.JSON(w, http.StatusOK, b.ToResponse(viewer))
}

// Update handles PATCH /bills/{id}
// @Summary      Update a bill
// @Description  Apply a partial update; split fields are re-validated before anything is written
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body UpdateBillRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	var req UpdateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	b, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update bill")
		return
	}
	response.JSON(w, http.StatusOK, b.ToResponse(viewer))
}

// TogglePayment handles POST /bills/{id}/toggle-payment
// @Summary      Toggle a participant's payment flag
// @Description  Flips the flag; when it lands on paid, that participant becomes the recorded payer
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body TogglePaymentRequest true "Participant to toggle"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id}/toggle-payment [post]
func (h *Handler) TogglePayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	var req TogglePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	b, err := h.service.TogglePayment(r.Context(), id, req.Participant)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to toggle payment")
		return
	}
	response.JSON(w, http.StatusOK, b.ToResponse(viewer))
}

// SetStatus handles POST /bills/{id}/status
// @Summary      Bulk-set a bill's settlement state
// @Description  Paid marks every participant settled; unpaid clears everyone except the payer
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id path int true "Bill ID"
// @Param        request body SetStatusRequest true "Target status"
// @Success      200 {object} response.APIResponse{data=BillResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id}/status [post]
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	b, err := h.service.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update bill status")
		return
	}
	response.JSON(w, http.StatusOK, b.ToResponse(viewer))
}

// Delete handles DELETE /bills/{id}
// @Summary      Delete a bill
// @Tags         bills
// @Produce      json
// @Param        id path int true "Bill ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /bills/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid bill ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete bill")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "bill deleted"})
}
