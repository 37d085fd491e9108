package household

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/middleware"
	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/response"
)

// Handler handles HTTP requests for household operations
type Handler struct {
	service *Service
}

// NewHandler creates a new household handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for household endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/join", h.Join)
	r.Get("/{id}", h.GetWithMembers)
	r.Post("/{id}/leave", h.Leave)

	return r
}

// Create handles POST /households
// @Summary      Create a household
// @Description  Create a household; the creator becomes its first member
// @Tags         households
// @Accept       json
// @Produce      json
// @Param        request body CreateHouseholdRequest true "Household creation request"
// @Success      201 {object} response.APIResponse{data=Household}
// @Failure      400 {object} response.APIResponse
// @Router       /households [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateHouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	creator, _ := middleware.GetUsername(r.Context())

	created, err := h.service.Create(r.Context(), creator, &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create household")
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Join handles POST /households/join
// @Summary      Join a household by invite code
// @Tags         households
// @Accept       json
// @Produce      json
// @Param        request body JoinHouseholdRequest true "Invite code"
// @Success      200 {object} response.APIResponse{data=Household}
// @Failure      400 {object} response.APIResponse
// @Router       /households/join [post]
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinHouseholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	username, _ := middleware.GetUsername(r.Context())

	joined, err := h.service.Join(r.Context(), username, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidInviteCode) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to join household")
		return
	}
	response.JSON(w, http.StatusOK, joined)
}

// GetWithMembers handles GET /households/{id}
// @Summary      Get a household with its members
// @Tags         households
// @Produce      json
// @Param        id path int true "Household ID"
// @Success      200 {object} response.APIResponse{data=HouseholdWithMembers}
// @Failure      404 {object} response.APIResponse
// @Router       /households/{id} [get]
func (h *Handler) GetWithMembers(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	out, err := h.service.GetWithMembers(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHouseholdNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get household")
		return
	}
	response.JSON(w, http.StatusOK, out)
}

// Leave handles POST /households/{id}/leave
// @Summary      Leave a household
// @Tags         households
// @Produce      json
// @Param        id path int true "Household ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /households/{id}/leave [post]
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	username, _ := middleware.GetUsername(r.Context())

	if err := h.service.Leave(r.Context(), id, username); err != nil {
		if errors.Is(err, ErrHouseholdNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to leave household")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "left household"})
}
