package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/middleware"
	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/response"
)

// Handler handles HTTP requests for mood operations
type Handler struct {
	service *Service
}

// NewHandler creates a new mood handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for mood endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Log)
	r.Get("/", h.Feed)
	r.Get("/latest", h.Latest)

	return r
}

// Log handles POST /moods
// @Summary      Log a mood for the authenticated user
// @Tags         moods
// @Accept       json
// @Produce      json
// @Param        request body LogRequest true "Mood log request"
// @Success      201 {object} response.APIResponse{data=Entry}
// @Failure      400 {object} response.APIResponse
// @Router       /moods [post]
func (h *Handler) Log(w http.ResponseWriter, r *http.Request) {
	var req LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	username, _ := middleware.GetUsername(r.Context())

	entry, err := h.service.Log(r.Context(), username, &req)
	if err != nil {
		if errors.Is(err, ErrInvalidMood) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to log mood")
		return
	}
	response.JSON(w, http.StatusCreated, entry)
}

// Feed handles GET /moods?household_id=N
// @Summary      Household mood feed, newest first
// @Tags         moods
// @Produce      json
// @Param        household_id query int true "Household ID"
// @Success      200 {object} response.APIResponse{data=[]Entry}
// @Router       /moods [get]
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	householdID, err := strconv.ParseInt(r.URL.Query().Get("household_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	entries, err := h.service.Feed(r.Context(), householdID)
	if err != nil {
		response.InternalError(w, "Failed to load mood feed")
		return
	}
	response.JSON(w, http.StatusOK, entries)
}

// Latest handles GET /moods/latest?household_id=N
// @Summary      Each member's most recent mood
// @Tags         moods
// @Produce      json
// @Param        household_id query int true "Household ID"
// @Success      200 {object} response.APIResponse{data=[]Entry}
// @Router       /moods/latest [get]
func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	householdID, err := strconv.ParseInt(r.URL.Query().Get("household_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	entries, err := h.service.Latest(r.Context(), householdID)
	if err != nil {
		response.InternalError(w, "Failed to load latest moods")
		return
	}
	response.JSON(w, http.StatusOK, entries)
}
