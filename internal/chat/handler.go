package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/middleware"
	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/response"
)

// Handler handles HTTP requests for chat operations
type Handler struct {
	service *Service
}

// NewHandler creates a new chat handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for chat endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/threads", h.CreateThread)
	r.Get("/threads", h.ListThreads)
	r.Get("/threads/{id}/messages", h.ListMessages)
	r.Post("/threads/{id}/messages", h.PostMessage)
	r.Post("/threads/{id}/read", h.MarkRead)

	return r
}

// CreateThread handles POST /chat/threads
// @Summary      Create a chat thread
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body CreateThreadRequest true "Thread creation request"
// @Success      201 {object} response.APIResponse{data=Thread}
// @Failure      400 {object} response.APIResponse
// @Router       /chat/threads [post]
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var req CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.service.CreateThread(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create thread")
		return
	}
	response.JSON(w, http.StatusCreated, t)
}

// ListThreads handles GET /chat/threads?household_id=N
// @Summary      List chat threads with unread counts
// @Tags         chat
// @Produce      json
// @Param        household_id query int true "Household ID"
// @Success      200 {object} response.APIResponse{data=[]ThreadWithUnread}
// @Router       /chat/threads [get]
func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	householdID, err := strconv.ParseInt(r.URL.Query().Get("household_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	threads, err := h.service.ListThreads(r.Context(), householdID, viewer)
	if err != nil {
		response.InternalError(w, "Failed to list threads")
		return
	}
	response.JSON(w, http.StatusOK, threads)
}

// ListMessages handles GET /chat/threads/{id}/messages
// @Summary      List a thread's messages oldest first
// @Tags         chat
// @Produce      json
// @Param        id path int true "Thread ID"
// @Success      200 {object} response.APIResponse{data=[]Message}
// @Failure      404 {object} response.APIResponse
// @Router       /chat/threads/{id}/messages [get]
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	threadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid thread ID")
		return
	}

	messages, err := h.service.ListMessages(r.Context(), threadID)
	if err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to list messages")
		return
	}
	response.JSON(w, http.StatusOK, messages)
}

// PostMessage handles POST /chat/threads/{id}/messages
// @Summary      Post a message to a thread
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id path int true "Thread ID"
// @Param        request body PostMessageRequest true "Message body"
// @Success      201 {object} response.APIResponse{data=Message}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /chat/threads/{id}/messages [post]
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	threadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid thread ID")
		return
	}

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	sender, _ := middleware.GetUsername(r.Context())

	m, err := h.service.PostMessage(r.Context(), threadID, sender, &req)
	if err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrBodyRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to post message")
		return
	}
	response.JSON(w, http.StatusCreated, m)
}

// MarkRead handles POST /chat/threads/{id}/read
// @Summary      Mark a thread as read for the viewer
// @Tags         chat
// @Produce      json
// @Param        id path int true "Thread ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /chat/threads/{id}/read [post]
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	threadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid thread ID")
		return
	}

	viewer, _ := middleware.GetUsername(r.Context())

	if err := h.service.MarkRead(r.Context(), threadID, viewer); err != nil {
		if errors.Is(err, ErrThreadNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to mark thread read")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "thread marked read"})
}
