package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/agile-students-fall2025/4-final-habita-sub000/pkg/response"
)

// Handler handles HTTP requests for task operations
type Handler struct {
	service *Service
}

// NewHandler creates a new task handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for task endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/toggle", h.ToggleComplete)

	return r
}

// Create handles POST /tasks
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body CreateTaskRequest true "Task creation request"
// @Success      201 {object} response.APIResponse{data=TaskResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create task")
		return
	}
	response.JSON(w, http.StatusCreated, t.ToResponse())
}

// List handles GET /tasks?household_id=N
// @Summary      List household tasks in due-date order
// @Tags         tasks
// @Produce      json
// @Param        household_id query int true "Household ID"
// @Success      200 {object} response.APIResponse{data=[]TaskResponse}
// @Router       /tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	householdID, err := strconv.ParseInt(r.URL.Query().Get("household_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid household ID")
		return
	}

	tasks, err := h.service.ListByHousehold(r.Context(), householdID)
	if err != nil {
		response.InternalError(w, "Failed to list tasks")
		return
	}

	out := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = t.ToResponse()
	}
	response.JSON(w, http.StatusOK, out)
}

// GetByID handles GET /tasks/{id}
// @Summary      Get task by ID
// @Tags         tasks
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {object} response.APIResponse{data=TaskResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /tasks/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get task")
		return
	}
	response.JSON(w, http.StatusOK, t.ToResponse())
}

// Update handles PATCH /tasks/{id}
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id path int true "Task ID"
// @Param        request body UpdateTaskRequest true "Fields to update"
// @Success      200 {object} response.APIResponse{data=TaskResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /tasks/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	t, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrTitleRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update task")
		return
	}
	response.JSON(w, http.StatusOK, t.ToResponse())
}

// ToggleComplete handles POST /tasks/{id}/toggle
// @Summary      Toggle a task's completed flag
// @Tags         tasks
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {object} response.APIResponse{data=TaskResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /tasks/{id}/toggle [post]
func (h *Handler) ToggleComplete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	t, err := h.service.ToggleComplete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to toggle task")
		return
	}
	response.JSON(w, http.StatusOK, t.ToResponse())
}

// Delete handles DELETE /tasks/{id}
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id path int true "Task ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /tasks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete task")
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}
