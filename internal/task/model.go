package task

import "time"

// Task represents a shared household chore
type Task struct {
	ID          int64     `json:"id"`
	HouseholdID int64     `json:"household_id"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes,omitempty"`
	Assignee    string    `json:"assignee,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	HouseholdID int64  `json:"household_id"`
	Title       string `json:"title"`
	Notes       string `json:"notes,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// UpdateTaskRequest is an apply-patch update: nil fields are left unchanged
type UpdateTaskRequest struct {
	Title    *string `json:"title,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Assignee *string `json:"assignee,omitempty"`
	DueDate  *string `json:"due_date,omitempty"`
}

// TaskResponse represents the response for a task
type TaskResponse struct {
	ID          int64  `json:"id"`
	HouseholdID int64  `json:"household_id"`
	Title       string `json:"title"`
	Notes       string `json:"notes,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

// ToResponse converts a Task to a TaskResponse
func (t *Task) ToResponse() *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		HouseholdID: t.HouseholdID,
		Title:       t.Title,
		Notes:       t.Notes,
		Assignee:    t.Assignee,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
