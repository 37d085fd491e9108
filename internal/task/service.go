package task

import (
	"context"
	"errors"
	"sort"
	"time"
)

// Common errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
)

// Notifier lets the task service emit notifications without importing the
// notification package.
type Notifier interface {
	NotifyTaskAssigned(ctx context.Context, recipient, title string, taskID int64)
}

// Service handles task business logic
type Service struct {
	repo     Repository
	notifier Notifier // optional
}

// NewService creates a new task service with the repository injected
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create validates and stores a new task
func (s *Service) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	created, err := s.repo.Create(ctx, &Task{
		HouseholdID: req.HouseholdID,
		Title:       req.Title,
		Notes:       req.Notes,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && created.Assignee != "" {
		s.notifier.NotifyTaskAssigned(ctx, created.Assignee, created.Title, created.ID)
	}
	return created, nil
}

// GetByID retrieves a task
func (s *Service) GetByID(ctx context.Context, id int64) (*Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

// ListByHousehold retrieves household tasks ordered by due date, tasks with
// unparseable or missing dates last.
func (s *Service) ListByHousehold(ctx context.Context, householdID int64) ([]*Task, error) {
	tasks, err := s.repo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return parseDueDate(tasks[i].DueDate).Before(parseDueDate(tasks[j].DueDate))
	})
	return tasks, nil
}

func parseDueDate(due string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, due); err == nil {
			return t
		}
	}
	return time.Unix(1<<31-1, 0)
}

// Update applies a partial update
func (s *Service) Update(ctx context.Context, id int64, req *UpdateTaskRequest) (*Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousAssignee := t.Assignee

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	if req.Assignee != nil {
		t.Assignee = *req.Assignee
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
	}

	if t.Title == "" {
		return nil, ErrTitleRequired
	}

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}

	if s.notifier != nil && updated.Assignee != "" && updated.Assignee != previousAssignee {
		s.notifier.NotifyTaskAssigned(ctx, updated.Assignee, updated.Title, updated.ID)
	}
	return updated, nil
}

// ToggleComplete flips the task's completed flag
func (s *Service) ToggleComplete(ctx context.Context, id int64) (*Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Completed = !t.Completed
	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTaskNotFound
	}
	return updated, nil
}

// Delete removes a task
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
