package task

import (
	"context"
	"errors"
	"testing"
)

type recordingNotifier struct {
	assigned []string
}

func (n *recordingNotifier) NotifyTaskAssigned(ctx context.Context, recipient, title string, taskID int64) {
	n.assigned = append(n.assigned, recipient)
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	_, err := svc.Create(context.Background(), &CreateTaskRequest{HouseholdID: 1})
	if !errors.Is(err, ErrTitleRequired) {
		t.Errorf("Create() error = %v, want ErrTitleRequired", err)
	}
}

func TestCreateNotifiesAssignee(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewService(NewMemoryRepository(), notifier)

	_, err := svc.Create(context.Background(), &CreateTaskRequest{
		HouseholdID: 1, Title: "Take out trash", Assignee: "Sam",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(notifier.assigned) != 1 || notifier.assigned[0] != "Sam" {
		t.Errorf("assigned notifications = %v, want [Sam]", notifier.assigned)
	}
}

func TestToggleComplete(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateTaskRequest{HouseholdID: 1, Title: "Dishes"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	toggled, err := svc.ToggleComplete(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleComplete() error = %v", err)
	}
	if !toggled.Completed {
		t.Error("task should be completed after toggle")
	}

	back, err := svc.ToggleComplete(ctx, created.ID)
	if err != nil {
		t.Fatalf("ToggleComplete() error = %v", err)
	}
	if back.Completed {
		t.Error("task should be open again after second toggle")
	}
}

func TestUpdateReassignmentNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewService(NewMemoryRepository(), notifier)
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateTaskRequest{HouseholdID: 1, Title: "Vacuum", Assignee: "Sam"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newAssignee := "Jordan"
	if _, err := svc.Update(ctx, created.ID, &UpdateTaskRequest{Assignee: &newAssignee}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(notifier.assigned) != 2 || notifier.assigned[1] != "Jordan" {
		t.Errorf("assigned notifications = %v, want [Sam Jordan]", notifier.assigned)
	}
}

func TestListSortedByDueDate(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	for _, tc := range []struct{ title, due string }{
		{"later", "2025-03-01"},
		{"no date", ""},
		{"soon", "2025-01-15"},
	} {
		if _, err := svc.Create(ctx, &CreateTaskRequest{HouseholdID: 1, Title: tc.title, DueDate: tc.due}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tasks, err := svc.ListByHousehold(ctx, 1)
	if err != nil {
		t.Fatalf("ListByHousehold() error = %v", err)
	}

	got := []string{tasks[0].Title, tasks[1].Title, tasks[2].Title}
	want := []string{"soon", "later", "no date"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDeleteMissingTask(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	if err := svc.Delete(context.Background(), 99); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Delete() error = %v, want ErrTaskNotFound", err)
	}
}
