package mood

import (
	"context"
	"errors"
	"testing"
)

type fakeRepository struct {
	entries []*Entry
}

func (f *fakeRepository) Create(ctx context.Context, e *Entry) (*Entry, error) {
	clone := *e
	clone.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, &clone)
	out := clone
	return &out, nil
}

func (f *fakeRepository) ListByHousehold(ctx context.Context, householdID int64, limit int) ([]*Entry, error) {
	var out []*Entry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].HouseholdID == householdID {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeRepository) LatestPerMember(ctx context.Context, householdID int64) ([]*Entry, error) {
	latest := map[string]*Entry{}
	for _, e := range f.entries {
		if e.HouseholdID == householdID {
			latest[e.Username] = e
		}
	}
	out := make([]*Entry, 0, len(latest))
	for _, e := range latest {
		out = append(out, e)
	}
	return out, nil
}

func TestLogRejectsUnknownMood(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.Log(context.Background(), "Alex", &LogRequest{HouseholdID: 1, Mood: "ecstatic"})
	if !errors.Is(err, ErrInvalidMood) {
		t.Errorf("Log() error = %v, want ErrInvalidMood", err)
	}
}

func TestLogAndLatest(t *testing.T) {
	svc := NewService(&fakeRepository{})
	ctx := context.Background()

	for _, m := range []Mood{MoodLow, MoodGreat} {
		if _, err := svc.Log(ctx, "Alex", &LogRequest{HouseholdID: 1, Mood: m}); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}

	latest, err := svc.Latest(ctx, 1)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if len(latest) != 1 {
		t.Fatalf("len = %d, want one entry per member", len(latest))
	}
	if latest[0].Mood != MoodGreat {
		t.Errorf("mood = %q, want the most recent log", latest[0].Mood)
	}
}
