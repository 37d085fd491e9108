package mood

import (
	"context"
	"errors"
)

// ErrInvalidMood is returned when the logged value is off the scale
var ErrInvalidMood = errors.New("invalid mood value")

// Service handles mood business logic
type Service struct {
	repo Repository
}

// NewService creates a new mood service with the repository injected
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log validates and stores a mood entry for the user
func (s *Service) Log(ctx context.Context, username string, req *LogRequest) (*Entry, error) {
	if !req.Mood.Valid() {
		return nil, ErrInvalidMood
	}
	return s.repo.Create(ctx, &Entry{
		HouseholdID: req.HouseholdID,
		Username:    username,
		Mood:        req.Mood,
		Note:        req.Note,
	})
}

// Feed returns the household's recent mood entries
func (s *Service) Feed(ctx context.Context, householdID int64) ([]*Entry, error) {
	return s.repo.ListByHousehold(ctx, householdID, 50)
}

// Latest returns each member's most recent mood
func (s *Service) Latest(ctx context.Context, householdID int64) ([]*Entry, error) {
	return s.repo.LatestPerMember(ctx, householdID)
}
