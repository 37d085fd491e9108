package household

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrHouseholdNotFound = errors.New("household not found")
	ErrNameRequired      = errors.New("household name is required")
	ErrInvalidInviteCode = errors.New("invalid invite code")
)

// Service handles household business logic
type Service struct {
	repo *Repository
}

// NewService creates a new household service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// newInviteCode returns a short shareable code
func newInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Create creates a household and enrolls the creator as its first member
func (s *Service) Create(ctx context.Context, creator string, req *CreateHouseholdRequest) (*Household, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	h, err := s.repo.Create(ctx, req.Name, newInviteCode())
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.AddMember(ctx, h.ID, creator); err != nil {
		return nil, err
	}
	return h, nil
}

// GetWithMembers retrieves a household and its member list
func (s *Service) GetWithMembers(ctx context.Context, id int64) (*HouseholdWithMembers, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHouseholdNotFound
	}

	members, err := s.repo.ListMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	return &HouseholdWithMembers{Household: *h, Members: members}, nil
}

// Join enrolls a user into the household matching the invite code
func (s *Service) Join(ctx context.Context, username string, req *JoinHouseholdRequest) (*Household, error) {
	code := strings.ToUpper(strings.TrimSpace(req.InviteCode))
	if code == "" {
		return nil, ErrInvalidInviteCode
	}

	h, err := s.repo.GetByInviteCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrInvalidInviteCode
	}

	if _, err := s.repo.AddMember(ctx, h.ID, username); err != nil {
		return nil, err
	}
	return h, nil
}

// Leave removes the user from the household
func (s *Service) Leave(ctx context.Context, householdID int64, username string) error {
	h, err := s.repo.GetByID(ctx, householdID)
	if err != nil {
		return err
	}
	if h == nil {
		return ErrHouseholdNotFound
	}
	return s.repo.RemoveMember(ctx, householdID, username)
}
