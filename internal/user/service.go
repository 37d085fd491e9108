package user

import (
	"context"
	"errors"
	"strings"

	"github.com/agile-students-fall2025/4-final-habita-sub000/internal/auth"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
)

// Service handles user accounts and authentication
type Service struct {
	repo *Repository
	jwt  *auth.JWTManager
}

// NewService creates a new user service
func NewService(repo *Repository, jwt *auth.JWTManager) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Register creates an account and returns the user with a signed token
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" {
		return nil, "", ErrUsernameRequired
	}
	if email == "" {
		return nil, "", ErrEmailRequired
	}

	if existing, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrUsernameTaken
	}
	if existing, err := s.repo.GetByEmail(ctx, email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u, err := s.repo.Create(ctx, username, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.Generate(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials and returns the user with a signed token
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*User, string, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, "", err
	}
	if u == nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetByUsername retrieves a user
func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile applies a partial update to the user's profile
func (s *Service) UpdateProfile(ctx context.Context, username string, req *UpdateProfileRequest) (*User, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" {
			return nil, ErrEmailRequired
		}
		if existing, err := s.repo.GetByEmail(ctx, email); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != u.ID {
			return nil, ErrEmailTaken
		}
		u.Email = email
	}
	if req.AvatarURL != nil {
		u.AvatarURL = req.AvatarURL
	}
	if req.HouseholdID != nil {
		u.HouseholdID = req.HouseholdID
	}

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}
