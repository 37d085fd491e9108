package household

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles household data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new household repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new household
func (r *Repository) Create(ctx context.Context, name, inviteCode string) (*Household, error) {
	query := `
		INSERT INTO households (name, invite_code)
		VALUES ($1, $2)
		RETURNING id, name, invite_code, created_at`

	h := &Household{}
	err := r.db.QueryRowContext(ctx, query, name, inviteCode).Scan(
		&h.ID, &h.Name, &h.InviteCode, &h.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create household: %w", err)
	}
	return h, nil
}

// GetByID retrieves a household, returning (nil, nil) when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*Household, error) {
	h := &Household{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, invite_code, created_at FROM households WHERE id = $1`, id).
		Scan(&h.ID, &h.Name, &h.InviteCode, &h.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	return h, nil
}

// GetByInviteCode retrieves a household by its invite code
func (r *Repository) GetByInviteCode(ctx context.Context, code string) (*Household, error) {
	h := &Household{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, invite_code, created_at FROM households WHERE invite_code = $1`, code).
		Scan(&h.ID, &h.Name, &h.InviteCode, &h.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household by invite code: %w", err)
	}
	return h, nil
}

// AddMember adds a user to a household; adding an existing member is a no-op
func (r *Repository) AddMember(ctx context.Context, householdID int64, username string) (*Member, error) {
	query := `
		INSERT INTO household_members (household_id, username)
		VALUES ($1, $2)
		ON CONFLICT (household_id, username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, household_id, username, joined_at`

	m := &Member{}
	err := r.db.QueryRowContext(ctx, query, householdID, username).Scan(
		&m.ID, &m.HouseholdID, &m.Username, &m.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return m, nil
}

// ListMembers retrieves all members of a household
func (r *Repository) ListMembers(ctx context.Context, householdID int64) ([]*Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, household_id, username, joined_at FROM household_members WHERE household_id = $1 ORDER BY joined_at`, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.ID, &m.HouseholdID, &m.Username, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// RemoveMember removes a user from a household
func (r *Repository) RemoveMember(ctx context.Context, householdID int64, username string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM household_members WHERE household_id = $1 AND username = $2`, householdID, username); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}
