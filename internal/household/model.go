package household

import "time"

// Household represents a group of roommates sharing the app
type Household struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// Member represents a user's membership in a household
type Member struct {
	ID          int64     `json:"id"`
	HouseholdID int64     `json:"household_id"`
	Username    string    `json:"username"`
	JoinedAt    time.Time `json:"joined_at"`
}

// HouseholdWithMembers combines a household with its member list
type HouseholdWithMembers struct {
	Household
	Members []*Member `json:"members"`
}

// CreateHouseholdRequest represents the request to create a household
type CreateHouseholdRequest struct {
	Name string `json:"name"`
}

// JoinHouseholdRequest represents the request to join by invite code
type JoinHouseholdRequest struct {
	InviteCode string `json:"invite_code"`
}
