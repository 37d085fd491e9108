package bill

// CreateBillRequest represents the request to create a bill
type CreateBillRequest struct {
	HouseholdID        int64             `json:"household_id"`
	Title              string            `json:"title"`
	Description        string            `json:"description,omitempty"`
	Amount             float64           `json:"amount"`
	Payer              string            `json:"payer,omitempty"`
	SplitBetween       []string          `json:"split_between"`
	SplitType          SplitType         `json:"split_type"`
	CustomSplitAmounts map[string]string `json:"custom_split_amounts,omitempty"`
	PaymentDirection   PaymentDirection  `json:"payment_direction,omitempty"`
	DueDate            string            `json:"due_date"`
}

// UpdateBillRequest is an apply-patch update: nil fields are left unchanged
type UpdateBillRequest struct {
	Title              *string           `json:"title,omitempty"`
	Description        *string           `json:"description,omitempty"`
	Amount             *float64          `json:"amount,omitempty"`
	Payer              *string           `json:"payer,omitempty"`
	SplitBetween       []string          `json:"split_between,omitempty"`
	SplitType          *SplitType        `json:"split_type,omitempty"`
	CustomSplitAmounts map[string]string `json:"custom_split_amounts,omitempty"`
	PaymentDirection   *PaymentDirection `json:"payment_direction,omitempty"`
	DueDate            *string           `json:"due_date,omitempty"`
}

// TogglePaymentRequest identifies whose payment flag to flip
type TogglePaymentRequest struct {
	Participant string `json:"participant"`
}

// SetStatusRequest bulk-sets a bill's settlement state
type SetStatusRequest struct {
	Status Status `json:"status"`
}

// BillResponse represents the response for a bill, with the viewer's
// computed share included
type BillResponse struct {
	ID                 int64             `json:"id"`
	HouseholdID        int64             `json:"household_id"`
	Title              string            `json:"title"`
	Description        string            `json:"description,omitempty"`
	Amount             float64           `json:"amount"`
	Payer              string            `json:"payer"`
	SplitBetween       []string          `json:"split_between"`
	SplitType          SplitType         `json:"split_type"`
	CustomSplitAmounts map[string]string `json:"custom_split_amounts,omitempty"`
	PaymentDirection   PaymentDirection  `json:"payment_direction"`
	Payments           map[string]bool   `json:"payments"`
	Status             Status            `json:"status"`
	DueDate            string            `json:"due_date"`
	CreatedAt          string            `json:"created_at"`
	YourShare          float64           `json:"your_share"`
}

// ToResponse converts a Bill to a BillResponse for the given viewer
func (b *Bill) ToResponse(viewer string) *BillResponse {
	return &BillResponse{
		ID:                 b.ID,
		HouseholdID:        b.HouseholdID,
		Title:              b.Title,
		Description:        b.Description,
		Amount:             b.Amount,
		Payer:              b.Payer,
		SplitBetween:       b.SplitBetween,
		SplitType:          b.SplitType,
		CustomSplitAmounts: b.CustomSplitAmounts,
		PaymentDirection:   b.PaymentDirection,
		Payments:           b.Payments,
		Status:             b.Status,
		DueDate:            b.DueDate,
		CreatedAt:          b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		YourShare:          roundToTwoDecimals(ComputeShare(b, viewer)),
	}
}

// OverviewResponse is the bills-page dashboard payload
type OverviewResponse struct {
	Summary  Summary         `json:"summary"`
	YouOwe   float64         `json:"you_owe"`
	Upcoming []*BillResponse `json:"upcoming"`
	Balances []Balance       `json:"balances"`
}
