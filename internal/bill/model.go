package bill

import "time"

// SplitType governs how a bill's amount maps to per-participant shares
type SplitType string

const (
	SplitTypeEven   SplitType = "even"
	SplitTypeCustom SplitType = "custom"
)

// PaymentDirection classifies whether a bill is a shared general expense,
// money owed to the viewer, or money the viewer owes
type PaymentDirection string

const (
	DirectionNone     PaymentDirection = "none"
	DirectionIncoming PaymentDirection = "incoming"
	DirectionOutgoing PaymentDirection = "outgoing"
	DirectionPersonal PaymentDirection = "personal"
)

// Status is derived from the payment map, never set directly by callers
type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

// Bill represents a shared household bill.
//
// CustomSplitAmounts values arrive from form fields as strings; they are
// parsed leniently when computing shares (non-numeric entries count as zero)
// and validated against the total only at creation/edit time.
type Bill struct {
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
	CreatedAt          time.Time         `json:"created_at"`
}

// Clone returns a deep copy so mutation helpers can return a mutated copy
// without aliasing the caller's maps and slices.
func (b Bill) Clone() Bill {
	out := b
	out.SplitBetween = append([]string(nil), b.SplitBetween...)
	out.Payments = make(map[string]bool, len(b.Payments))
	for k, v := range b.Payments {
		out.Payments[k] = v
	}
	if b.CustomSplitAmounts != nil {
		out.CustomSplitAmounts = make(map[string]string, len(b.CustomSplitAmounts))
		for k, v := range b.CustomSplitAmounts {
			out.CustomSplitAmounts[k] = v
		}
	}
	return out
}

// InitPayments sets the default payment map for a freshly created bill:
// everyone false except the payer, then derives the status.
func (b *Bill) InitPayments() {
	b.Payments = make(map[string]bool, len(b.SplitBetween))
	for _, p := range b.SplitBetween {
		b.Payments[p] = p == b.Payer
	}
	b.Status = deriveStatus(b)
}
