package bill

import (
	"context"
	"errors"
	"math"
	"strconv"
)

// Common errors
var (
	ErrBillNotFound       = errors.New("bill not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrAmountInvalid      = errors.New("amount must be greater than zero")
	ErrDueDateRequired    = errors.New("due date is required")
	ErrNoParticipants     = errors.New("at least one participant is required")
	ErrInvalidSplitType   = errors.New("split type must be even or custom")
	ErrInvalidDirection   = errors.New("invalid payment direction")
	ErrInvalidStatus      = errors.New("status must be paid or unpaid")
	ErrCustomSplitSum     = errors.New("custom split amounts must sum to the bill amount")
	ErrParticipantMissing = errors.New("participant is required")
)

// Notifier lets the bill service emit notifications without depending on the
// notification package directly.
type Notifier interface {
	NotifyBillAdded(ctx context.Context, recipient, payer string, amount float64, billID int64)
	NotifyPaymentRecorded(ctx context.Context, recipient, participant string, billID int64)
}

// Service handles bill business logic
type Service struct {
	repo     Repository
	notifier Notifier // optional
}

// NewService creates a new bill service with the repository injected
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// customSplitSum adds up the custom amounts with the same lenient parsing the
// share calculator uses, so validation and computation agree.
func customSplitSum(amounts map[string]string) float64 {
	var sum float64
	for _, raw := range amounts {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			sum += v
		}
	}
	return sum
}

// validateBill enforces the creation/edit invariants. The custom-split-sum
// check only runs here; reads trust the invariant and fall back to zero
// shares for malformed entries.
func validateBill(b *Bill) error {
	if b.Title == "" {
		return ErrTitleRequired
	}
	if b.Amount <= 0 {
		return ErrAmountInvalid
	}
	if b.DueDate == "" {
		return ErrDueDateRequired
	}
	if len(b.SplitBetween) == 0 {
		return ErrNoParticipants
	}
	switch b.SplitType {
	case SplitTypeEven:
	case SplitTypeCustom:
		if math.Abs(customSplitSum(b.CustomSplitAmounts)-b.Amount) > 0.01 {
			return ErrCustomSplitSum
		}
	default:
		return ErrInvalidSplitType
	}
	switch b.PaymentDirection {
	case DirectionNone, DirectionIncoming, DirectionOutgoing, DirectionPersonal:
	default:
		return ErrInvalidDirection
	}
	return nil
}

// Create validates and stores a new bill. The creator fronts the money by
// default; payments start false for everyone but the payer.
func (s *Service) Create(ctx context.Context, creator string, req *CreateBillRequest) (*Bill, error) {
	b := &Bill{
		HouseholdID:        req.HouseholdID,
		Title:              req.Title,
		Description:        req.Description,
		Amount:             req.Amount,
		Payer:              req.Payer,
		SplitBetween:       req.SplitBetween,
		SplitType:          req.SplitType,
		CustomSplitAmounts: req.CustomSplitAmounts,
		PaymentDirection:   req.PaymentDirection,
		DueDate:            req.DueDate,
	}
	if b.Payer == "" {
		b.Payer = creator
	}
	if b.SplitType == "" {
		b.SplitType = SplitTypeEven
	}
	if b.PaymentDirection == "" {
		b.PaymentDirection = DirectionNone
	}

	if err := validateBill(b); err != nil {
		return nil, err
	}

	b.InitPayments()

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		for _, p := range created.SplitBetween {
			if p != created.Payer {
				s.notifier.NotifyBillAdded(ctx, p, created.Payer, created.Amount, created.ID)
			}
		}
	}
	return created, nil
}

// GetByID retrieves a bill
func (s *Service) GetByID(ctx context.Context, id int64) (*Bill, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBillNotFound
	}
	return b, nil
}

// ListByHousehold retrieves all bills in the household
func (s *Service) ListByHousehold(ctx context.Context, householdID int64) ([]*Bill, error) {
	return s.repo.ListByHousehold(ctx, householdID)
}

// Update applies a partial update. Split-related fields are re-validated and
// the payment map is reconciled: new participants start unpaid, the status is
// re-derived. Nothing is persisted if validation fails.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateBillRequest) (*Bill, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.Payer != nil {
		b.Payer = *req.Payer
	}
	if req.SplitBetween != nil {
		b.SplitBetween = req.SplitBetween
	}
	if req.SplitType != nil {
		b.SplitType = *req.SplitType
	}
	if req.CustomSplitAmounts != nil {
		b.CustomSplitAmounts = req.CustomSplitAmounts
	}
	if req.PaymentDirection != nil {
		b.PaymentDirection = *req.PaymentDirection
	}
	if req.DueDate != nil {
		b.DueDate = *req.DueDate
	}

	if err := validateBill(b); err != nil {
		return nil, err
	}

	for _, p := range b.SplitBetween {
		if _, ok := b.Payments[p]; !ok {
			b.Payments[p] = p == b.Payer
		}
	}
	b.Status = deriveStatus(b)

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBillNotFound
	}
	return updated, nil
}

// TogglePayment flips a participant's payment flag and persists the result
func (s *Service) TogglePayment(ctx context.Context, id int64, participant string) (*Bill, error) {
	if participant == "" {
		return nil, ErrParticipantMissing
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	toggled := TogglePayment(*b, participant)
	updated, err := s.repo.Update(ctx, &toggled)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBillNotFound
	}

	if s.notifier != nil && toggled.Payments[participant] && b.Payer != participant {
		s.notifier.NotifyPaymentRecorded(ctx, b.Payer, participant, updated.ID)
	}
	return updated, nil
}

// SetStatus bulk-applies a settlement state to every participant
func (s *Service) SetStatus(ctx context.Context, id int64, status Status) (*Bill, error) {
	if status != StatusPaid && status != StatusUnpaid {
		return nil, ErrInvalidStatus
	}

	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := SetBillStatus(*b, status)
	updated, err := s.repo.Update(ctx, &changed)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBillNotFound
	}
	return updated, nil
}

// Delete removes a bill
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Overview assembles the bills-page dashboard for the viewer
func (s *Service) Overview(ctx context.Context, householdID int64, viewer string) (*OverviewResponse, error) {
	bills, err := s.repo.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}

	upcoming := Upcoming(bills, 5)
	upcomingResp := make([]*BillResponse, len(upcoming))
	for i, b := range upcoming {
		upcomingResp[i] = b.ToResponse(viewer)
	}

	return &OverviewResponse{
		Summary:  Summarize(bills, viewer),
		YouOwe:   YouOwe(bills, viewer),
		Upcoming: upcomingResp,
		Balances: Balances(bills),
	}, nil
}
