package bill

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository is the persistence boundary for bills. Get returns (nil, nil)
// when no bill exists so callers can distinguish absence from failure.
type Repository interface {
	Create(ctx context.Context, b *Bill) (*Bill, error)
	GetByID(ctx context.Context, id int64) (*Bill, error)
	ListByHousehold(ctx context.Context, householdID int64) ([]*Bill, error)
	Update(ctx context.Context, b *Bill) (*Bill, error)
	Delete(ctx context.Context, id int64) error
}

// PostgresRepository stores bills in Postgres, with the document-shaped
// fields (participants, payment map, custom splits) held in JSONB columns
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new bill repository backed by Postgres
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const billColumns = `id, household_id, title, description, amount, payer, split_between,
	split_type, custom_split_amounts, payment_direction, payments, status, due_date, created_at`

func scanBill(row interface{ Scan(...any) error }) (*Bill, error) {
	b := &Bill{}
	var splitBetween, customSplits, payments []byte
	err := row.Scan(
		&b.ID, &b.HouseholdID, &b.Title, &b.Description, &b.Amount, &b.Payer,
		&splitBetween, &b.SplitType, &customSplits, &b.PaymentDirection,
		&payments, &b.Status, &b.DueDate, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(splitBetween, &b.SplitBetween); err != nil {
		return nil, fmt.Errorf("failed to decode split_between: %w", err)
	}
	if err := json.Unmarshal(customSplits, &b.CustomSplitAmounts); err != nil {
		return nil, fmt.Errorf("failed to decode custom_split_amounts: %w", err)
	}
	if err := json.Unmarshal(payments, &b.Payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return b, nil
}

func encodeDocFields(b *Bill) (splitBetween, customSplits, payments []byte, err error) {
	if splitBetween, err = json.Marshal(b.SplitBetween); err != nil {
		return
	}
	custom := b.CustomSplitAmounts
	if custom == nil {
		custom = map[string]string{}
	}
	if customSplits, err = json.Marshal(custom); err != nil {
		return
	}
	payments, err = json.Marshal(b.Payments)
	return
}

// Create inserts a new bill
func (r *PostgresRepository) Create(ctx context.Context, b *Bill) (*Bill, error) {
	splitBetween, customSplits, payments, err := encodeDocFields(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bill: %w", err)
	}

	query := `
		INSERT INTO bills (household_id, title, description, amount, payer, split_between,
			split_type, custom_split_amounts, payment_direction, payments, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + billColumns

	row := r.db.QueryRowContext(ctx, query,
		b.HouseholdID, b.Title, b.Description, b.Amount, b.Payer, splitBetween,
		b.SplitType, customSplits, b.PaymentDirection, payments, b.Status, b.DueDate,
	)
	created, err := scanBill(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	return created, nil
}

// GetByID retrieves a bill by its ID, returning (nil, nil) when absent
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`
	b, err := scanBill(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return b, nil
}

// ListByHousehold retrieves all bills for a household, newest first
func (r *PostgresRepository) ListByHousehold(ctx context.Context, householdID int64) ([]*Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE household_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// Update rewrites every mutable field of the bill. The write is a single
// UPDATE by id, which is the atomicity unit the service relies on.
func (r *PostgresRepository) Update(ctx context.Context, b *Bill) (*Bill, error) {
	splitBetween, customSplits, payments, err := encodeDocFields(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bill: %w", err)
	}

	query := `
		UPDATE bills
		SET title = $2, description = $3, amount = $4, payer = $5, split_between = $6,
			split_type = $7, custom_split_amounts = $8, payment_direction = $9,
			payments = $10, status = $11, due_date = $12
		WHERE id = $1
		RETURNING ` + billColumns

	row := r.db.QueryRowContext(ctx, query,
		b.ID, b.Title, b.Description, b.Amount, b.Payer, splitBetween,
		b.SplitType, customSplits, b.PaymentDirection, payments, b.Status, b.DueDate,
	)
	updated, err := scanBill(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}
	return updated, nil
}

// Delete removes a bill by ID
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return nil
}
