package bill

import (
	"math"
	"testing"
)

func TestComputeShare(t *testing.T) {
	tests := []struct {
		name        string
		bill        Bill
		participant string
		want        float64
	}{
		{
			name: "even four-way split",
			bill: Bill{
				Amount:       80,
				SplitBetween: []string{"Alex", "Sam", "Jordan", "You"},
				SplitType:    SplitTypeEven,
			},
			participant: "You",
			want:        20.0,
		},
		{
			name: "custom split returns the participant's entry",
			bill: Bill{
				Amount:             45.5,
				SplitBetween:       []string{"You", "Jordan"},
				SplitType:          SplitTypeCustom,
				CustomSplitAmounts: map[string]string{"You": "45.5", "Jordan": "0"},
			},
			participant: "You",
			want:        45.5,
		},
		{
			name: "custom split zero entry",
			bill: Bill{
				Amount:             45.5,
				SplitBetween:       []string{"You", "Jordan"},
				SplitType:          SplitTypeCustom,
				CustomSplitAmounts: map[string]string{"You": "45.5", "Jordan": "0"},
			},
			participant: "Jordan",
			want:        0,
		},
		{
			name: "custom split missing entry defaults to zero",
			bill: Bill{
				Amount:             30,
				SplitBetween:       []string{"Alex", "Sam"},
				SplitType:          SplitTypeCustom,
				CustomSplitAmounts: map[string]string{"Alex": "30"},
			},
			participant: "Sam",
			want:        0,
		},
		{
			name: "custom split non-numeric entry defaults to zero",
			bill: Bill{
				Amount:             30,
				SplitBetween:       []string{"Alex", "Sam"},
				SplitType:          SplitTypeCustom,
				CustomSplitAmounts: map[string]string{"Alex": "thirty"},
			},
			participant: "Alex",
			want:        0,
		},
		{
			name: "empty participant list returns the full amount",
			bill: Bill{
				Amount:    55.25,
				SplitType: SplitTypeEven,
			},
			participant: "You",
			want:        55.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeShare(&tt.bill, tt.participant)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ComputeShare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvenSharesSumToAmount(t *testing.T) {
	bills := []Bill{
		{Amount: 80, SplitBetween: []string{"Alex", "Sam", "Jordan", "You"}, SplitType: SplitTypeEven},
		{Amount: 100, SplitBetween: []string{"Alex", "Sam", "Jordan"}, SplitType: SplitTypeEven},
		{Amount: 0.03, SplitBetween: []string{"Alex", "Sam"}, SplitType: SplitTypeEven},
	}

	for _, b := range bills {
		var sum float64
		for _, p := range b.SplitBetween {
			sum += ComputeShare(&b, p)
		}
		if math.Abs(sum-b.Amount) > 1e-9 {
			t.Errorf("shares for amount %v sum to %v", b.Amount, sum)
		}
	}
}

func TestValidatedCustomSharesSumToAmount(t *testing.T) {
	b := Bill{
		Amount:             45.5,
		SplitBetween:       []string{"You", "Jordan"},
		SplitType:          SplitTypeCustom,
		CustomSplitAmounts: map[string]string{"You": "45.5", "Jordan": "0"},
	}
	if err := validateBill(&Bill{
		Title: "rent", Amount: b.Amount, DueDate: "2025-01-01",
		SplitBetween: b.SplitBetween, SplitType: b.SplitType,
		CustomSplitAmounts: b.CustomSplitAmounts,
		PaymentDirection:   DirectionNone,
	}); err != nil {
		t.Fatalf("validateBill() error = %v", err)
	}

	var sum float64
	for _, p := range b.SplitBetween {
		sum += ComputeShare(&b, p)
	}
	if sum != b.Amount {
		t.Errorf("validated custom shares sum to %v, want exactly %v", sum, b.Amount)
	}
}
