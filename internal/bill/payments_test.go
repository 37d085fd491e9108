package bill

import "testing"

func twoPersonBill() Bill {
	b := Bill{
		Title:            "groceries",
		Amount:           40,
		Payer:            "Alex",
		SplitBetween:     []string{"Alex", "Sam"},
		SplitType:        SplitTypeEven,
		PaymentDirection: DirectionNone,
		DueDate:          "2025-03-01",
	}
	b.InitPayments()
	return b
}

func TestInitPaymentsDefaults(t *testing.T) {
	b := twoPersonBill()

	if !b.Payments["Alex"] {
		t.Error("payer should start marked paid")
	}
	if b.Payments["Sam"] {
		t.Error("non-payer should start unpaid")
	}
	if b.Status != StatusUnpaid {
		t.Errorf("status = %v, want unpaid", b.Status)
	}
}

func TestInitPaymentsPayerOnlyBillIsPaid(t *testing.T) {
	b := Bill{Amount: 10, Payer: "Alex", SplitBetween: []string{"Alex"}}
	b.InitPayments()
	if b.Status != StatusPaid {
		t.Errorf("status = %v, want paid when the payer is the only participant", b.Status)
	}
}

func TestTogglePaymentFlipsStatusToPaid(t *testing.T) {
	b := twoPersonBill()

	toggled := TogglePayment(b, "Sam")

	if !toggled.Payments["Sam"] {
		t.Error("Sam's flag should be true after toggle")
	}
	if toggled.Status != StatusPaid {
		t.Errorf("status = %v, want paid once the last participant settles", toggled.Status)
	}
}

func TestTogglePaymentRecordsMostRecentPayer(t *testing.T) {
	b := twoPersonBill()

	toggled := TogglePayment(b, "Sam")
	if toggled.Payer != "Sam" {
		t.Errorf("payer = %q, want Sam after Sam records a payment", toggled.Payer)
	}

	// toggling off does not reassign the payer
	cleared := TogglePayment(toggled, "Sam")
	if cleared.Payer != "Sam" {
		t.Errorf("payer = %q, want unchanged on toggle-off", cleared.Payer)
	}
	if cleared.Status != StatusUnpaid {
		t.Errorf("status = %v, want unpaid the instant a flag clears", cleared.Status)
	}
}

func TestTogglePaymentIsInvolution(t *testing.T) {
	b := twoPersonBill()

	twice := TogglePayment(TogglePayment(b, "Sam"), "Sam")
	if twice.Payments["Sam"] != b.Payments["Sam"] {
		t.Error("toggling twice should restore the original flag")
	}
	if twice.Status != b.Status {
		t.Errorf("status = %v, want %v restored", twice.Status, b.Status)
	}
}

func TestTogglePaymentUnknownParticipant(t *testing.T) {
	b := twoPersonBill()

	toggled := TogglePayment(b, "Visitor")
	if !toggled.Payments["Visitor"] {
		t.Error("unknown participant should be added to the map as paid")
	}
	// status ignores entries outside splitBetween
	if toggled.Status != StatusUnpaid {
		t.Errorf("status = %v, want unpaid while Sam is unsettled", toggled.Status)
	}
}

func TestTogglePaymentDoesNotMutateInput(t *testing.T) {
	b := twoPersonBill()
	_ = TogglePayment(b, "Sam")

	if b.Payments["Sam"] {
		t.Error("input bill's payment map was mutated")
	}
	if b.Payer != "Alex" {
		t.Error("input bill's payer was mutated")
	}
}

func TestSetBillStatusPaid(t *testing.T) {
	b := twoPersonBill()

	paid := SetBillStatus(b, StatusPaid)

	if paid.Status != StatusPaid {
		t.Errorf("status = %v, want paid", paid.Status)
	}
	for _, p := range paid.SplitBetween {
		if !paid.Payments[p] {
			t.Errorf("%s flag = false, want true after bulk paid", p)
		}
	}
}

func TestSetBillStatusUnpaidKeepsPayerSettled(t *testing.T) {
	b := SetBillStatus(twoPersonBill(), StatusPaid)

	unpaid := SetBillStatus(b, StatusUnpaid)

	if unpaid.Status != StatusUnpaid {
		t.Errorf("status = %v, want unpaid", unpaid.Status)
	}
	if !unpaid.Payments["Alex"] {
		t.Error("payer should remain marked paid after bulk unpaid")
	}
	if unpaid.Payments["Sam"] {
		t.Error("non-payer should be cleared after bulk unpaid")
	}
}

func TestSetBillStatusIdempotent(t *testing.T) {
	b := twoPersonBill()

	once := SetBillStatus(b, StatusPaid)
	twice := SetBillStatus(once, StatusPaid)

	if twice.Status != once.Status {
		t.Error("applying the same target status twice changed the status")
	}
	for p, v := range once.Payments {
		if twice.Payments[p] != v {
			t.Errorf("%s flag changed on repeat application", p)
		}
	}
}
