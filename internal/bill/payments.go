package bill

// deriveStatus returns paid iff every split participant's flag is true.
// Entries for unknown participants are ignored.
func deriveStatus(b *Bill) Status {
	for _, p := range b.SplitBetween {
		if !b.Payments[p] {
			return StatusUnpaid
		}
	}
	return StatusPaid
}

// TogglePayment flips the participant's payment flag and returns the mutated
// copy. Absent entries count as false before the flip, so unknown
// participants are simply added to the map.
//
// When the flip lands on true the participant becomes the bill's payer:
// whoever most recently paid is recorded as payer.
func TogglePayment(b Bill, participant string) Bill {
	out := b.Clone()
	next := !out.Payments[participant]
	out.Payments[participant] = next
	if next {
		out.Payer = participant
	}
	out.Status = deriveStatus(&out)
	return out
}

// SetBillStatus bulk-applies a target status and returns the mutated copy.
// Paid marks every split participant as settled; unpaid clears everyone
// except the payer, who keeps their own share marked.
func SetBillStatus(b Bill, status Status) Bill {
	out := b.Clone()
	for _, p := range out.SplitBetween {
		if status == StatusPaid {
			out.Payments[p] = true
		} else {
			out.Payments[p] = p == out.Payer
		}
	}
	out.Status = status
	return out
}
