package bill

import (
	"math"
	"sort"
	"time"
)

// Summary aggregates a collection of bills into dashboard statistics.
// Counts and TotalAmount cover every bill in scope; MyShareDue is scoped to
// the viewer.
type Summary struct {
	Total       int     `json:"total"`
	Unpaid      int     `json:"unpaid"`
	Paid        int     `json:"paid"`
	TotalAmount float64 `json:"total_amount"`
	MyShareDue  float64 `json:"my_share_due"`
}

// Summarize builds display statistics for the viewer. MyShareDue sums the
// viewer's computed share across every bill the viewer hasn't settled yet.
func Summarize(bills []*Bill, viewer string) Summary {
	s := Summary{Total: len(bills)}
	for _, b := range bills {
		s.TotalAmount += b.Amount
		if b.Status == StatusPaid {
			s.Paid++
		} else {
			s.Unpaid++
		}
		if !b.Payments[viewer] {
			s.MyShareDue += ComputeShare(b, viewer)
		}
	}
	s.TotalAmount = roundToTwoDecimals(s.TotalAmount)
	s.MyShareDue = roundToTwoDecimals(s.MyShareDue)
	return s
}

// YouOwe totals what the viewer owes across the bill list: the full amount of
// outgoing bills, plus the viewer's share of any other unpaid bill. Incoming
// bills are money owed to the viewer and never count against them.
func YouOwe(bills []*Bill, viewer string) float64 {
	var total float64
	for _, b := range bills {
		switch {
		case b.PaymentDirection == DirectionOutgoing:
			total += b.Amount
		case b.PaymentDirection == DirectionIncoming:
			// owed to the viewer
		case b.Status == StatusUnpaid:
			total += ComputeShare(b, viewer)
		}
	}
	return roundToTwoDecimals(total)
}

// dueDateLayouts are tried in order when parsing a bill's due date.
var dueDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// parseDueDate returns the maximum timestamp for unparseable dates so they
// sort last.
func parseDueDate(due string) time.Time {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, due); err == nil {
			return t
		}
	}
	return time.Unix(math.MaxInt32, 0)
}

// SortByDueDate returns the bills ordered ascending by parsed due date.
// The sort is stable and does not modify the input slice.
func SortByDueDate(bills []*Bill) []*Bill {
	out := append([]*Bill(nil), bills...)
	sort.SliceStable(out, func(i, j int) bool {
		return parseDueDate(out[i].DueDate).Before(parseDueDate(out[j].DueDate))
	})
	return out
}

// Upcoming returns the first n unpaid bills in due-date order.
func Upcoming(bills []*Bill, n int) []*Bill {
	unpaid := make([]*Bill, 0, len(bills))
	for _, b := range bills {
		if b.Status == StatusUnpaid {
			unpaid = append(unpaid, b)
		}
	}
	sorted := SortByDueDate(unpaid)
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
