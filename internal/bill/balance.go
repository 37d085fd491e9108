package bill

import (
	"math"
	"sort"
)

// Balance is a derived "who owes whom" edge: From owes To the given amount.
type Balance struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Balances nets every participant's unpaid shares against each bill's payer
// and returns the non-zero pairs, largest first. Mutual debts between the
// same two people cancel out.
func Balances(bills []*Bill) []Balance {
	type pair struct{ from, to string }
	net := make(map[pair]float64)

	for _, b := range bills {
		if b.Payer == "" {
			continue
		}
		for _, p := range b.SplitBetween {
			if p == b.Payer || b.Payments[p] {
				continue
			}
			share := ComputeShare(b, p)
			if share == 0 {
				continue
			}
			if owed, ok := net[pair{b.Payer, p}]; ok && owed > 0 {
				// cancel against the opposite direction first
				if owed >= share {
					net[pair{b.Payer, p}] = owed - share
					continue
				}
				delete(net, pair{b.Payer, p})
				share -= owed
			}
			net[pair{p, b.Payer}] += share
		}
	}

	out := make([]Balance, 0, len(net))
	for k, amount := range net {
		amount = roundToTwoDecimals(amount)
		if math.Abs(amount) < 0.01 {
			continue
		}
		out = append(out, Balance{From: k.from, To: k.to, Amount: amount})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}
