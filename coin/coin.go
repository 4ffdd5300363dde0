package coin

import "github.com/shopspring/decimal"

// Request is the payload sent to the change-making service.
type Request struct {
	TargetAmount      float64   `json:"targetAmount"`
	CoinDenominations []float64 `json:"coinDenominations"`
}

// Result is the list of coins returned by the change-making service, in the order received.
type Result []float64

// Count returns the number of coins used.
func (r Result) Count() int {
	return len(r)
}

// Total sums the coins exactly, so 0.1+0.2 reads as 0.3 rather than 0.30000000000000004.
func (r Result) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r {
		total = total.Add(decimal.NewFromFloat(c))
	}
	return total
}
