package util

// Coin denominations accepted by the change-making service
const (
	Cent        = 0.01
	FiveCents   = 0.05
	TenCents    = 0.1
	TwentyCents = 0.2
	FiftyCents  = 0.5
	One         = 1.0
	Two         = 2.0
	Five        = 5.0
	Ten         = 10.0
	Fifty       = 50.0
	Hundred     = 100.0
	Thousand    = 1000.0
)

// Bounds of the target amount, both inclusive
const (
	MinTargetAmount = 0.0
	MaxTargetAmount = 10000.0
)

// DefaultDenominations is the value the denominations field starts with
const DefaultDenominations = "0.01,0.5,1,5,10"

// IsSupportedDenomination checks if the denomination is in the allowed set
func IsSupportedDenomination(denomination float64) bool {
	switch denomination {
	case Cent, FiveCents, TenCents, TwentyCents, FiftyCents,
		One, Two, Five, Ten, Fifty, Hundred, Thousand:
		return true
	}
	return false
}

// SupportedDenominations returns the allowed set in ascending order
func SupportedDenominations() []float64 {
	return []float64{
		Cent, FiveCents, TenCents, TwentyCents, FiftyCents,
		One, Two, Five, Ten, Fifty, Hundred, Thousand,
	}
}

// IsValidTargetAmount checks if the amount lies within the accepted range
func IsValidTargetAmount(amount float64) bool {
	return amount >= MinTargetAmount && amount <= MaxTargetAmount
}
