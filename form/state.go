package form

import "github.com/ChokeGuy/coin-change/coin"

// State is one snapshot of the coin change form. Transitions return a new State;
// a snapshot never holds a result and an error at the same time.
type State struct {
	TargetAmount  string
	Denominations string

	Loading             bool
	DenominationWarning bool
	Rejected            []float64

	Result coin.Result
	Err    string
}

// NewState returns the empty form with the denominations field prefilled
func NewState(defaultDenominations string) State {
	return State{Denominations: defaultDenominations}
}

// HasResult reports whether the last submission produced coins
func (s State) HasResult() bool {
	return s.Result != nil
}

// Begin starts a submission, clearing the outcome of the previous one.
func (s State) Begin(targetAmount, denominations string) State {
	return State{
		TargetAmount:  targetAmount,
		Denominations: denominations,
		Loading:       true,
	}
}

// Warn flags the denominations field and records the values that were left out.
func (s State) Warn(flag bool, rejected []float64) State {
	s.DenominationWarning = flag
	s.Rejected = append([]float64(nil), rejected...)
	return s
}

// Succeed ends a submission with the coins returned by the service.
func (s State) Succeed(result coin.Result) State {
	s.Loading = false
	s.Err = ""
	s.Result = append(coin.Result{}, result...)
	return s
}

// Fail ends a submission with a message for the user.
func (s State) Fail(msg string) State {
	s.Loading = false
	s.Result = nil
	s.Err = msg
	return s
}
