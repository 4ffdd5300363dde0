package validations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChokeGuy/coin-change/coin"
	"github.com/ChokeGuy/coin-change/util"
)

var (
	ErrNoValidDenominations  = errors.New("no valid denominations")
	ErrRejectedDenominations = errors.New("denominations must be from the allowed list")
	ErrTargetOutOfRange      = errors.New("target must be a number between 0 and 10000")
)

// Field names used in validation errors, matching the request JSON keys
const (
	FieldTargetAmount      = "targetAmount"
	FieldCoinDenominations = "coinDenominations"
)

// ValidationError explains why a request could not be built from the form input.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Policy decides what happens to a submission carrying denominations outside the allowed set.
type Policy string

const (
	// PolicyWarn flags the field and submits the allowed subset.
	PolicyWarn Policy = "warn"
	// PolicyBlock refuses the submission.
	PolicyBlock Policy = "block"
)

// ParsePolicy reads a policy name, empty meaning PolicyWarn
func ParsePolicy(name string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(name))) {
	case "", PolicyWarn:
		return PolicyWarn, nil
	case PolicyBlock:
		return PolicyBlock, nil
	}
	return "", fmt.Errorf("unknown denomination policy %q", name)
}

// DenominationSet is the parsed denominations field split by membership of the allowed set.
// Both slices keep input order and duplicates.
type DenominationSet struct {
	Accepted []float64
	Rejected []float64
}

func (s DenominationSet) HasRejected() bool {
	return len(s.Rejected) > 0
}

// ParseDenominations splits a comma separated list, dropping tokens that are not numbers.
func ParseDenominations(raw string) DenominationSet {
	var set DenominationSet

	for _, token := range strings.Split(raw, ",") {
		value, ok := util.ParseNumber(token)
		if !ok {
			continue
		}

		if util.IsSupportedDenomination(value) {
			set.Accepted = append(set.Accepted, value)
		} else {
			set.Rejected = append(set.Rejected, value)
		}
	}

	return set
}

// ParseTargetAmount reads the target field and checks it against the accepted range.
func ParseTargetAmount(raw string) (float64, error) {
	target, ok := util.ParseNumber(raw)
	if !ok || !util.IsValidTargetAmount(target) {
		return 0, &ValidationError{Field: FieldTargetAmount, Err: ErrTargetOutOfRange}
	}
	return target, nil
}

// Outcome is what the builder made of the form input. Denominations is filled in even when
// building fails, so the caller can still flag the rejected values.
type Outcome struct {
	Request       coin.Request
	Denominations DenominationSet
}

// Warning reports whether the denominations field should be flagged: nothing usable was
// entered, or some values were left out.
func (o Outcome) Warning() bool {
	return len(o.Denominations.Accepted) == 0 || o.Denominations.HasRejected()
}

// RequestBuilder turns raw form fields into a request for the change-making service.
type RequestBuilder struct {
	policy Policy
}

func NewRequestBuilder(policy Policy) *RequestBuilder {
	if policy == "" {
		policy = PolicyWarn
	}
	return &RequestBuilder{policy: policy}
}

func (b *RequestBuilder) Policy() Policy {
	return b.policy
}

// Build validates the raw target and denominations. Denominations are checked first.
func (b *RequestBuilder) Build(targetAmount, denominations string) (Outcome, error) {
	outcome := Outcome{Denominations: ParseDenominations(denominations)}

	if len(outcome.Denominations.Accepted) == 0 {
		return outcome, &ValidationError{Field: FieldCoinDenominations, Err: ErrNoValidDenominations}
	}

	if b.policy == PolicyBlock && outcome.Denominations.HasRejected() {
		return outcome, &ValidationError{Field: FieldCoinDenominations, Err: ErrRejectedDenominations}
	}

	target, err := ParseTargetAmount(targetAmount)
	if err != nil {
		return outcome, err
	}

	coins := make([]float64, len(outcome.Denominations.Accepted))
	copy(coins, outcome.Denominations.Accepted)

	outcome.Request = coin.Request{
		TargetAmount:      target,
		CoinDenominations: coins,
	}

	return outcome, nil
}
