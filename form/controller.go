package form

import (
	"context"
	"errors"
	"sync"

	"github.com/ChokeGuy/coin-change/pkg/metrics"
	"github.com/ChokeGuy/coin-change/solver"
	"github.com/ChokeGuy/coin-change/validations"
	"github.com/rs/zerolog/log"
)

var ErrSubmissionInFlight = errors.New("a submission is already in progress")

const solverFailedMessage = "The coin change service failed unexpectedly."

// Controller owns the single form snapshot and runs submissions one at a time.
type Controller struct {
	solver  solver.Solver
	builder *validations.RequestBuilder

	mu    sync.RWMutex
	state State
}

func NewController(s solver.Solver, builder *validations.RequestBuilder, defaultDenominations string) *Controller {
	return &Controller{
		solver:  s,
		builder: builder,
		state:   NewState(defaultDenominations),
	}
}

// Snapshot returns the current form state
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// begin publishes the loading snapshot unless a submission is already running.
func (c *Controller) begin(targetAmount, denominations string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Loading {
		return c.state, false
	}

	c.state = c.state.Begin(targetAmount, denominations)
	return c.state, true
}

func (c *Controller) publish(state State) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	return state
}

// Submit validates the raw fields and, when they hold a valid request, asks the solver.
// Once dispatched the call is not cancelled by ctx; it ends when the solver answers or the
// client times out. Validation and solver failures end up in the returned snapshot, the
// error is only ErrSubmissionInFlight.
func (c *Controller) Submit(ctx context.Context, targetAmount, denominations string) (State, error) {
	state, ok := c.begin(targetAmount, denominations)
	if !ok {
		metrics.Submissions.WithLabelValues("form", metrics.OutcomeBusy).Inc()
		return state, ErrSubmissionInFlight
	}

	// a panic must not leave the form loading forever
	defer func() {
		if r := recover(); r != nil {
			metrics.Submissions.WithLabelValues("form", metrics.OutcomeSolverError).Inc()
			c.publish(state.Fail(solverFailedMessage))
			panic(r)
		}
	}()

	outcome, err := c.builder.Build(targetAmount, denominations)
	state = state.Warn(outcome.Warning(), outcome.Denominations.Rejected)
	metrics.RejectedDenominations.Add(float64(len(outcome.Denominations.Rejected)))

	if err != nil {
		metrics.Submissions.WithLabelValues("form", metrics.OutcomeValidationError).Inc()
		log.Info().Err(err).
			Str("target_amount", targetAmount).
			Str("denominations", denominations).
			Msg("form submission rejected")
		return c.publish(state.Fail(validations.FormMessage(err))), nil
	}

	result, err := c.solver.MinimumCoins(context.WithoutCancel(ctx), outcome.Request)
	if err != nil {
		metrics.Submissions.WithLabelValues("form", metrics.OutcomeSolverError).Inc()
		log.Error().Err(err).Msg("form submission failed")
		return c.publish(state.Fail(err.Error())), nil
	}

	metrics.Submissions.WithLabelValues("form", metrics.OutcomeSolved).Inc()
	return c.publish(state.Succeed(result)), nil
}
