package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ChokeGuy/coin-change/coin"
	"github.com/ChokeGuy/coin-change/pkg/metrics"
	"github.com/rs/zerolog/log"
)

// Solver computes the minimum set of coins for a request.
type Solver interface {
	MinimumCoins(ctx context.Context, req coin.Request) (coin.Result, error)
}

// ServiceError is a non-2xx answer from the change-making service.
// Its message is the response body, unchanged.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return e.Body
}

// HTTPSolver calls the change-making service over HTTP.
type HTTPSolver struct {
	URL  string
	HTTP *http.Client
}

func NewHTTPSolver(url string, timeout time.Duration) Solver {
	return &HTTPSolver{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSolver) MinimumCoins(ctx context.Context, req coin.Request) (coin.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	res, err := s.HTTP.Do(httpReq)
	if err != nil {
		metrics.ObserveSolver(0, started)
		log.Error().Err(err).Str("url", s.URL).Msg("coin change service unreachable")
		return nil, fmt.Errorf("call coin change service: %w", err)
	}
	defer res.Body.Close()
	metrics.ObserveSolver(res.StatusCode, started)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, fmt.Errorf("read coin change service error: %w", err)
		}
		log.Warn().
			Int("status_code", res.StatusCode).
			Str("body", string(msg)).
			Msg("coin change service refused request")
		return nil, &ServiceError{StatusCode: res.StatusCode, Body: string(msg)}
	}

	var result coin.Result
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode coin change result: %w", err)
	}

	log.Info().
		Float64("target_amount", req.TargetAmount).
		Int("coins", result.Count()).
		Msg("coin change computed")

	return result, nil
}
