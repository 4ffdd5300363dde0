package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes
const (
	OutcomeSolved          = "solved"
	OutcomeValidationError = "validation_error"
	OutcomeSolverError     = "solver_error"
	OutcomeBusy            = "busy"
)

var (
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coin_change",
		Name:      "submissions_total",
		Help:      "Coin change submissions by entry point and outcome.",
	}, []string{"source", "outcome"})

	RejectedDenominations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "coin_change",
		Name:      "rejected_denominations_total",
		Help:      "Denominations dropped because they are outside the allowed set.",
	})

	SolverDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coin_change",
		Name:      "solver_request_duration_seconds",
		Help:      "Latency of calls to the change-making service by HTTP status, 0 on transport failure.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// ObserveSolver records a finished call to the change-making service
func ObserveSolver(statusCode int, started time.Time) {
	SolverDuration.WithLabelValues(strconv.Itoa(statusCode)).Observe(time.Since(started).Seconds())
}

// HealthFunc reports whether the service can do its job
type HealthFunc func(ctx context.Context) error

// MapRoutes exposes /metrics and /healthz on the router
func MapRoutes(router *gin.Engine, healthFn HealthFunc) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/healthz", func(ctx *gin.Context) {
		c, cancel := context.WithTimeout(ctx.Request.Context(), 500*time.Millisecond)
		defer cancel()

		if healthFn != nil {
			if err := healthFn(c); err != nil {
				ctx.String(http.StatusServiceUnavailable, fmt.Sprintf("unhealthy: %v", err))
				return
			}
		}

		ctx.String(http.StatusOK, "ok")
	})
}
