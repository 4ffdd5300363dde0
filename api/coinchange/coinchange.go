package coinchange

import (
	"errors"
	"net/http"

	dto "github.com/ChokeGuy/coin-change/api/coinchange/dto"
	"github.com/ChokeGuy/coin-change/coin"
	res "github.com/ChokeGuy/coin-change/pkg/http_response"
	"github.com/ChokeGuy/coin-change/pkg/metrics"
	sv "github.com/ChokeGuy/coin-change/server/http"
	"github.com/ChokeGuy/coin-change/solver"
	"github.com/ChokeGuy/coin-change/util"
	"github.com/ChokeGuy/coin-change/validations"
	"github.com/rs/zerolog/log"

	"github.com/gin-gonic/gin"
)

type CoinChangeHandler struct {
	*sv.Server
}

func NewCoinChangeHandler(server *sv.Server) *CoinChangeHandler {
	return &CoinChangeHandler{Server: server}
}

func (h *CoinChangeHandler) MapRoutes() {
	api := h.Router.Group("/api")

	api.POST("/coin-change", h.createCoinChange)
	api.POST("/coin-change/strict", h.createStrictCoinChange)
	api.GET("/denominations", h.listDenominations)
}

func (h *CoinChangeHandler) createCoinChange(ctx *gin.Context) {
	var req dto.CoinChangeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, res.ErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	outcome, err := h.Builder.Build(req.TargetAmount, req.Denominations)
	metrics.RejectedDenominations.Add(float64(len(outcome.Denominations.Rejected)))

	if err != nil {
		metrics.Submissions.WithLabelValues("api", metrics.OutcomeValidationError).Inc()

		var ve *validations.ValidationError
		field := ""
		if errors.As(err, &ve) {
			field = ve.Field
		}

		ctx.JSON(http.StatusBadRequest, res.ErrorResponseWithData(http.StatusBadRequest, err.Error(), dto.ValidationErrorResponse{
			Field:    field,
			Rejected: formatRejected(outcome.Denominations.Rejected),
		}))
		return
	}

	h.solve(ctx, "api", outcome.Request, outcome.Denominations.Rejected)
}

func (h *CoinChangeHandler) createStrictCoinChange(ctx *gin.Context) {
	var req dto.StrictCoinChangeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		metrics.Submissions.WithLabelValues("api_strict", metrics.OutcomeValidationError).Inc()
		validations.HandleValidationError(ctx, err)
		return
	}

	arg := coin.Request{
		TargetAmount:      *req.TargetAmount,
		CoinDenominations: req.CoinDenominations,
	}

	h.solve(ctx, "api_strict", arg, nil)
}

func (h *CoinChangeHandler) solve(ctx *gin.Context, source string, arg coin.Request, rejected []float64) {
	result, err := h.Solver.MinimumCoins(ctx, arg)

	if err != nil {
		metrics.Submissions.WithLabelValues(source, metrics.OutcomeSolverError).Inc()
		log.Error().Err(err).Str("source", source).Msg("coin change failed")

		data := dto.SolverErrorResponse{}
		var serviceErr *solver.ServiceError
		if errors.As(err, &serviceErr) {
			data.SolverStatusCode = serviceErr.StatusCode
		}

		ctx.JSON(http.StatusBadGateway, res.ErrorResponseWithData(http.StatusBadGateway, err.Error(), data))
		return
	}

	metrics.Submissions.WithLabelValues(source, metrics.OutcomeSolved).Inc()

	response := dto.CoinChangeResponse{
		Request:             arg,
		Coins:               nonNilResult(result),
		Count:               result.Count(),
		Total:               result.Total().String(),
		Rejected:            formatRejected(rejected),
		DenominationWarning: len(rejected) > 0,
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(response, "Coin change computed successfully"))
}

func (h *CoinChangeHandler) listDenominations(ctx *gin.Context) {
	response := dto.DenominationsResponse{
		Allowed:         util.SupportedDenominations(),
		Default:         h.Config.DefaultDenominations,
		MinTargetAmount: util.MinTargetAmount,
		MaxTargetAmount: util.MaxTargetAmount,
		Policy:          string(h.Builder.Policy()),
	}

	ctx.JSON(http.StatusOK, res.SuccessResponse(response, "Denominations retrieved successfully"))
}

// formatRejected renders ignored denominations as text, since they may not be finite.
func formatRejected(values []float64) []string {
	rejected := make([]string, 0, len(values))
	for _, v := range values {
		rejected = append(rejected, util.FormatNumber(v))
	}
	return rejected
}

func nonNilResult(result coin.Result) coin.Result {
	if result == nil {
		return coin.Result{}
	}
	return result
}
