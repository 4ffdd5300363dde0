package logger

import (
	"net/http"
	"os"
	"time"

	"github.com/ChokeGuy/coin-change/pkg/middlewares/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Development gets human readable console output.
func Setup(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// HttpLogger logs every request handled by the router
func HttpLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		duration := time.Since(start)
		statusCode := ctx.Writer.Status()

		logger := log.Info()
		if statusCode >= 500 || len(ctx.Errors) > 0 {
			logger = log.Error().Strs("errors", ctx.Errors.Errors())
		}

		logger.Str("protocol", "http").
			Str("request_id", requestid.Get(ctx)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status_code", statusCode).
			Str("status_text", http.StatusText(statusCode)).
			Dur("duration", duration).
			Msg("received a HTTP request")
	}
}
