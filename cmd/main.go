package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChokeGuy/coin-change/api/coinchange"
	"github.com/ChokeGuy/coin-change/api/page"
	cf "github.com/ChokeGuy/coin-change/pkg/config"
	"github.com/ChokeGuy/coin-change/pkg/logger"
	"github.com/ChokeGuy/coin-change/pkg/metrics"
	"github.com/ChokeGuy/coin-change/server/http"
	"github.com/ChokeGuy/coin-change/solver"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cf, err := cf.LoadConfig("./")

	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger.Setup(cf.ENV)
	if !cf.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	coinSolver := solver.NewHTTPSolver(cf.SolverURL, cf.SolverTimeout)

	server, err := server.NewServer(&cf, coinSolver)

	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	//Routes
	pageHandler := page.NewPageHandler(server)
	pageHandler.MapRoutes()

	coinChangeHandler := coinchange.NewCoinChangeHandler(server)
	coinChangeHandler.MapRoutes()

	metrics.MapRoutes(server.Router, func(ctx context.Context) error {
		if cf.SolverURL == "" {
			return errors.New("solver url is not configured")
		}
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cf.ShutdownTimeout)
		defer cancel()

		_ = server.Stop(shutdownCtx)
	}()

	log.Info().
		Str("solver_url", cf.SolverURL).
		Str("denomination_policy", string(server.Builder.Policy())).
		Msg("coin change form ready")

	if err := server.Start(); err != nil {
		log.Fatal().Err(err).Msg("cannot start server")
	}

	<-stopped
}
