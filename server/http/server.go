package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ChokeGuy/coin-change/form"
	pkg "github.com/ChokeGuy/coin-change/pkg/config"
	"github.com/ChokeGuy/coin-change/pkg/logger"
	"github.com/ChokeGuy/coin-change/pkg/middlewares/requestid"
	"github.com/ChokeGuy/coin-change/solver"
	"github.com/ChokeGuy/coin-change/validations"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// Server serves the coin change form and API.
type Server struct {
	Config     *pkg.Config
	Solver     solver.Solver
	Builder    *validations.RequestBuilder
	Form       *form.Controller
	Router     *gin.Engine
	HttpServer *http.Server
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config *pkg.Config, s solver.Solver) (*Server, error) {
	policy, err := validations.ParsePolicy(config.DenominationPolicy)
	if err != nil {
		return nil, err
	}

	builder := validations.NewRequestBuilder(policy)

	server := &Server{
		Config:  config,
		Solver:  s,
		Builder: builder,
		Form:    form.NewController(s, builder, config.DefaultDenominations),
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestid.RequestIDMiddleWare(), logger.HttpLogger())

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("denomination", validations.ValidDenomination)
	}

	server.Router = router
	server.HttpServer = &http.Server{
		Addr:              config.HttpServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		// the form waits for the solver before answering
		WriteTimeout: config.SolverTimeout + 5*time.Second,
	}
	return server, nil
}

// NewTestServer creates a new HTTP server for testing.
func NewTestServer(t *testing.T, s solver.Solver, cf *pkg.Config) *Server {
	server, err := NewServer(cf, s)
	require.NoError(t, err)

	return server
}

func (server *Server) Start() error {
	log.Info().Msgf("starting HTTP server on %s", server.Config.HttpServerAddress)
	if err := server.HttpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (server *Server) Stop(ctx context.Context) error {
	log.Info().Msg("gracefully stopping HTTP server")
	err := server.HttpServer.Shutdown(ctx)

	if err != nil {
		log.Error().Err(err).Msg("fail to stop HTTP server")
		return err
	}
	log.Info().Msg("HTTP server shutdown is complete")
	return nil
}
