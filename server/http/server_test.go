package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkg "github.com/ChokeGuy/coin-change/pkg/config"
	"github.com/ChokeGuy/coin-change/pkg/middlewares/requestid"
	"github.com/ChokeGuy/coin-change/solver"
	"github.com/ChokeGuy/coin-change/validations"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig() *pkg.Config {
	return &pkg.Config{
		ENV:                  "test",
		HttpServerAddress:    "127.0.0.1:0",
		SolverURL:            "http://localhost:8080/coin-change",
		SolverTimeout:        time.Second,
		DefaultDenominations: "0.01,0.5,1,5,10",
	}
}

func TestNewServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	server := NewTestServer(t, solver.NewHTTPSolver(cfg.SolverURL, cfg.SolverTimeout), cfg)

	require.Equal(t, validations.PolicyWarn, server.Builder.Policy())
	require.Equal(t, "0.01,0.5,1,5,10", server.Form.Snapshot().Denominations)
	require.Equal(t, cfg.HttpServerAddress, server.HttpServer.Addr)
	require.Equal(t, 6*time.Second, server.HttpServer.WriteTimeout)

	server.Router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)

	server.Router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get(requestid.RequestIDHeaderKey))
}

func TestNewServerBlockPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.DenominationPolicy = "block"

	server, err := NewServer(cfg, nil)
	require.NoError(t, err)
	require.Equal(t, validations.PolicyBlock, server.Builder.Policy())
}

func TestNewServerUnknownPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.DenominationPolicy = "sometimes"

	server, err := NewServer(cfg, nil)
	require.Error(t, err)
	require.Nil(t, server)
}
