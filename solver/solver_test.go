package solver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ChokeGuy/coin-change/coin"
	"github.com/stretchr/testify/require"
)

func TestMinimumCoins(t *testing.T) {
	req := coin.Request{
		TargetAmount:      7.03,
		CoinDenominations: []float64{0.01, 1, 5},
	}

	testCases := []struct {
		name        string
		handler     http.HandlerFunc
		checkResult func(t *testing.T, result coin.Result, err error)
	}{
		{
			name: "OK",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[5,1,1,0.01,0.01,0.01]`))
			},
			checkResult: func(t *testing.T, result coin.Result, err error) {
				require.NoError(t, err)
				require.Equal(t, coin.Result{5, 1, 1, 0.01, 0.01, 0.01}, result)
			},
		},
		{
			name: "Created",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`[]`))
			},
			checkResult: func(t *testing.T, result coin.Result, err error) {
				require.NoError(t, err)
				require.Empty(t, result)
			},
		},
		{
			name: "ServiceErrorBodyVerbatim",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte("Target amount cannot be reached with given denominations"))
			},
			checkResult: func(t *testing.T, result coin.Result, err error) {
				require.Nil(t, result)
				var serviceErr *ServiceError
				require.True(t, errors.As(err, &serviceErr))
				require.Equal(t, http.StatusBadRequest, serviceErr.StatusCode)
				require.Equal(t, "Target amount cannot be reached with given denominations", err.Error())
			},
		},
		{
			name: "InternalError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			checkResult: func(t *testing.T, result coin.Result, err error) {
				var serviceErr *ServiceError
				require.True(t, errors.As(err, &serviceErr))
				require.Equal(t, http.StatusInternalServerError, serviceErr.StatusCode)
				require.Equal(t, "boom\n", serviceErr.Body)
			},
		},
		{
			name: "MalformedBody",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"coins":[1]}`))
			},
			checkResult: func(t *testing.T, result coin.Result, err error) {
				require.Error(t, err)
				var serviceErr *ServiceError
				require.False(t, errors.As(err, &serviceErr))
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			s := NewHTTPSolver(srv.URL, time.Second)
			result, err := s.MinimumCoins(context.Background(), req)
			tc.checkResult(t, result, err)
		})
	}
}

func TestMinimumCoinsSendsExactPayload(t *testing.T) {
	var (
		method      string
		contentType string
		payload     []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		payload, _ = io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode([]float64{5, 1, 1, 0.01, 0.01, 0.01})
	}))
	defer srv.Close()

	s := NewHTTPSolver(srv.URL, time.Second)
	_, err := s.MinimumCoins(context.Background(), coin.Request{
		TargetAmount:      7.03,
		CoinDenominations: []float64{0.01, 1, 5},
	})
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "application/json", contentType)
	require.JSONEq(t, `{"targetAmount":7.03,"coinDenominations":[0.01,1,5]}`, string(payload))
}

func TestMinimumCoinsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := NewHTTPSolver(url, time.Second)
	result, err := s.MinimumCoins(context.Background(), coin.Request{TargetAmount: 1, CoinDenominations: []float64{1}})
	require.Error(t, err)
	require.Nil(t, result)

	var serviceErr *ServiceError
	require.False(t, errors.As(err, &serviceErr))
}
