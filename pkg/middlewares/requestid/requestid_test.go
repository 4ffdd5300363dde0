package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleWare(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clientID := uuid.NewString()

	testCases := []struct {
		name          string
		setupHeader   func(request *http.Request)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:        "Generated",
			setupHeader: func(request *http.Request) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				id := recorder.Header().Get(RequestIDHeaderKey)
				_, err := uuid.Parse(id)
				require.NoError(t, err)
				require.Equal(t, id, recorder.Body.String())
			},
		},
		{
			name: "KeepsClientID",
			setupHeader: func(request *http.Request) {
				request.Header.Set(RequestIDHeaderKey, clientID)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, clientID, recorder.Header().Get(RequestIDHeaderKey))
				require.Equal(t, clientID, recorder.Body.String())
			},
		},
		{
			name: "ReplacesMalformedID",
			setupHeader: func(request *http.Request) {
				request.Header.Set(RequestIDHeaderKey, "not-an-id")
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				id := recorder.Header().Get(RequestIDHeaderKey)
				require.NotEqual(t, "not-an-id", id)
				_, err := uuid.Parse(id)
				require.NoError(t, err)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestIDMiddleWare())
			router.GET("/id", func(ctx *gin.Context) {
				ctx.String(http.StatusOK, Get(ctx))
			})

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, "/id", nil)
			require.NoError(t, err)

			tc.setupHeader(request)
			router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
