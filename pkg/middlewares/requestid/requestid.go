package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeaderKey = "X-Request-ID"
	RequestIDKey       = "request_id"
)

// RequestIDMiddleWare tags every request with an ID, keeping one sent by the client
func RequestIDMiddleWare() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeaderKey)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx.Set(RequestIDKey, id)
		ctx.Header(RequestIDHeaderKey, id)
		ctx.Next()
	}
}

// Get returns the ID assigned to the request, empty outside the middleware
func Get(ctx *gin.Context) string {
	return ctx.GetString(RequestIDKey)
}
