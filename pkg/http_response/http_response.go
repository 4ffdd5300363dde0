package http_response

import "github.com/gin-gonic/gin"

// Error response
func ErrorResponse(statusCode int, message string) gin.H {
	return gin.H{
		"statusCode": statusCode,
		"message":    message,
		"data":       nil,
	}
}

// Error response carrying details the client can act on, e.g. the rejected denominations
func ErrorResponseWithData(statusCode int, message string, data interface{}) gin.H {
	return gin.H{
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	}
}

// Success response
func SuccessResponse(data interface{}, message string) gin.H {
	return gin.H{
		"statusCode": 200,
		"message":    message,
		"data":       data,
	}
}
