package handlers

import (
	"net/http"

	"dermacare/services/scheduling"

	"github.com/gin-gonic/gin"
)

// statusFor maps scheduling error codes onto HTTP statuses.
func statusFor(code string) int {
	switch code {
	case scheduling.CodeInvalidRequest:
		return http.StatusBadRequest
	case scheduling.CodeUnauthenticated:
		return http.StatusUnauthorized
	case scheduling.CodeNotFound:
		return http.StatusNotFound
	case scheduling.CodeConflict:
		return http.StatusConflict
	case scheduling.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders a typed scheduling error as a structured JSON
// response with its stable code.
func writeServiceError(c *gin.Context, err error) {
	code := scheduling.CodeOf(err)
	c.JSON(statusFor(code), gin.H{
		"success": false,
		"code":    code,
		"message": err.Error(),
	})
}
