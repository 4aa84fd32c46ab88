package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError defines the standard error response shape.
// Example: { "error": { "code": "bad_request", "message": "empty submission" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response
func JSONError(ctx *gin.Context, status int, code, msg string) {
	ctx.JSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, "bad_request", msg)
}

func Unauthorized(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusUnauthorized, "unauthorized", msg)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, "internal_error", msg)
}

func BadGateway(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadGateway, "upstream_error", msg)
}
