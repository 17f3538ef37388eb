package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is what handlers return instead of writing an error response
// themselves. Message ends up in the "detail" field of the body.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin: the result is written as JSON
// with 200, an *APIError as {"detail": ...} with its code.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			_ = ctx.Error(apiErr)
			ctx.JSON(apiErr.Code, gin.H{"detail": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
