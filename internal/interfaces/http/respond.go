package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendError writes a structured error response. AppErrors map to their HTTP
// status; anything else is a generic 500 so internal detail never leaks.
func SendError(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		c.AbortWithStatusJSON(appErr.HTTPStatus, errorBody{Code: appErr.Code, Message: appErr.Message})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{
		Code:    errors.CodeInternal,
		Message: "An unexpected error occurred",
	})
}
