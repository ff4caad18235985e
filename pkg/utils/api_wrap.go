package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates service-layer sentinel errors into HTTP
// responses. Validation failures surface as 400 with the sentinel's text;
// anything unrecognised is a 500 with the detail kept out of the body.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMissingLocation),
		errors.Is(err, ErrNoImageFile),
		errors.Is(err, ErrUnsupportedImage),
		errors.Is(err, ErrImageTooLarge):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrLocationUnavailable):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	default:
		slog.Error("unhandled service error", "error", err, "path", c.FullPath())
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
