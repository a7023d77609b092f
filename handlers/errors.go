package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacationplanner/middleware"
	"vacationplanner/models"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// respondDomainError maps planner errors to HTTP responses.
func (h *Handler) respondDomainError(c *gin.Context, err error) {
	switch {
	case models.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case models.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, models.ErrStoreUnavailable):
		respondError(c, http.StatusServiceUnavailable, "store_unavailable", "trip storage is not configured")
	default:
		h.log.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
