package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chepyr/taskboard/internal/db"
)

const (
	kindMissingField        = "missing_field"
	kindInvalidField        = "invalid_field"
	kindNotFound            = "not_found"
	kindConstraintViolation = "constraint_violation"
	kindStoreError          = "store_error"
	kindRateLimited         = "rate_limited"
)

type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func newAPIError(kind, message string) apiError {
	return apiError{
		Kind:    kind,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

// abort answers 400 for every failure of the task API; clients depend on it.
func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, err)
}

func (h *Handler) missingField(c *gin.Context, message string) {
	h.logger(c).Warn().Str("path", c.FullPath()).Msg(message)
	abort(c, newAPIError(kindMissingField, message))
}

func (h *Handler) invalidField(c *gin.Context, message string) {
	h.logger(c).Warn().Str("path", c.FullPath()).Msg(message)
	abort(c, newAPIError(kindInvalidField, message))
}

func (h *Handler) storeFailure(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, db.ErrTaskNotFound), errors.Is(err, db.ErrCommentNotFound):
		h.logger(c).Warn().Err(err).Msg(msg)
		abort(c, newAPIError(kindNotFound, err.Error()))
	case db.IsConstraintViolation(err):
		h.logger(c).Warn().Err(err).Msg(msg)
		abort(c, newAPIError(kindConstraintViolation, err.Error()))
	default:
		h.logger(c).Error().Err(err).Msg(msg)
		abort(c, newAPIError(kindStoreError, err.Error()))
	}
}
