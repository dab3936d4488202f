package app_error

import (
	"errors"
	"net/http"

	"scholarship/engine"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New attaches an explicit HTTP status to err, overriding the mapping in Status.
func New(err error, status int) error {
	return statusError{error: err, status: status}
}

// Status maps an error to the HTTP status it should be answered with.
func Status(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.status
	}
	switch {
	case errors.Is(err, engine.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrNotAssigned):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrInvalidReviewer):
		return http.StatusUnprocessableEntity
	case errors.Is(err, engine.ErrAlreadySubmitted),
		errors.Is(err, engine.ErrAlreadyDecided),
		errors.Is(err, engine.ErrIllegalTransition),
		errors.Is(err, engine.ErrPrematureDecision):
		return http.StatusConflict
	case errors.Is(err, engine.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Respond writes err with its mapped status. Unexpected errors are logged and
// answered without their details.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	WithHTTPStatus(c, err, status)
}
