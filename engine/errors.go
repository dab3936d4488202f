package engine

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidReviewer   = errors.New("user is not a reviewer")
	ErrNotAssigned       = errors.New("reviewer is not assigned to this application")
	ErrAlreadySubmitted  = errors.New("review has already been submitted")
	ErrAlreadyDecided    = errors.New("application has already been decided")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrPrematureDecision = errors.New("application has not been fully reviewed")
	ErrValidation        = errors.New("validation failed")
)
