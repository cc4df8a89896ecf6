// Package apperrors holds the error kinds shared by the store, the statistics engine and the
// HTTP layer. Callers classify with errors.Is.
package apperrors

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrNoData       = errors.New("no data")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrStore        = errors.New("store error")

	// ErrConstraint accompanies ErrStore when a write broke a referential constraint.
	ErrConstraint = errors.New("constraint violation")
)
