package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors. These are reported, recoverable conditions: callers are
	// expected to log them and continue, not abort.
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidMethod       = fmt.Errorf("%w: unsupported correlation method", ErrInvalidInput)
	ErrTooFewNumericCols   = fmt.Errorf("%w: fewer than two numeric columns", ErrInvalidInput)
	ErrColumnNotFound      = errors.New("column not found")
	ErrEmptyCorrelation    = errors.New("no data left for pairwise correlations")
	ErrEmptyDataset        = errors.New("dataset has no rows")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Error constructors with context
func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

func NewInvalidMethodError(method string) error {
	return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrColumnNotFound) ||
		errors.Is(err, ErrEmptyCorrelation)
}
