package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInsufficientData: a required sample or group is empty or below the
	// minimum size a statistic needs (sample variance needs n >= 2).
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// ErrInsufficientGroups: fewer distinct groups than the test requires.
	ErrInsufficientGroups = errors.New("insufficient groups for comparison")

	// ErrDegenerateTable: a contingency table with a zero expected cell or a
	// single row/column, making independence untestable.
	ErrDegenerateTable = errors.New("degenerate contingency table")

	// ErrInvalidConfig: a caller-supplied range, step or alpha is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Dataset errors
	ErrColumnNotFound   = errors.New("column not found")
	ErrColumnNotNumeric = errors.New("column is not numeric")
	ErrRaggedRows       = errors.New("rows do not share the view's column set")
)

// Error constructors with context
func NewInsufficientDataError(what string, n, min int) error {
	return fmt.Errorf("%w: %s has %d observations, need at least %d", ErrInsufficientData, what, n, min)
}

func NewInsufficientGroupsError(got, min int) error {
	return fmt.Errorf("%w: got %d, need at least %d", ErrInsufficientGroups, got, min)
}

func NewDegenerateTableError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateTable, reason)
}

func NewConfigError(param string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, param, reason)
}

func NewColumnNotFoundError(column string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}

// Error checking helpers
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsInsufficientGroups(err error) bool {
	return errors.Is(err, ErrInsufficientGroups)
}

func IsDegenerateTable(err error) bool {
	return errors.Is(err, ErrDegenerateTable)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
