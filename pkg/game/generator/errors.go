package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive grid height or width.
	ErrInvalidDimensions = errors.New("generator: grid dimensions must be positive")
	// ErrEmptyInterior indicates map borders that leave no cell to seed from.
	ErrEmptyInterior = errors.New("generator: map border leaves an empty interior")
	// ErrInvalidChunkRange indicates chunk size bounds that select nothing.
	ErrInvalidChunkRange = errors.New("generator: chunk size range is empty")
	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("generator: probability must be within [0, 1]")
	// ErrInvalidLandPercentage indicates a land fraction outside [0, 1].
	ErrInvalidLandPercentage = errors.New("generator: land percentage must be within [0, 1]")
	// ErrInvalidStep indicates a non-positive height step or pass cap.
	ErrInvalidStep = errors.New("generator: height step and pass cap must be positive")
	// ErrUnknownGenerator indicates a lookup for an unregistered generator name.
	ErrUnknownGenerator = errors.New("generator: unknown generator")
	// ErrBudgetExhausted reports that land creation hit its pass cap with budget left.
	// It is surfaced through Report.Warning and never returned as a failure.
	ErrBudgetExhausted = errors.New("generator: pass cap reached before land budget was used up")
)

// ConfigError describes one rejected configuration field.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (%s = %v)", e.Err, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
