package models

import (
	"errors"
	"fmt"
)

// ErrCartItemNotFound is returned when no active cart item matches the
// requested id for the given cart.
var ErrCartItemNotFound = errors.New("cart item not found")

// ValidationError marks input the caller can fix: an out-of-range
// measurement, an unknown enumeration value or a missing field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigError marks a pricing table with no entry for a combination the
// enumerations allow. That is an operator problem, not a caller problem,
// and is surfaced separately from validation failures.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return "pricing config has no entry for " + e.Key
}
