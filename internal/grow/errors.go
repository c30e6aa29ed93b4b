package grow

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks every configuration rejected before work begins.
	ErrConfig = errors.New("invalid configuration")
	// ErrResourceLimit marks configurations whose estimated footprint exceeds
	// the configured memory budget. Errors carrying it also match ErrConfig.
	ErrResourceLimit = errors.New("memory budget exceeded")
)

// ConfigError names the offending field of a rejected Config.
type ConfigError struct {
	Field  string
	Reason string

	limit bool
}

func (e *ConfigError) Error() string {
	if e.limit {
		return fmt.Sprintf("%v: %s: %s", ErrResourceLimit, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrConfig, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrConfig and, for budget failures,
// ErrResourceLimit.
func (e *ConfigError) Unwrap() []error {
	if e.limit {
		return []error{ErrConfig, ErrResourceLimit}
	}
	return []error{ErrConfig}
}

// PreconditionError reports a broken internal invariant. The engine raises it
// with panic from inside the growth loop; Run converts it to an error.
type PreconditionError struct {
	What string
}

func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.What
}
