package services

import (
	"errors"
	"fmt"
)

// ErrRouteUnavailable marks a segment the provider could not resolve:
// an empty alternative list, malformed route data, or a transport-level
// failure. Call sites decide whether that means omit, substitute a
// fallback estimate, or report the whole validation as failed; the error
// itself never encodes that policy.
var ErrRouteUnavailable = errors.New("route unavailable")

// PreconditionError reports a caller mistake (stop list too short,
// insertion index out of range). It is never retried and never converted
// into a ValidationResult.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return "precondition violated: " + e.Msg }

// DiscoveryEmptyError aborts a workflow run whose discovery stage found
// nothing to plan with.
type DiscoveryEmptyError struct {
	Kind string // "attractions" or "restaurants"
}

func (e *DiscoveryEmptyError) Error() string {
	return fmt.Sprintf("no %s found near the requested destination", e.Kind)
}
