package models

import (
	"fmt"
	"strings"
)

// SweepConflictError reports a call in which more than one override
// parameter was vector-valued. It is raised before any matrix work begins.
type SweepConflictError struct {
	Keys []string
}

func (e *SweepConflictError) Error() string {
	return fmt.Sprintf("only one override may be a sweep vector, got %d: %s",
		len(e.Keys), strings.Join(e.Keys, ", "))
}

// NumericError wraps a linear algebra failure (singular or ill-conditioned
// mass matrix, eigen solver failure). It is propagated, never masked.
type NumericError struct {
	Op  string
	Err error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("numeric failure in %s: %v", e.Op, e.Err)
}

func (e *NumericError) Unwrap() error { return e.Err }
