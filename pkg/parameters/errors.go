package parameters

import "fmt"

// ValidationError reports the first parameter that failed schema validation
// at construction time.
type ValidationError struct {
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Key, e.Reason)
}

// UndefinedBodyError reports a query that referenced a rigid body label
// outside the set's body labels.
type UndefinedBodyError struct {
	Body string
}

func (e *UndefinedBodyError) Error() string {
	return fmt.Sprintf("undefined body label %q", e.Body)
}
