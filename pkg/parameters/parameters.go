// Package parameters provides validated parameter sets describing the
// mass, inertia, and geometry of a bicycle's rigid bodies, along with the
// conversions between equivalent parameterizations.
//
// A parameter set is a named collection of constant/value pairs tied to a
// specific published benchmark. Conversions between parameterizations assume
// the nominal configuration: upright, zero steer.
package parameters

import (
	"math"
	"sort"
)

// ParameterSet is the capability shared by all parameterizations. A set is
// validated at construction and treated as immutable afterwards; every
// derived quantity is recomputed from the parameter mapping on each call.
type ParameterSet interface {
	// Parameterization identifies the published source of the set.
	Parameterization() string
	// ParameterNames returns the sorted required parameter names.
	ParameterNames() []string
	// BodyLabels returns the single-letter rigid body identifiers.
	BodyLabels() []string
	// Parameters returns the underlying name-to-value mapping. The mapping
	// is a read-only view; the package never mutates it after construction.
	Parameters() map[string]float64
}

// validateParameters checks that every schema key is present in params with
// a finite value. Extra keys are tolerated. The first offending key, in
// lexical order, is reported.
func validateParameters(schema map[string]string, params map[string]float64) error {
	for _, name := range sortedNames(schema) {
		v, ok := params[name]
		if !ok {
			return &ValidationError{Key: name, Reason: "missing from the provided parameter map"}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Key: name, Reason: "value is not a finite float"}
		}
	}
	return nil
}

// sortedNames returns the schema's parameter names in lexical order.
func sortedNames(schema map[string]string) []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mergeDerived copies params and overlays the derived extras. Extras win
// over any same-named caller-supplied key, keeping derived values consistent
// with the schema parameters they are computed from.
func mergeDerived(params, extras map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(params)+len(extras))
	for k, v := range params {
		merged[k] = v
	}
	for k, v := range extras {
		merged[k] = v
	}
	return merged
}

func containsLabel(labels []string, body string) bool {
	for _, l := range labels {
		if l == body {
			return true
		}
	}
	return false
}
