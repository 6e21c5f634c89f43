package models

import "sort"

// Value is a tagged override value: either a scalar replacing a parameter
// for one evaluation, or a sweep vector evaluating the model once per entry.
type Value struct {
	scalar float64
	sweep  []float64
	swept  bool
}

// Scalar wraps a single float override.
func Scalar(v float64) Value {
	return Value{scalar: v}
}

// Sweep wraps a vector override. At most one override in a call may be a
// sweep.
func Sweep(values []float64) Value {
	return Value{sweep: values, swept: true}
}

// IsSweep reports whether the value is vector-valued.
func (v Value) IsSweep() bool { return v.swept }

// Overrides maps benchmark parameter names to replacement values for one
// model evaluation. The stored parameter set is never mutated; overrides are
// merged into a transient copy.
type Overrides map[string]Value

// sweepKeys returns the names of vector-valued overrides in lexical order.
func (ov Overrides) sweepKeys() []string {
	var keys []string
	for name, v := range ov {
		if v.IsSweep() {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

// expand validates the single-sweep rule and produces one merged parameter
// mapping per sample: a single mapping when no override sweeps, n mappings
// in sweep order when one override is a vector of length n.
func (ov Overrides) expand(base map[string]float64) ([]map[string]float64, error) {
	swept := ov.sweepKeys()
	if len(swept) > 1 {
		return nil, &SweepConflictError{Keys: swept}
	}

	merge := func(extra map[string]float64) map[string]float64 {
		merged := make(map[string]float64, len(base)+len(ov))
		for k, v := range base {
			merged[k] = v
		}
		for name, v := range ov {
			if !v.IsSweep() {
				merged[name] = v.scalar
			}
		}
		for k, v := range extra {
			merged[k] = v
		}
		return merged
	}

	if len(swept) == 0 {
		return []map[string]float64{merge(nil)}, nil
	}

	name := swept[0]
	samples := make([]map[string]float64, len(ov[name].sweep))
	for i, v := range ov[name].sweep {
		samples[i] = merge(map[string]float64{name: v})
	}
	return samples, nil
}
