// File: normalize.go
// Role: Relation weight normalization — the [min/max, 1] linear rescale.
// Determinism:
//   - Output order matches input row order; the policy is a pure function
//     of the weight multiset.

package hetero

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormalizeWeights maps raw relation weights onto final matrix weights.
//
// Policy branches:
//   - All weights equal (including the all-zero "no weight column" case):
//     every relation gets 1. This is an intentional policy branch, not an
//     error — a constant column carries no discriminative information.
//   - Otherwise: w' = (1−a)·(w−min)/(max−min) + a with a = min/max, mapping
//     max→1 and min→min/max. Ratio structure is preserved and the weakest
//     relation never collapses to "absent".
//
// Returns ErrBadWeight on NaN or ±Inf input; weights are otherwise taken
// as-is (no sign or range validation beyond finiteness).
// Complexity: O(R).
func NormalizeWeights(rels []Relation) ([]float64, error) {
	weights := make([]float64, len(rels))
	for i, r := range rels {
		if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) {
			return nil, fmt.Errorf("NormalizeWeights: row %d (%q→%q): %w", i, r.From, r.To, ErrBadWeight)
		}
		weights[i] = r.Weight
	}
	if len(weights) == 0 {
		return weights, nil
	}

	lo, hi := floats.Min(weights), floats.Max(weights)
	if lo == hi {
		// Degenerate column: unweighted or non-varying.
		for i := range weights {
			weights[i] = 1
		}

		return weights, nil
	}

	a := lo / hi
	scale := (1 - a) / (hi - lo)
	for i, w := range weights {
		weights[i] = scale*(w-lo) + a
	}

	return weights, nil
}
