package chartab

import "github.com/go-msym/pointgroup/pgerr"

// Decompose resolves a class-indexed representation span rspan into the
// number of times each irrep of ct occurs, following spec.md §4.6:
//
//	dspan[k] = (1/|G|) Σ_j classc[j]·rspan[j]·χ_k(j)
//
// rspan is indexed by class, not by operation. Entries of the result are
// real non-negative integers up to rounding.
func Decompose(ct *CharacterTable, rspan []float64) ([]float64, error) {
	d := len(ct.Species)
	if len(rspan) != d {
		return nil, pgerr.InvalidTablef("representation span length %d does not match table size %d", len(rspan), d)
	}

	dspan := make([]float64, d)
	order := ct.Order()
	for k := 0; k < d; k++ {
		var sum float64
		for j := 0; j < d; j++ {
			sum += float64(ct.ClassSize[j]) * rspan[j] * ct.Table[k][j]
		}
		dspan[k] = sum / float64(order)
	}
	return dspan, nil
}

// DirectProduct returns the pointwise product of two class-indexed character
// vectors of the same point group (spec.md §4.6).
func DirectProduct(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, pgerr.InvalidTablef("direct product operands have mismatched length %d != %d", len(a), len(b))
	}
	p := make([]float64, len(a))
	for i := range a {
		p[i] = a[i] * b[i]
	}
	return p, nil
}
