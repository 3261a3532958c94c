package symmetrize

import (
	"math"

	"github.com/go-msym/pointgroup/pgerr"
	"github.com/go-msym/pointgroup/pgtypes"
	"github.com/go-msym/pointgroup/spatial/r3"
)

// Molecule projects every equivalence set of a geometry onto the fully
// symmetric subspace of pg, in place, and returns the square root of the
// relative squared-length error of the projection, summed over equivalence
// sets (for a linear group, the largest per-set error is taken instead of the
// sum) (spec.md §4.7). It is more costly than reconstructing each
// set from a single atom, but the result is independent of which atom was
// chosen, and it yields the size of the fully symmetric component as a
// byproduct.
//
// perm[i][j] is the permutation of equivalence set i under group operation
// j: perm[i][j][k] is the index within set i that atom k is carried to.
// Every equivalence set must have length at most pg.Order().
func Molecule(pg pgtypes.PointGroup, sets []pgtypes.EquivalenceSet, perm [][]pgtypes.Permutation, th pgtypes.Thresholds, opts ...Option) (float64, error) {
	cfg := newConfig(opts)
	if pgtypes.Linear(pg.Type, pg.N) {
		return symmetrizeLinear(pg, sets, perm, th, cfg)
	}
	return symmetrizeProject(pg, sets, perm, th, cfg)
}

func symmetrizeProject(pg pgtypes.PointGroup, sets []pgtypes.EquivalenceSet, perm [][]pgtypes.Permutation, th pgtypes.Thresholds, cfg *config) (float64, error) {
	order := pg.Order()
	var e float64

	for i, set := range sets {
		if len(set.Atoms) > order {
			return 0, pgerr.Symmetrizationf("equivalence set (%d elements) larger than order of point group (%d)", len(set.Atoms), order)
		}

		v := make([]r3.Vec, len(set.Atoms))
		for j, op := range pg.Operations {
			p := perm[i][j]
			for k, atom := range set.Atoms {
				v[p[k]] = v[p[k]].Add(apply(op, atom.Position))
			}
		}

		var ol, sl float64
		for k, atom := range set.Atoms {
			ol += atom.Position.Norm2()
			sl += v[k].Norm2()
			set.Atoms[k].Position = v[k].Scale(1 / float64(order))
		}
		sl /= float64(order) * float64(order)

		if !(len(set.Atoms) == 1 && ol <= th.Zero) {
			e += (ol - sl) / ol
		}
		cfg.trace("symmetrize: equivalence set %d error total now %e", i, e)
	}

	return math.Sqrt(math.Max(e, 0)), nil
}

func symmetrizeLinear(pg pgtypes.PointGroup, sets []pgtypes.EquivalenceSet, perm [][]pgtypes.Permutation, th pgtypes.Thresholds, cfg *config) (float64, error) {
	var cinf *pgtypes.SymmetryOperation
	for i := range pg.Operations {
		if op := &pg.Operations[i]; op.Type == pgtypes.ProperRotation && op.Order == 0 {
			cinf = op
			break
		}
	}
	if cinf == nil {
		return 0, pgerr.Symmetrizationf("cannot find C-infinity operation in linear point group")
	}

	order := pg.Order()
	var e float64

	for i, set := range sets {
		if len(set.Atoms) > order {
			return 0, pgerr.Symmetrizationf("equivalence set (%d elements) larger than order of point group (%d)", len(set.Atoms), order)
		}

		vinf := make([]r3.Vec, len(set.Atoms))
		for k, atom := range set.Atoms {
			axis := cinf.Axis
			vinf[k] = axis.Scale(atom.Position.Dot(axis) / axis.Dot(axis))
		}

		v := make([]r3.Vec, len(set.Atoms))
		for j, op := range pg.Operations {
			p := perm[i][j]
			for k := range set.Atoms {
				v[p[k]] = v[p[k]].Add(apply(op, vinf[k]))
			}
		}

		var ol, sl float64
		for k, atom := range set.Atoms {
			ol += atom.Position.Norm2()
			sl += v[k].Norm2()
			set.Atoms[k].Position = v[k].Scale(1 / float64(order))
		}
		sl /= float64(order) * float64(order)

		if !(len(set.Atoms) == 1 && ol <= th.Zero) {
			e = math.Max(e, (ol-sl)/ol)
		}
		cfg.trace("symmetrize: linear equivalence set %d error term now %e", i, e)
	}

	return math.Sqrt(math.Max(e, 0)), nil
}
