package symmetrize

import (
	"github.com/go-msym/pointgroup/pgtypes"
	"github.com/go-msym/pointgroup/spatial/r3"
)

// Translation applies a rigid-body translation to atomIndex within set,
// symmetrizes the resulting displacement field across every other atom in
// the set by averaging over the group action, and adds the result in place
// to every atom's position (spec.md §6's symmetrizeTranslation).
func Translation(pg pgtypes.PointGroup, set pgtypes.EquivalenceSet, perm []pgtypes.Permutation, atomIndex int, translation r3.Vec) {
	order := pg.Order()
	v := make([]r3.Vec, len(set.Atoms))

	for j, op := range pg.Operations {
		p := perm[j][atomIndex]
		v[p] = v[p].Add(apply(op, translation))
	}

	scale := float64(len(set.Atoms)) / float64(order)
	for i, atom := range set.Atoms {
		set.Atoms[i].Position = atom.Position.Add(v[i].Scale(scale))
	}
}
