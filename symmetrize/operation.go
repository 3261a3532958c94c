// Package symmetrize projects molecular geometries and wave functions onto
// the symmetric subspace of a point group (spec.md §4.7, §4.8). It consumes
// a point group's operations, permutation representations, and SALCs from
// external collaborators; it does not classify geometries or build SALCs
// itself.
package symmetrize

import (
	"math"

	"github.com/go-msym/pointgroup/pgtypes"
	"github.com/go-msym/pointgroup/spatial/r3"
)

// apply carries p through one symmetry operation: a rotation by 2π·Power/Order
// about Axis for a proper rotation, the same rotation followed by a
// reflection through the plane normal to Axis for an improper rotation, a
// reflection through the plane with normal Axis, or negation for an
// inversion. Identity returns p unchanged. Order 0 (a continuous C∞/S∞ axis)
// degenerates to a reflection-only (S∞) or identity-only (C∞) operation,
// since no finite rotation angle applies.
func apply(op pgtypes.SymmetryOperation, p r3.Vec) r3.Vec {
	switch op.Type {
	case pgtypes.Identity:
		return p
	case pgtypes.Inversion:
		return p.Scale(-1)
	case pgtypes.Reflection:
		return r3.Reflect(p, op.Axis)
	case pgtypes.ProperRotation:
		if op.Order == 0 {
			return p
		}
		rot := r3.NewRotation(2*math.Pi*float64(op.Power)/float64(op.Order), op.Axis)
		return rot.Rotate(p)
	case pgtypes.ImproperRotation:
		if op.Order == 0 {
			return r3.Reflect(p, op.Axis)
		}
		rot := r3.NewRotation(2*math.Pi*float64(op.Power)/float64(op.Order), op.Axis)
		return r3.Reflect(rot.Rotate(p), op.Axis)
	default:
		return p
	}
}
