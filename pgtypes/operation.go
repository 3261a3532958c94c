// Package pgtypes holds the data model shared across the character-table
// and symmetrization packages: symmetry operations, permutation
// representations, SALC descriptors, and numeric thresholds. Everything in
// this package is supplied by or to external collaborators (a point-group
// classifier, a permutation-representation builder, a SALC constructor);
// pgtypes only declares the shapes they agree on.
package pgtypes

import "github.com/go-msym/pointgroup/spatial/r3"

// OperationType tags the kind of a symmetry operation.
type OperationType int

const (
	Identity OperationType = iota
	ProperRotation
	ImproperRotation
	Reflection
	Inversion
)

func (t OperationType) String() string {
	switch t {
	case Identity:
		return "E"
	case ProperRotation:
		return "C"
	case ImproperRotation:
		return "S"
	case Reflection:
		return "sigma"
	case Inversion:
		return "i"
	default:
		return "?"
	}
}

// Orientation classifies a symmetry operation's relationship to the
// principal axis.
type Orientation int

const (
	None Orientation = iota
	Horizontal
	Vertical
	Dihedral
)

// SymmetryOperation is one symmetry operation of a point group, already
// assigned to a conjugacy class by the classifier. Order 0 denotes the
// continuous C∞/S∞ axis of a linear group.
type SymmetryOperation struct {
	Type        OperationType
	Order       int
	Power       int
	Axis        r3.Vec
	Orientation Orientation
	// Class is the conjugacy-class index assigned by the classifier. Class
	// indices are contiguous starting at 0 (see ClassCount); operations need
	// not be sorted by Class.
	Class int
}

// ClassCount returns one plus the largest class index in ops, i.e. the
// number of conjugacy classes (and therefore irreps) of the group. ops must
// be non-empty.
func ClassCount(ops []SymmetryOperation) int {
	d := 0
	for _, op := range ops {
		if op.Class+1 > d {
			d = op.Class + 1
		}
	}
	return d
}

// PointGroup is a point group's runtime operation list, as supplied by an
// external classifier: its type, axial order parameter, and the full,
// class-assigned operation list (order |G| := len(Operations)).
type PointGroup struct {
	Type       Type
	N          int
	Operations []SymmetryOperation
}

// Order returns |G|, the number of operations in the group.
func (pg PointGroup) Order() int {
	return len(pg.Operations)
}
