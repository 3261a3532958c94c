package pgtypes

import "github.com/go-msym/pointgroup/spatial/r3"

// Atom is one atomic position, as supplied by the external geometry owner.
type Atom struct {
	Position r3.Vec
}

// EquivalenceSet is a set of atoms permuted among themselves by every
// operation of the point group.
type EquivalenceSet struct {
	Atoms []*Atom
}

// Permutation maps, for one group operation, each index within an
// equivalence set to the index it is carried to by that operation.
type Permutation []int

// SALC is one symmetry-adapted linear combination: a d-dimensional block (d
// partner functions) over fl basis functions, each row a coefficient vector.
// BasisIndex[j] gives the index into the shared basis-function list that
// column j of Coeff corresponds to.
type SALC struct {
	Dim        int
	BasisIndex []int
	Coeff      [][]float64 // Dim rows, len(BasisIndex) columns
}

// IrrepSALCs is the family of SALCs transforming as one irrep.
type IrrepSALCs struct {
	SALCs []SALC
}
