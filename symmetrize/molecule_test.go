package symmetrize

import (
	"math"
	"testing"

	"github.com/go-msym/pointgroup/pgtypes"
	"github.com/go-msym/pointgroup/spatial/r3"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// tetrahedralOps builds the 12 proper rotations of T (the rotation subgroup
// of Td) acting on the four alternating vertices of a cube, v0=(1,1,1),
// v1=(1,-1,-1), v2=(-1,1,-1), v3=(-1,-1,1): identity, 2 powers of C3 about
// each vertex-to-opposite-face axis, and 3 C2 about the coordinate axes.
// perm[j][k] gives the vertex index atom k is carried to by operation j,
// derived directly from Rodrigues' formula for each axis/angle.
func tetrahedralOps() ([]pgtypes.SymmetryOperation, []pgtypes.Permutation) {
	axis := func(x, y, z float64) r3.Vec { return r3.Vec{x, y, z} }
	ops := []pgtypes.SymmetryOperation{
		{Type: pgtypes.Identity, Order: 1, Power: 1},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Axis: axis(1, 1, 1)},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 2, Axis: axis(1, 1, 1)},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Axis: axis(1, -1, -1)},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 2, Axis: axis(1, -1, -1)},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Axis: axis(-1, 1, -1)},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 2, Axis: axis(-1, 1, -1)},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Axis: axis(-1, -1, 1)},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 2, Axis: axis(-1, -1, 1)},
		{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Axis: axis(1, 0, 0)},
		{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Axis: axis(0, 1, 0)},
		{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Axis: axis(0, 0, 1)},
	}
	perm := []pgtypes.Permutation{
		{0, 1, 2, 3},
		{0, 2, 3, 1},
		{0, 3, 1, 2},
		{3, 1, 0, 2},
		{2, 1, 3, 0},
		{1, 3, 2, 0},
		{3, 0, 2, 1},
		{2, 0, 1, 3},
		{1, 2, 0, 3},
		{1, 0, 3, 2},
		{2, 3, 0, 1},
		{3, 2, 1, 0},
	}
	return ops, perm
}

func tetrahedronVertices() []r3.Vec {
	return []r3.Vec{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
}

func TestMoleculeTetrahedronReducesAndConverges(t *testing.T) {
	ops, perm := tetrahedralOps()
	pg := pgtypes.PointGroup{Type: pgtypes.Td, N: 0, Operations: ops}

	v := tetrahedronVertices()
	atoms := make([]*pgtypes.Atom, len(v))
	for i, p := range v {
		atoms[i] = &pgtypes.Atom{Position: p}
	}
	// Perturb only the first vertex; the other three stay on the exact
	// tetrahedron.
	atoms[0].Position = atoms[0].Position.Add(r3.Vec{0.02, 0, 0})

	sets := []pgtypes.EquivalenceSet{{Atoms: atoms}}
	permSets := [][]pgtypes.Permutation{perm}
	th := pgtypes.NewThresholds()

	e1, err := Molecule(pg, sets, permSets, th)
	if err != nil {
		t.Fatalf("Molecule: %v", err)
	}
	if e1 <= 0 {
		t.Fatalf("expected nonzero error for a perturbed geometry, got %v", e1)
	}
	if e1 > 0.05 {
		t.Fatalf("expected a small residual error for a slightly perturbed tetrahedron, got %v", e1)
	}

	e2, err := Molecule(pg, sets, permSets, th)
	if err != nil {
		t.Fatalf("Molecule (second call): %v", err)
	}
	if e2 > 1e-9 {
		t.Fatalf("expected the second call to converge to the exact geometry, got error %v", e2)
	}
}

func TestMoleculeLinearReducesToMachineEpsilon(t *testing.T) {
	axis := r3.Vec{0, 0, 1}
	pg := pgtypes.PointGroup{
		Type: pgtypes.Cnv,
		N:    0,
		Operations: []pgtypes.SymmetryOperation{
			{Type: pgtypes.ProperRotation, Order: 0, Axis: axis},
		},
	}

	noise := 1e-6
	positions := []r3.Vec{
		{noise, -noise, -1.0}, // N
		{noise / 2, noise / 3, 0.0}, // C
		{-noise, noise, 1.0}, // H
	}

	var sets []pgtypes.EquivalenceSet
	var permSets [][]pgtypes.Permutation
	for _, p := range positions {
		sets = append(sets, pgtypes.EquivalenceSet{Atoms: []*pgtypes.Atom{{Position: p}}})
		permSets = append(permSets, []pgtypes.Permutation{{0}})
	}

	th := pgtypes.NewThresholds()
	e, err := Molecule(pg, sets, permSets, th)
	if err != nil {
		t.Fatalf("Molecule: %v", err)
	}
	if e > 1e-9 {
		t.Fatalf("expected the linear-path symmetrizer to nearly eliminate perpendicular noise, got error %v", e)
	}

	for i, set := range sets {
		if got := set.Atoms[0].Position; !approxEqual(got[0], 0, 1e-12) || !approxEqual(got[1], 0, 1e-12) {
			t.Errorf("atom %d: perpendicular component not removed, got %v", i, got)
		}
	}
}

func TestMoleculeRejectsOversizedEquivalenceSet(t *testing.T) {
	pg := pgtypes.PointGroup{
		Type: pgtypes.Cn,
		N:    2,
		Operations: []pgtypes.SymmetryOperation{
			{Type: pgtypes.Identity, Order: 1, Power: 1},
			{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Axis: r3.Vec{0, 0, 1}},
		},
	}
	atoms := []*pgtypes.Atom{{}, {}, {}}
	sets := []pgtypes.EquivalenceSet{{Atoms: atoms}}
	permSets := [][]pgtypes.Permutation{{{0, 1, 2}, {0, 1, 2}}}

	if _, err := Molecule(pg, sets, permSets, pgtypes.NewThresholds()); err == nil {
		t.Fatalf("expected an error for an equivalence set larger than the group order")
	}
}
