package chartab

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-msym/pointgroup/pgtypes"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func c3vOps() []pgtypes.SymmetryOperation {
	return []pgtypes.SymmetryOperation{
		{Type: pgtypes.Identity, Order: 1, Power: 1, Class: 0},
		// The principal C3 axis is classified Horizontal (chartab/character.go
		// dispatches the on-axis cosine formula for this orientation).
		{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Orientation: pgtypes.Horizontal, Class: 1},
		{Type: pgtypes.ProperRotation, Order: 3, Power: 2, Orientation: pgtypes.Horizontal, Class: 1},
		{Type: pgtypes.Reflection, Order: 1, Power: 1, Orientation: pgtypes.Vertical, Class: 2},
		{Type: pgtypes.Reflection, Order: 1, Power: 1, Orientation: pgtypes.Vertical, Class: 2},
		{Type: pgtypes.Reflection, Order: 1, Power: 1, Orientation: pgtypes.Vertical, Class: 2},
	}
}

func TestGenerateC3v(t *testing.T) {
	ct, err := Generate(pgtypes.Cnv, 3, c3vOps())
	if err != nil {
		t.Fatalf("Generate(Cnv,3): %v", err)
	}
	if got, want := ct.Order(), 6; got != want {
		t.Fatalf("|G| = %d, want %d", got, want)
	}

	// The sole E block carries angular index l=1, so its label is "E1" per
	// the l>0 suffix rule (spec.md §4.1) even though only one E irrep exists
	// for n=3.
	want := map[string][]float64{
		"A1": {1, 1, 1},
		"A2": {1, 1, -1},
		"E1": {2, -1, 0},
	}
	if len(ct.Species) != 3 {
		t.Fatalf("got %d irreps, want 3", len(ct.Species))
	}
	for i, s := range ct.Species {
		w, ok := want[s.Name]
		if !ok {
			t.Fatalf("unexpected irrep label %q", s.Name)
		}
		for k, x := range ct.Table[i] {
			if !approxEqual(x, w[k], 1e-9) {
				t.Errorf("%s character on class %d = %v, want %v", s.Name, k, x, w[k])
			}
		}
	}

	dimSum := 0
	for _, s := range ct.Species {
		dimSum += s.Dim * s.Dim
	}
	if dimSum != ct.Order() {
		t.Errorf("sum(dim^2) = %d, want |G| = %d", dimSum, ct.Order())
	}
}

// d2hOps supplies one representative operation per D2h class: the principal
// C2(z) and sigma_h are Horizontal (on the main axis/plane), the x-axis C2
// and its mirror are Vertical, and the y-axis C2 and its mirror take the
// remaining ("dihedral") orientation slot character.go's off-axis branch
// uses to distinguish the two non-principal classes for even n.
func d2hOps() []pgtypes.SymmetryOperation {
	return []pgtypes.SymmetryOperation{
		{Type: pgtypes.Identity, Order: 1, Power: 1, Class: 0},
		{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Orientation: pgtypes.Horizontal, Class: 1},
		{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Orientation: pgtypes.Vertical, Class: 2},
		{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Orientation: pgtypes.Dihedral, Class: 3},
		{Type: pgtypes.Inversion, Order: 1, Power: 1, Class: 4},
		{Type: pgtypes.Reflection, Order: 1, Power: 1, Orientation: pgtypes.Horizontal, Class: 5},
		{Type: pgtypes.Reflection, Order: 1, Power: 1, Orientation: pgtypes.Vertical, Class: 6},
		{Type: pgtypes.Reflection, Order: 1, Power: 1, Orientation: pgtypes.Dihedral, Class: 7},
	}
}

func TestGenerateD2h(t *testing.T) {
	ct, err := Generate(pgtypes.Dnh, 2, d2hOps())
	if err != nil {
		t.Fatalf("Generate(Dnh,2): %v", err)
	}
	if got, want := len(ct.Species), 8; got != want {
		t.Fatalf("got %d irreps, want %d", got, want)
	}
	for _, s := range ct.Species {
		if s.Dim != 1 {
			t.Errorf("D2h irrep %s has dimension %d, want 1", s.Name, s.Dim)
		}
	}
	for i := range ct.Species {
		for _, x := range ct.Table[i] {
			if !approxEqual(math.Abs(x), 1, 1e-9) {
				t.Errorf("D2h character %v is not +-1", x)
			}
		}
	}
}

func tdOps() []pgtypes.SymmetryOperation {
	ops := []pgtypes.SymmetryOperation{{Type: pgtypes.Identity, Order: 1, Power: 1, Class: 0}}
	for i := 0; i < 8; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Class: 1})
	}
	for i := 0; i < 3; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Class: 2})
	}
	for i := 0; i < 6; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ImproperRotation, Order: 4, Power: 1, Class: 3})
	}
	for i := 0; i < 6; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.Reflection, Order: 1, Power: 1, Class: 4})
	}
	return ops
}

func TestGenerateTd(t *testing.T) {
	ct, err := Generate(pgtypes.Td, 0, tdOps())
	if err != nil {
		t.Fatalf("Generate(Td): %v", err)
	}
	if got, want := ct.Order(), 24; got != want {
		t.Fatalf("|G| = %d, want %d", got, want)
	}

	want := []Species{{"A1", 1}, {"A2", 1}, {"E", 2}, {"T1", 3}, {"T2", 3}}
	if diff := cmp.Diff(want, ct.Species); diff != "" {
		t.Errorf("Td species mismatch (-want +got):\n%s", diff)
	}
}

func ihOps() []pgtypes.SymmetryOperation {
	classes := []struct {
		op    pgtypes.SymmetryOperation
		count int
	}{
		{pgtypes.SymmetryOperation{Type: pgtypes.Identity, Order: 1, Power: 1}, 1},
		{pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 2, Power: 1}, 15},
		{pgtypes.SymmetryOperation{Type: pgtypes.Reflection, Order: 1, Power: 1}, 15},
		{pgtypes.SymmetryOperation{Type: pgtypes.ImproperRotation, Order: 6, Power: 1}, 20},
		{pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 5, Power: 1}, 12},
		{pgtypes.SymmetryOperation{Type: pgtypes.ImproperRotation, Order: 10, Power: 1}, 12},
		{pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 5, Power: 2}, 12},
		{pgtypes.SymmetryOperation{Type: pgtypes.Inversion, Order: 1, Power: 1}, 1},
		{pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 3, Power: 1}, 20},
		{pgtypes.SymmetryOperation{Type: pgtypes.ImproperRotation, Order: 10, Power: 3}, 12},
	}
	var ops []pgtypes.SymmetryOperation
	for class, c := range classes {
		for i := 0; i < c.count; i++ {
			op := c.op
			op.Class = class
			ops = append(ops, op)
		}
	}
	return ops
}

func TestGenerateIh(t *testing.T) {
	ct, err := Generate(pgtypes.Ih, 0, ihOps())
	if err != nil {
		t.Fatalf("Generate(Ih): %v", err)
	}
	if got, want := len(ct.Species), 10; got != want {
		t.Fatalf("got %d irreps, want %d", got, want)
	}

	var agRow, auRow []float64
	for i, s := range ct.Species {
		switch s.Name {
		case "Ag":
			agRow = ct.Table[i]
		case "Au":
			auRow = ct.Table[i]
		}
	}
	if agRow == nil || auRow == nil {
		t.Fatalf("missing Ag/Au rows")
	}
	for k, x := range agRow {
		if !approxEqual(x, 1, 1e-9) {
			t.Errorf("Ag character on class %d = %v, want 1", k, x)
		}
	}
	wantAu := []float64{1, 1, -1, -1, 1, -1, 1, -1, 1, -1}
	for k, x := range auRow {
		if !approxEqual(x, wantAu[k], 1e-9) {
			t.Errorf("Au character on class %d = %v, want %v", k, x, wantAu[k])
		}
	}

	// T1u's character on C5 (class 4) is -C4pi = (1+sqrt5)/2.
	for i, s := range ct.Species {
		if s.Name == "T1u" {
			want := (1 + math.Sqrt(5)) / 2
			if got := ct.Table[i][4]; !approxEqual(got, want, 1e-9) {
				t.Errorf("T1u character on C5 = %v, want %v", got, want)
			}
		}
	}
}

func TestGenerateRowOrthogonality(t *testing.T) {
	cases := []struct {
		name string
		t    pgtypes.Type
		n    int
		ops  []pgtypes.SymmetryOperation
	}{
		{"C3v", pgtypes.Cnv, 3, c3vOps()},
		{"D2h", pgtypes.Dnh, 2, d2hOps()},
		{"Td", pgtypes.Td, 0, tdOps()},
		{"Ih", pgtypes.Ih, 0, ihOps()},
	}
	for _, c := range cases {
		ct, err := Generate(c.t, c.n, c.ops)
		if err != nil {
			t.Fatalf("%s: Generate: %v", c.name, err)
		}
		d := len(ct.Species)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				var r float64
				for k := 0; k < d; k++ {
					r += float64(ct.ClassSize[k]) * ct.Table[i][k] * ct.Table[j][k]
				}
				want := 0.0
				if i == j {
					want = float64(ct.Order())
				}
				if !approxEqual(r, want, 1e-9) {
					t.Errorf("%s: row orthogonality failed for (%d,%d): got %v, want %v", c.name, i, j, r, want)
				}
			}
		}
	}
}

func TestGenerateIdentityColumnEqualsDimension(t *testing.T) {
	ct, err := Generate(pgtypes.Td, 0, tdOps())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, s := range ct.Species {
		if got := ct.Table[i][0]; got != float64(s.Dim) {
			t.Errorf("irrep %s: identity-class character = %v, want dimension %d", s.Name, got, s.Dim)
		}
	}
}
