package symmetrize

import (
	"testing"

	"github.com/go-msym/pointgroup/chartab"
	"github.com/go-msym/pointgroup/pgtypes"
)

// twoSpeciesTable builds a minimal 1-D x 1-D character table (shape only
// matters to Wavefunctions, not orthogonality) and matching single-function
// SALCs: irrep 0 spans basis function 0, irrep 1 spans basis function 1.
func twoSpeciesTable() (*chartab.CharacterTable, []pgtypes.IrrepSALCs) {
	ct := &chartab.CharacterTable{
		Species:   []chartab.Species{{Name: "A", Dim: 1}, {Name: "B", Dim: 1}},
		ClassSize: []int{1},
		Table:     [][]float64{{1}, {1}},
	}
	subspaces := []pgtypes.IrrepSALCs{
		{SALCs: []pgtypes.SALC{{Dim: 1, BasisIndex: []int{0}, Coeff: [][]float64{{1}}}}},
		{SALCs: []pgtypes.SALC{{Dim: 1, BasisIndex: []int{1}, Coeff: [][]float64{{1}}}}},
	}
	return ct, subspaces
}

func TestWavefunctionsReproducesPureBasis(t *testing.T) {
	ct, subspaces := twoSpeciesTable()
	wf := [][]float64{{1, 0}, {0, 1}}

	sym, err := Wavefunctions(ct, subspaces, []int{1, 1}, wf)
	if err != nil {
		t.Fatalf("Wavefunctions: %v", err)
	}
	if len(sym) != 2 {
		t.Fatalf("got %d symmetrized wave functions, want 2", len(sym))
	}
	for i, row := range sym {
		if len(row) != 2 {
			t.Fatalf("row %d has %d components, want 2", i, len(row))
		}
	}
	want := [][]float64{{1, 0}, {0, 1}}
	for i := range want {
		for j := range want[i] {
			if sym[i][j] != want[i][j] {
				t.Errorf("sym[%d][%d] = %v, want %v", i, j, sym[i][j], want[i][j])
			}
		}
	}
}

func TestWavefunctionsRejectsSpanMismatch(t *testing.T) {
	ct, subspaces := twoSpeciesTable()
	wf := [][]float64{{1, 0}, {0, 1}}

	if _, err := Wavefunctions(ct, subspaces, []int{2, 1}, wf); err == nil {
		t.Fatalf("expected an error when the declared span does not match the projected orbitals")
	}
}

// degenerateTable builds a single Dim-2 irrep ("E") whose sole SALC has two
// partner functions spanning basis functions 0 and 1 respectively
// (Coeff[0]={1,0}, Coeff[1]={0,1}): a minimal doubly-degenerate subspace that
// forces Wavefunctions' partner-pairing and dimension-assignment logic to
// actually run, unlike twoSpeciesTable's two independent Dim-1 irreps.
func degenerateTable() (*chartab.CharacterTable, []pgtypes.IrrepSALCs) {
	ct := &chartab.CharacterTable{
		Species:   []chartab.Species{{Name: "E", Dim: 2}},
		ClassSize: []int{1},
		Table:     [][]float64{{2}},
	}
	subspaces := []pgtypes.IrrepSALCs{
		{SALCs: []pgtypes.SALC{{Dim: 2, BasisIndex: []int{0, 1}, Coeff: [][]float64{{1, 0}, {0, 1}}}}},
	}
	return ct, subspaces
}

func TestWavefunctionsPairsDegeneratePartners(t *testing.T) {
	ct, subspaces := degenerateTable()
	// wf[0] is pure partner 0, wf[1] is pure partner 1: already-orthogonal
	// degenerate partners that Wavefunctions must recognize as belonging to
	// the same E pair and reconstruct unchanged.
	wf := [][]float64{{1, 0}, {0, 1}}

	sym, err := Wavefunctions(ct, subspaces, []int{1}, wf)
	if err != nil {
		t.Fatalf("Wavefunctions: %v", err)
	}
	want := [][]float64{{1, 0}, {0, 1}}
	for i := range want {
		for j := range want[i] {
			if sym[i][j] != want[i][j] {
				t.Errorf("sym[%d][%d] = %v, want %v", i, j, sym[i][j], want[i][j])
			}
		}
	}
}
