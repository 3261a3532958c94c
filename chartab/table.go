// Package chartab builds, verifies, and decomposes character tables for the
// cyclic, dihedral, and polyhedral point-group families (spec.md §4.2–§4.6).
// It does not classify a geometry into a point group, assign conjugacy
// classes, or compute permutation representations: those are supplied to it
// by an external collaborator via the pgtypes.SymmetryOperation list.
package chartab

import (
	"github.com/go-msym/pointgroup/irrep"
	"github.com/go-msym/pointgroup/pgerr"
	"github.com/go-msym/pointgroup/pgtypes"
)

// Species names one irreducible (or complex-conjugate-pair) representation:
// its Mulliken label and dimension.
type Species struct {
	Name string
	Dim  int
}

// CharacterTable is the character table of one point group: d conjugacy
// classes, d irreps, and the d×d matrix of characters Table[irrep][class].
// Immutable once returned by Generate.
type CharacterTable struct {
	Type    pgtypes.Type
	N       int
	Species []Species
	// ClassSize[k] is the number of operations in conjugacy class k.
	ClassSize []int
	// Table[i][k] is the character of irrep i on class k.
	Table [][]float64
}

// Order returns |G|, the group order, i.e. Σ_k ClassSize[k].
func (ct *CharacterTable) Order() int {
	order := 0
	for _, c := range ct.ClassSize {
		order += c
	}
	return order
}

type repGenerator func(n, rl int) ([]irrep.Descriptor, error)

var parametricGenerators = map[pgtypes.Type]repGenerator{
	pgtypes.Cn:  representationsCn,
	pgtypes.Cnh: representationsCnh,
	pgtypes.Cnv: representationsCnv,
	pgtypes.Dn:  representationsDn,
	pgtypes.Dnh: representationsDnh,
	pgtypes.Dnd: representationsDnd,
}

type predefinedBinding struct {
	repOps []classRep
	irreps []predefinedIrrep
	table  func() [][]float64
}

func constTable(t [][]float64) func() [][]float64 { return func() [][]float64 { return t } }

var predefinedBindings = map[pgtypes.Type]predefinedBinding{
	pgtypes.T:  {tRepOps, tIrreps, constTable(tTable)},
	pgtypes.Td: {tdRepOps, tdIrreps, constTable(tdTable)},
	pgtypes.I:  {iRepOps, iIrreps, iTable},
	pgtypes.Ih: {ihRepOps, ihIrreps, ihTable},
}

// Generate builds and verifies the character table of the point group (t, n)
// from its runtime symmetry-operation list, following spec.md §4.5. d is
// taken as one plus the largest class index in ops. ops need not be sorted,
// but for every class index in [0, d) at least one operation must carry it.
func Generate(t pgtypes.Type, n int, ops []pgtypes.SymmetryOperation, opts ...Option) (*CharacterTable, error) {
	if len(ops) == 0 {
		return nil, pgerr.PointGroupf("no symmetry operations supplied")
	}
	cfg := newConfig(opts)
	d := pgtypes.ClassCount(ops)

	ct := &CharacterTable{
		Type:      t,
		N:         n,
		Species:   make([]Species, d),
		ClassSize: make([]int, d),
		Table:     make([][]float64, d),
	}
	for i := range ct.Table {
		ct.Table[i] = make([]float64, d)
	}

	if gen, ok := parametricGenerators[t]; ok {
		if err := fillParametric(ct, t, n, d, ops, gen, cfg.trace); err != nil {
			return nil, err
		}
	} else if bind, ok := predefinedBindings[t]; ok {
		names, dims, chars, err := predefinedTable(ops, d, bind.repOps, bind.irreps, bind.table())
		if err != nil {
			return nil, err
		}
		for i := 0; i < d; i++ {
			ct.Species[i] = Species{Name: names[i], Dim: dims[i]}
			cfg.trace("chartab: %s dim=%d", names[i], dims[i])
		}
		ct.Table = chars
	} else {
		return nil, pgerr.PointGroupf("unknown point group %v when generating character table", t)
	}

	for _, op := range ops {
		ct.ClassSize[op.Class]++
	}

	if err := verify(ct, cfg.thresholds...); err != nil {
		return nil, err
	}
	return ct, nil
}

// fillParametric runs a parametric irrep generator and fills in labels and
// characters by evaluating the §4.3 formula once per (irrep, class), using
// the first operation seen with each class index.
func fillParametric(ct *CharacterTable, t pgtypes.Type, n, d int, ops []pgtypes.SymmetryOperation, gen repGenerator, trace func(string, ...any)) error {
	descs, err := gen(n, d)
	if err != nil {
		return err
	}

	for i, desc := range descs {
		name, err := irrep.Label(t, n, desc)
		if err != nil {
			return err
		}
		ct.Species[i] = Species{Name: name, Dim: desc.Dim}
		trace("chartab: %s dim=%d", name, desc.Dim)

		seen := make([]bool, d)
		for _, op := range ops {
			if seen[op.Class] {
				continue
			}
			seen[op.Class] = true
			x, err := character(n, op, desc)
			if err != nil {
				return err
			}
			ct.Table[i][op.Class] = x
		}
	}
	return nil
}

// verify checks that every pair of distinct irrep rows is orthogonal under
// the class-weighted inner product, to within the table's orthogonality
// tolerance (default 1e-10, spec.md §4.5).
func verify(ct *CharacterTable, opts ...pgtypes.ThresholdOption) error {
	th := pgtypes.NewThresholds(opts...)
	d := len(ct.Species)
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			var r float64
			for k := 0; k < d; k++ {
				r += float64(ct.ClassSize[k]) * ct.Table[i][k] * ct.Table[j][k]
			}
			if r > th.Orthogonality || r < -th.Orthogonality {
				return pgerr.InvalidTablef("character table verification failed: irrep %s(%d) and %s(%d) are not orthogonal, product %e > %e",
					ct.Species[i].Name, i, ct.Species[j].Name, j, r, th.Orthogonality)
			}
		}
	}
	return nil
}
