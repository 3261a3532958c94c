package chartab

import (
	"math"

	"github.com/go-msym/pointgroup/pgerr"
	"github.com/go-msym/pointgroup/pgtypes"
)

// c2pi and c4pi are the golden-ratio constants 2cos(2pi/5) and 2cos(4pi/5)
// used literally in the predefined I and Ih tables (spec.md §4.4).
var (
	c2pi = 2 * math.Cos(2*math.Pi/5)
	c4pi = 2 * math.Cos(4*math.Pi/5)
)

// classRep is a class-representative descriptor: the (type, order, power,
// orientation) tuple a predefined table column is keyed by.
type classRep struct {
	Type        pgtypes.OperationType
	Order       int
	Power       int
	Orientation pgtypes.Orientation
}

// predefinedIrrep names and dimensions one row of a predefined table.
type predefinedIrrep struct {
	Name string
	Dim  int
}

var tRepOps = []classRep{
	{Type: pgtypes.Identity, Order: 1, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 3, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 2, Power: 1},
}

var tIrreps = []predefinedIrrep{{"A", 1}, {"E", 2}, {"T", 3}}

// tTable's E row is the real, reducible 2-D block standing in for a
// complex-conjugate pair {1 e e* 1}, {1 e* e 1} where e = exp(i2pi/3).
var tTable = [][]float64{
	{1, 1, 1},
	{2, -1, 2},
	{3, 0, -1},
}

var tdRepOps = []classRep{
	{Type: pgtypes.Identity, Order: 1, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 2, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 3, Power: 1},
	{Type: pgtypes.ImproperRotation, Order: 4, Power: 1},
	{Type: pgtypes.Reflection, Order: 1, Power: 1},
}

var tdIrreps = []predefinedIrrep{{"A1", 1}, {"A2", 1}, {"E", 2}, {"T1", 3}, {"T2", 3}}

var tdTable = [][]float64{
	{1, 1, 1, 1, 1},
	{1, 1, 1, -1, -1},
	{2, 2, -1, 0, 0},
	{3, -1, 0, 1, -1},
	{3, -1, 0, -1, 1},
}

var iRepOps = []classRep{
	{Type: pgtypes.Identity, Order: 1, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 2, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 3, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 5, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 5, Power: 2},
}

var iIrreps = []predefinedIrrep{{"A", 1}, {"T1", 3}, {"T2", 3}, {"G", 4}, {"H", 5}}

//            E   C2  C3    C5     C5^2
func iTable() [][]float64 {
	return [][]float64{
		{1, 1, 1, 1, 1},
		{3, -1, 0, -c4pi, -c2pi},
		{3, -1, 0, -c2pi, -c4pi},
		{4, 0, 1, -1, -1},
		{5, 1, -1, 0, 0},
	}
}

var ihRepOps = []classRep{
	{Type: pgtypes.Identity, Order: 1, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 2, Power: 1},
	{Type: pgtypes.Reflection, Order: 1, Power: 1},
	{Type: pgtypes.ImproperRotation, Order: 6, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 5, Power: 1},
	{Type: pgtypes.ImproperRotation, Order: 10, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 5, Power: 2},
	{Type: pgtypes.Inversion, Order: 1, Power: 1},
	{Type: pgtypes.ProperRotation, Order: 3, Power: 1},
	{Type: pgtypes.ImproperRotation, Order: 10, Power: 3},
}

var ihIrreps = []predefinedIrrep{
	{"Ag", 1}, {"Au", 1}, {"T1g", 3}, {"T1u", 3}, {"T2g", 3},
	{"T2u", 3}, {"Gg", 4}, {"Gu", 4}, {"Hg", 5}, {"Hu", 5},
}

//             E    C2   R    S6   C5   S10  C52  i    C3   S103
func ihTable() [][]float64 {
	return [][]float64{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, -1, -1, 1, -1, 1, -1, 1, -1},
		{3, -1, -1, 0, -c4pi, -c2pi, -c2pi, 3, 0, -c4pi},
		{3, -1, 1, 0, -c4pi, c2pi, -c2pi, -3, 0, c4pi},
		{3, -1, -1, 0, -c2pi, -c4pi, -c4pi, 3, 0, -c2pi},
		{3, -1, 1, 0, -c2pi, c4pi, -c4pi, -3, 0, c2pi},
		{4, 0, 0, 1, -1, -1, -1, 4, 1, -1},
		{4, 0, 0, -1, -1, 1, -1, -4, 1, 1},
		{5, 1, 1, -1, 0, 0, 0, 5, -1, 0},
		{5, 1, -1, 1, 0, 0, 0, -5, -1, 0},
	}
}

// predefinedTable binds a compile-time (repOps, irreps, table) triple to the
// runtime operation list, matching each predefined column to the class it
// falls in and copying rows into the destination character matrix
// (spec.md §4.4).
func predefinedTable(ops []pgtypes.SymmetryOperation, d int, repOps []classRep, irreps []predefinedIrrep, table [][]float64) ([]string, []int, [][]float64, error) {
	if len(repOps) != d {
		return nil, nil, nil, pgerr.InvalidTablef("predefined table size %d does not match expected class count %d", len(repOps), d)
	}

	names := make([]string, d)
	dims := make([]int, d)
	chars := make([][]float64, d)
	for i := range chars {
		chars[i] = make([]float64, d)
	}

	for i, want := range repOps {
		names[i] = irreps[i].Name
		dims[i] = irreps[i].Dim

		found := false
		for _, op := range ops {
			if op.Type == want.Type && op.Order == want.Order && op.Power == want.Power && op.Orientation == want.Orientation {
				if op.Class >= d {
					return nil, nil, nil, pgerr.InvalidTablef("conjugacy class exceeds character table size %d >= %d", op.Class, d)
				}
				for j := 0; j < d; j++ {
					chars[j][op.Class] = table[j][i]
				}
				found = true
				break
			}
		}
		if !found {
			return nil, nil, nil, pgerr.InvalidTablef("could not find representative symmetry operation %+v when generating character table", want)
		}
	}

	return names, dims, chars, nil
}
