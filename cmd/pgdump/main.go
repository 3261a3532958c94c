// Command pgdump builds the character table of a named point group and
// prints it, optionally rendering a heatmap and a dimension bar chart.
package main // import "github.com/go-msym/pointgroup/cmd/pgdump"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/go-msym/pointgroup/chartab"
	"github.com/go-msym/pointgroup/pgplot"
	"github.com/go-msym/pointgroup/pgtypes"
)

func main() {
	log.SetPrefix("pgdump: ")
	log.SetFlags(0)

	group := flag.String("group", "Td", "point group type (Cn, Cnv, Dn, T, Td, I, Ih)")
	n := flag.Int("n", 3, "axial order parameter, ignored for polyhedral groups")
	heatmap := flag.String("heatmap", "", "path to write a character-matrix heatmap PNG, if set")
	bars := flag.String("bars", "", "path to write an irrep-dimension bar chart PNG, if set")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pgdump [options]

ex:
 $> pgdump -group Td
 $> pgdump -group Cnv -n 3 -heatmap c3v.png

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	t, ops, err := demoGroup(*group, *n)
	if err != nil {
		flag.Usage()
		log.Fatalf("unknown group %q: %v", *group, err)
	}

	ct, err := chartab.Generate(t, *n, ops)
	if err != nil {
		log.Fatalf("could not generate character table for %s(%d): %v", *group, *n, err)
	}

	printTable(ct)

	if *heatmap != "" {
		p, err := pgplot.Heatmap(ct)
		if err != nil {
			log.Fatalf("could not build heatmap: %v", err)
		}
		if err := pgplot.Save(p, 6*vg.Inch, 4*vg.Inch, *heatmap); err != nil {
			log.Fatalf("could not save heatmap: %v", err)
		}
	}

	if *bars != "" {
		p, err := pgplot.DimensionBars(ct)
		if err != nil {
			log.Fatalf("could not build bar chart: %v", err)
		}
		if err := pgplot.Save(p, 6*vg.Inch, 4*vg.Inch, *bars); err != nil {
			log.Fatalf("could not save bar chart: %v", err)
		}
	}
}

func printTable(ct *chartab.CharacterTable) {
	fmt.Printf("%s\t", ct.Type)
	for k, size := range ct.ClassSize {
		fmt.Printf("%dx[class %d]\t", size, k)
	}
	fmt.Println()
	for i, s := range ct.Species {
		fmt.Printf("%s\t", s.Name)
		for _, x := range ct.Table[i] {
			fmt.Printf("% .3f\t", x)
		}
		fmt.Println()
	}
}

// demoGroup builds a small, hardcoded symmetry-operation list for the named
// group/order so this command is runnable without a geometry classifier.
// Real callers supply ops from a point-group classifier instead.
func demoGroup(group string, n int) (pgtypes.Type, []pgtypes.SymmetryOperation, error) {
	switch group {
	case "Cn":
		return pgtypes.Cn, cyclicOps(n), nil
	case "Cnv":
		return pgtypes.Cnv, cnvOps(n), nil
	case "Dn":
		return pgtypes.Dn, cnvOps(n), nil
	case "T":
		return pgtypes.T, tOps(), nil
	case "Td":
		return pgtypes.Td, tdOps(), nil
	case "I":
		return pgtypes.I, iOps(), nil
	case "Ih":
		return pgtypes.Ih, ihOps(), nil
	default:
		return 0, nil, fmt.Errorf("no demo operation list available for %q", group)
	}
}

func cyclicOps(n int) []pgtypes.SymmetryOperation {
	ops := []pgtypes.SymmetryOperation{{Type: pgtypes.Identity, Order: 1, Power: 1, Class: 0}}
	for p := 1; p < n; p++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: n, Power: p, Orientation: pgtypes.Horizontal, Class: p})
	}
	return ops
}

// cnvOps builds a C_nv-shaped operation list: the identity, one class per
// pair of conjugate rotation powers {p, n-p} (merged, unlike pure C_n), and
// a single class of n vertical mirrors.
func cnvOps(n int) []pgtypes.SymmetryOperation {
	ops := []pgtypes.SymmetryOperation{{Type: pgtypes.Identity, Order: 1, Power: 1, Class: 0}}
	class := 1
	seen := make(map[int]bool)
	for p := 1; p < n; p++ {
		if seen[p] {
			continue
		}
		seen[p], seen[n-p] = true, true
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: n, Power: p, Orientation: pgtypes.Horizontal, Class: class})
		if n-p != p {
			ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: n, Power: n - p, Orientation: pgtypes.Horizontal, Class: class})
		}
		class++
	}
	for i := 0; i < n; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.Reflection, Order: 1, Power: 1, Orientation: pgtypes.Vertical, Class: class})
	}
	return ops
}

func tOps() []pgtypes.SymmetryOperation {
	ops := []pgtypes.SymmetryOperation{{Type: pgtypes.Identity, Order: 1, Power: 1, Class: 0}}
	for i := 0; i < 8; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Class: 1})
	}
	for i := 0; i < 3; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Class: 2})
	}
	return ops
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

func iOps() []pgtypes.SymmetryOperation {
	ops := []pgtypes.SymmetryOperation{{Type: pgtypes.Identity, Order: 1, Power: 1, Class: 0}}
	for i := 0; i < 15; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 2, Power: 1, Class: 1})
	}
	for i := 0; i < 20; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 3, Power: 1, Class: 2})
	}
	for i := 0; i < 12; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 5, Power: 1, Class: 3})
	}
	for i := 0; i < 12; i++ {
		ops = append(ops, pgtypes.SymmetryOperation{Type: pgtypes.ProperRotation, Order: 5, Power: 2, Class: 4})
	}
	return ops
}

// ihOps builds the 120-operation class structure of Ih, with class indices
// matching ihRepOps's column order in chartab/polyhedral.go: E, C2, sigma,
// S6, C5, S10, C5^2, i, C3, S10^3.
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
