package chartab

import (
	"github.com/go-msym/pointgroup/irrep"
	"github.com/go-msym/pointgroup/pgerr"
)

// checkSchedule reports an error unless rep holds exactly rl descriptors. It
// is the shared final check of every parametric family: once the fixed 1-D
// members of the schedule are emitted, the remainder is always a run of 2-D
// E_i blocks, which can overshoot rl when they are appended in pairs.
func checkSchedule(rep []irrep.Descriptor, rl int) error {
	if len(rep) != rl {
		return pgerr.InvalidTablef("parametric irrep schedule produced %d representations, expected %d", len(rep), rl)
	}
	return nil
}

// representationsCn emits the A/B/E_i schedule of spec.md §4.2 for C_n.
func representationsCn(n, rl int) ([]irrep.Descriptor, error) {
	rep := make([]irrep.Descriptor, 0, rl)
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: 1, I: 1})
	if n%2 == 0 {
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: 1, H: 1, I: 1})
	}
	for i := 1; len(rep) < rl; i++ {
		rep = append(rep, irrep.Descriptor{Kind: irrep.ReduciblePair, Dim: 2, L: i, P: 1, V: 1, H: 1, I: 1})
	}
	return rep, checkSchedule(rep, rl)
}

// representationsCnh emits the Ag/Au[/Bg/Bu]/E_ig/E_iu schedule for C_nh.
func representationsCnh(n, rl int) ([]irrep.Descriptor, error) {
	rep := make([]irrep.Descriptor, 0, rl)
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: 1, I: 1})                  // Ag
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: -1, I: -1})                // Au
	if n%2 == 0 {
		hEven := irrep.Sign(1 - (n & 2))
		hOdd := irrep.Sign(-1 + (n & 2))
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: 1, H: hEven, I: 1})  // Bg
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: 1, H: hOdd, I: -1}) // Bu
	}
	for i := 1; len(rep) < rl; i++ {
		ig := irrep.Sign(1 - ((i & 1) << 1))
		iu := irrep.Sign(-1 + ((i & 1) << 1))
		rep = append(rep, irrep.Descriptor{Kind: irrep.ReduciblePair, Dim: 2, L: i, P: 1, V: 1, H: 1, I: ig})
		rep = append(rep, irrep.Descriptor{Kind: irrep.ReduciblePair, Dim: 2, L: i, P: 1, V: 1, H: -1, I: iu})
	}
	return rep, checkSchedule(rep, rl)
}

// representationsCnv emits the A1/A2[/B1/B2]/E_i schedule for C_nv (and,
// identically in shape, D_n).
func representationsCnv(n, rl int) ([]irrep.Descriptor, error) {
	rep := make([]irrep.Descriptor, 0, rl)
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: 1, I: 1})
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: -1, H: 1, I: 1})
	if n%2 == 0 {
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: 1, H: 1, I: 1})
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: -1, H: 1, I: 1})
	}
	for i := 1; len(rep) < rl; i++ {
		rep = append(rep, irrep.Descriptor{Dim: 2, L: i, P: 1, V: 1, H: 1, I: 1})
	}
	return rep, checkSchedule(rep, rl)
}
