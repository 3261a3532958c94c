package chartab

import "github.com/go-msym/pointgroup/irrep"

// representationsDn emits the A1/A2[/B1/B2]/E_i schedule for D_n. It is
// identical in shape to C_nv's schedule (spec.md §4.2).
func representationsDn(n, rl int) ([]irrep.Descriptor, error) {
	return representationsCnv(n, rl)
}

// representationsDnh emits the four base 1-D irreps, four more B-series
// members for even n, then the E_ig/E_iu series.
func representationsDnh(n, rl int) ([]irrep.Descriptor, error) {
	rep := make([]irrep.Descriptor, 0, rl)
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: 1, I: 1})    // A1g
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: -1, H: 1, I: 1})   // A2g
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: -1, I: -1})  // A1u
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: -1, H: -1, I: -1}) // A2u
	if n%2 == 0 {
		hEven := irrep.Sign(1 - (n & 2))
		hOdd := irrep.Sign(-1 + (n & 2))
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: 1, H: hEven, I: 1})   // B1g
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: 1, H: hOdd, I: -1})   // B1u
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: -1, H: hEven, I: 1})  // B2g
		rep = append(rep, irrep.Descriptor{Dim: 1, P: -1, V: -1, H: hOdd, I: -1})  // B2u
	}
	for i := 1; len(rep) < rl; i++ {
		ig := irrep.Sign(1 - ((i & 1) << 1))
		iu := irrep.Sign(-1 + ((i & 1) << 1))
		rep = append(rep, irrep.Descriptor{Dim: 2, L: i, P: 1, V: 1, H: 1, I: ig})
		rep = append(rep, irrep.Descriptor{Dim: 2, L: i, P: 1, V: 1, H: -1, I: iu})
	}
	return rep, checkSchedule(rep, rl)
}

// representationsDnd emits A1/A2 plus an odd- or even-n-specific tail of
// spec.md §4.2. D_nd has an inversion center iff n is odd, so the two
// families differ in whether the tail carries a genuine g/u split: even n
// gets a plain h=-1 tail and an unsplit E_i series; odd n gets an h=i=-1
// tail and E_i pairs interleaved by the parity of i.
func representationsDnd(n, rl int) ([]irrep.Descriptor, error) {
	rep := make([]irrep.Descriptor, 0, rl)
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: 1, I: 1})
	rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: -1, H: 1, I: 1})
	if n%2 == 0 {
		rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: -1, I: 1})
		rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: -1, H: -1, I: 1})
		for i := 1; len(rep) < rl; i++ {
			rep = append(rep, irrep.Descriptor{Dim: 2, L: i, P: 1, V: 1, H: 1, I: 1})
		}
	} else {
		rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: 1, H: -1, I: -1})
		rep = append(rep, irrep.Descriptor{Dim: 1, P: 1, V: -1, H: -1, I: -1})
		for i := 1; len(rep) < rl; i++ {
			h1 := irrep.Sign(1 - ((i % 2) << 1))
			h2 := irrep.Sign(-1 + ((i % 2) << 1))
			rep = append(rep, irrep.Descriptor{Dim: 2, L: i, P: 1, V: 1, H: h1, I: 1})
			rep = append(rep, irrep.Descriptor{Dim: 2, L: i, P: 0, V: 0, H: h2, I: -1})
		}
	}
	return rep, checkSchedule(rep, rl)
}
