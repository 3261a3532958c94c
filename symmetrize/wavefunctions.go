package symmetrize

import (
	"math"

	"github.com/go-msym/pointgroup/chartab"
	"github.com/go-msym/pointgroup/pgerr"
	"github.com/go-msym/pointgroup/pgtypes"
)

// Wavefunctions projects a basis of wave-function coefficient vectors wf
// (one row per wave function, basisl columns) onto the symmetry-adapted
// subspaces named by ct and subspaces, returning a symmetrized matrix of the
// same shape (spec.md §4.8). subspaces[k] holds the SALCs transforming as
// irrep k of ct; span[k] is the expected number of times irrep k occurs.
func Wavefunctions(ct *chartab.CharacterTable, subspaces []pgtypes.IrrepSALCs, span []int, wf [][]float64, opts ...Option) ([][]float64, error) {
	cfg := newConfig(opts)
	basisl := len(wf)
	d := len(ct.Species)

	md := 1
	for _, s := range ct.Species {
		if s.Dim > md {
			md = s.Dim
		}
	}

	// psalcOffset[k] is the running index of subspaces[k]'s first SALC
	// within the flattened, cross-irrep psalc vector.
	psalcOffset := make([]int, d)
	total := 0
	for k, ss := range subspaces {
		psalcOffset[k] = total
		total += len(ss.SALCs)
	}

	icomp := make([]int, basisl)
	ispan := make([]int, d)
	psalc := make([][]float64, basisl)
	bfd := make([][]float64, basisl)
	for o := range wf {
		psalc[o] = make([]float64, total)
		bfd[o] = make([]float64, md)
	}

	// Component analysis (spec.md §4.8 step 1).
	for o, wfo := range wf {
		mcomp := -1.0
		for k, ss := range subspaces {
			mabs := 0.0
			for s, salc := range ss.SALCs {
				psalci := psalcOffset[k] + s
				psalcabs := 0.0
				for dim := 0; dim < salc.Dim; dim++ {
					p := projectedSqrNorm(wfo, salc, dim, basisl)
					mabs += p
					psalcabs += p
					bfd[o][dim] += p
				}
				psalc[o][psalci] = math.Sqrt(psalcabs)
			}
			if mabs > mcomp {
				icomp[o] = k
				mcomp = mabs
			}
		}
		ispan[icomp[o]]++
	}

	// Span check (spec.md §4.8 step 2).
	for k, ss := range ct.Species {
		if ispan[k] != span[k]*ss.Dim {
			return nil, pgerr.Symmetrizationf("projected orbitals do not span the expected irreducible representations: expected %d%s, got %d", span[k], ss.Name, ispan[k])
		}
	}

	// pf[o][0] is a signed ownership counter: positive (the number of
	// partners o has claimed) once o leads a partner group, negative once o
	// has been claimed as another function's partner, zero while neither.
	// pf[o][1:dim]
	// names o's partners once found. pf[basisl] is scratch reused across o.
	pf := make([][]int, basisl+1)
	for i := range pf {
		pf[i] = make([]int, md)
	}

	// Partner pairing (spec.md §4.8 step 3).
	for o := range wf {
		dim := ct.Species[icomp[o]].Dim
		for i := 1; i < md; i++ {
			pf[o][i] = -1
			pf[basisl][i] = -1
		}

		found := false
		for i := 0; i < o && !found; i++ {
			for j := 1; j < md && !found; j++ {
				found = pf[i][j] == o
			}
		}
		if found || dim <= 1 {
			continue
		}

		ko := icomp[o]
		dmpf := make([]float64, md)
		for i := range dmpf {
			dmpf[i] = math.MaxFloat64
		}

		for po := range wf {
			if icomp[po] != ko || o == po {
				continue
			}
			c := psalcDistance(psalc[o], psalc[po])
			mc, mic := 0.0, 0
			for i := 1; i < dim; i++ {
				diff := math.Abs(dmpf[i] - c)
				if c < dmpf[i] && diff > mc {
					mic = i
					mc = diff
				}
			}
			if mic > 0 {
				dmpf[mic] = c
				pf[o][mic] = po
				pf[basisl][mic] = po
			}
		}

		for i := 1; i < dim; i++ {
			index := pf[basisl][i]
			if index > 0 {
				pf[o][0]++
				pf[index][0]--
			}
		}
		cfg.trace("symmetrize: wave function %d (%s) partners assigned", o, ct.Species[icomp[o]].Name)
	}

	// Verify every wave function has its full partner set (spec.md §4.8
	// step 3 failure mode).
	for o := range wf {
		dim := ct.Species[icomp[o]].Dim
		if abs(pf[o][0])+1 != dim {
			return nil, pgerr.Symmetrizationf("unexpected number of partner functions for wave function %d (expected %d got %d)", o, dim, abs(pf[o][0])+1)
		}
		if pf[o][0] >= 0 {
			for i := 0; i < dim; i++ {
				if pf[o][i] == -1 {
					return nil, pgerr.Symmetrizationf("could not determine partner function %d of wave function %d", i, o)
				}
			}
		}
	}

	symwf := make([][]float64, basisl)
	for i := range symwf {
		symwf[i] = make([]float64, basisl)
	}

	// Dimension assignment and averaged reconstruction (spec.md §4.8 steps
	// 4-5), one partner group (led by the wave function that owns it) at a
	// time.
	for o := range wf {
		k := icomp[o]
		dim := ct.Species[k].Dim
		if pf[o][0] < 0 {
			continue
		}

		pf[o][0] = o
		for i := 0; i < dim; i++ {
			pf[basisl][i] = -1
		}

		// Assign each partner its unique dimension of largest component;
		// this is only load-bearing when the symmetry is broken enough
		// that partners disagree on which dimension dominates. The
		// assignment is greedy in partner order: an earlier partner takes
		// its largest dimension first, so the result can depend on which
		// partner comes first.
		for i := 0; i < dim; i++ {
			cmax := 0.0
			for dim2 := 0; dim2 < dim; dim2++ {
				c := bfd[pf[o][i]][dim2]
				if c > cmax {
					already := false
					for j := 0; j < i; j++ {
						if pf[basisl][j] == dim2 {
							already = true
							break
						}
					}
					if !already {
						pf[basisl][i] = dim2
						cmax = c
					}
				}
			}
		}

		for s, salc := range subspaces[k].SALCs {
			psalci := psalcOffset[k] + s
			avg := 0.0
			for dd := 0; dd < dim; dd++ {
				avg += psalc[pf[o][dd]][psalci]
			}
			avg /= float64(dim)

			for dd := 0; dd < dim; dd++ {
				wfi, di := pf[o][dd], pf[basisl][dd]
				for j, basisIdx := range salc.BasisIndex {
					symwf[wfi][basisIdx] += avg * salc.Coeff[di][j]
				}
			}
		}
	}

	return symwf, nil
}

// projectedSqrNorm returns the squared norm of the projection of wf onto
// the dim-th partner function of salc, expanded over basisl basis
// functions.
func projectedSqrNorm(wf []float64, salc pgtypes.SALC, dim, basisl int) float64 {
	dotWV, dotVV := 0.0, 0.0
	for j, basisIdx := range salc.BasisIndex {
		c := salc.Coeff[dim][j]
		dotWV += wf[basisIdx] * c
		dotVV += c * c
	}
	if dotVV == 0 {
		return 0
	}
	return dotWV * dotWV / dotVV
}

// psalcDistance is the L2 distance between two wave functions' per-SALC
// projection-magnitude vectors, the metric partner pairing minimizes.
func psalcDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
