package chartab

import (
	"math"

	"github.com/go-msym/pointgroup/irrep"
	"github.com/go-msym/pointgroup/pgerr"
	"github.com/go-msym/pointgroup/pgtypes"
)

// character evaluates the character of rep under sop, the parent group's
// principal-axis order being n (spec.md §4.3). The formula branches first on
// whether sop is horizontal (lies in, or is, the principal axis/plane) and
// then on rep's dimension; within each branch it further branches on the
// operation's type.
func character(n int, sop pgtypes.SymmetryOperation, rep irrep.Descriptor) (float64, error) {
	if sop.Orientation == pgtypes.Horizontal {
		return characterHorizontal(n, sop, rep)
	}
	return characterOffAxis(sop, rep)
}

func characterHorizontal(n int, sop pgtypes.SymmetryOperation, rep irrep.Descriptor) (float64, error) {
	switch rep.Dim {
	case 1:
		switch sop.Type {
		case pgtypes.Identity:
			return 1, nil
		case pgtypes.Reflection:
			return float64(rep.H), nil
		case pgtypes.Inversion:
			return float64(rep.I), nil
		case pgtypes.ProperRotation:
			return properAxisSign(n, sop, rep), nil
		case pgtypes.ImproperRotation:
			return float64(rep.H) * properAxisSign(n, sop, rep), nil
		default:
			return 0, pgerr.InvalidTablef("invalid symmetry operation type %v when building character table", sop.Type)
		}
	case 2:
		switch sop.Type {
		case pgtypes.Identity:
			return 2, nil
		case pgtypes.Reflection:
			return 2 * float64(rep.H), nil
		case pgtypes.Inversion:
			return 2 * float64(rep.I), nil
		case pgtypes.ProperRotation:
			return 2 * math.Cos(2*float64(rep.L)*float64(sop.Power)*(math.Pi/float64(sop.Order))), nil
		case pgtypes.ImproperRotation:
			return float64(rep.H) * 2 * math.Cos(2*float64(rep.L)*float64(sop.Power)*(math.Pi/float64(sop.Order))), nil
		default:
			return 0, pgerr.InvalidTablef("invalid symmetry operation type %v when building character table", sop.Type)
		}
	default:
		return 0, pgerr.InvalidTablef("invalid dimension (%d) of irreducible representation for point group", rep.Dim)
	}
}

// properAxisSign is the shared (n/order)&1 ? p : 1 branch used by the
// horizontal-branch PROPER_ROTATION and IMPROPER_ROTATION cases for
// 1-D representations. TODO: does not consider S_2n.
func properAxisSign(n int, sop pgtypes.SymmetryOperation, rep irrep.Descriptor) float64 {
	if (n/sop.Order)&1 != 0 {
		return float64(rep.P)
	}
	return 1
}

func characterOffAxis(sop pgtypes.SymmetryOperation, rep irrep.Descriptor) (float64, error) {
	switch rep.Dim {
	case 1:
		switch sop.Type {
		case pgtypes.Identity:
			return 1, nil
		case pgtypes.Inversion:
			return float64(rep.I), nil
		case pgtypes.Reflection:
			if sop.Orientation == pgtypes.Vertical {
				return float64(rep.V) * float64(rep.H), nil
			}
			return float64(rep.P) * float64(rep.V) * float64(rep.H), nil
		case pgtypes.ProperRotation:
			if sop.Orientation == pgtypes.Vertical {
				return float64(rep.V), nil
			}
			return float64(rep.P) * float64(rep.V), nil
		default:
			return 0, pgerr.InvalidTablef("invalid symmetry operation type %v when building character table", sop.Type)
		}
	case 2:
		switch sop.Type {
		case pgtypes.Identity:
			return 2, nil
		case pgtypes.Reflection:
			return 0, nil
		case pgtypes.Inversion:
			return 2 * float64(rep.I), nil
		case pgtypes.ProperRotation:
			return 0, nil
		default:
			return 0, pgerr.InvalidTablef("invalid symmetry operation type %v when building character table", sop.Type)
		}
	default:
		return 0, pgerr.InvalidTablef("invalid dimension (%d) of irreducible representation for point group", rep.Dim)
	}
}
