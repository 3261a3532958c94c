package irrep

import (
	"fmt"

	"github.com/go-msym/pointgroup/pgerr"
	"github.com/go-msym/pointgroup/pgtypes"
)

var baseLetter = [6]byte{'A', 'B', 'E', 'T', 'G', 'H'}

// iSuffix, vSuffix and hSuffix are indexed by sign+1 (Minus, Zero, Plus).
var iSuffix = [3]string{"u", "", "g"}
var vSuffix = [3]string{"2", "", "1"}
var hSuffix = [3]string{"''", "", "'"}

// Label builds the Mulliken-style label for d, a representation of the
// point group (t, n), following spec.md §4.1. The parent group type masks
// out the sign slots that do not apply to it before the label is assembled.
func Label(t pgtypes.Type, n int, d Descriptor) (string, error) {
	if !d.Valid() {
		return "", pgerr.InvalidTablef("invalid irrep descriptor dim=%d p=%d v=%d h=%d i=%d", d.Dim, d.P, d.V, d.H, d.I)
	}

	p, v, h, i := d.P, d.V, d.H, d.I

	switch t {
	case pgtypes.Cn:
		v, h, i = Zero, Zero, Zero
	case pgtypes.Cnv:
		h, i = Zero, Zero
	case pgtypes.Cnh:
		if n&1 != 0 {
			i = Zero
		} else {
			h = Zero
		}
		v = Zero
	case pgtypes.Dn:
		h, i = Zero, Zero
	case pgtypes.Dnd:
		if n&1 == 0 {
			i = Zero
			p = h // the base letter (A/B) is selected by the h sign for even n
		}
		h = Zero
	case pgtypes.Dnh:
		if n&1 != 0 {
			i = Zero
		} else {
			h = Zero
		}
	}

	var rtype byte
	if d.Dim == 1 {
		if p == Plus {
			rtype = baseLetter[0]
		} else {
			rtype = baseLetter[1]
		}
	} else {
		if d.Dim < 2 || d.Dim > 5 {
			return "", pgerr.InvalidTablef("invalid irrep dimension %d for labeling", d.Dim)
		}
		rtype = baseLetter[d.Dim]
	}

	prefix := ""
	if d.Kind == ReduciblePair {
		prefix = "*"
	}

	if d.Dim == 1 {
		return fmt.Sprintf("%c%s%s%s", rtype, vSuffix[v+1], iSuffix[i+1], hSuffix[h+1]), nil
	}
	if d.L > 0 {
		return fmt.Sprintf("%s%c%d%s%s", prefix, rtype, d.L, iSuffix[i+1], hSuffix[h+1]), nil
	}
	return fmt.Sprintf("%s%c%s%s", prefix, rtype, iSuffix[i+1], hSuffix[h+1]), nil
}
