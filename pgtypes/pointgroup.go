package pgtypes

// Type identifies a point-group family. n is the axial order parameter for
// the axial families (Cn, Cnh, Cnv, Dn, Dnh, Dnd, Sn); 0 denotes the
// continuous axis of a linear group. n is ignored by the polyhedral and Ci/Cs
// families.
type Type int

const (
	Ci Type = iota
	Cs
	Cn
	Cnh
	Cnv
	Dn
	Dnh
	Dnd
	Sn
	T
	Td
	Th
	O
	Oh
	I
	Ih
	K
	Kh
)

func (t Type) String() string {
	switch t {
	case Ci:
		return "Ci"
	case Cs:
		return "Cs"
	case Cn:
		return "Cn"
	case Cnh:
		return "Cnh"
	case Cnv:
		return "Cnv"
	case Dn:
		return "Dn"
	case Dnh:
		return "Dnh"
	case Dnd:
		return "Dnd"
	case Sn:
		return "Sn"
	case T:
		return "T"
	case Td:
		return "Td"
	case Th:
		return "Th"
	case O:
		return "O"
	case Oh:
		return "Oh"
	case I:
		return "I"
	case Ih:
		return "Ih"
	case K:
		return "K"
	case Kh:
		return "Kh"
	default:
		return "unknown"
	}
}

// Linear reports whether (t, n) denotes one of the two linear-molecule point
// groups (C∞v, D∞h), recognized as Cnv/Dnh with n == 0.
func Linear(t Type, n int) bool {
	return n == 0 && (t == Cnv || t == Dnh)
}
