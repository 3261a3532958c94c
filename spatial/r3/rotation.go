// Copyright ©2019 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Rotation describes a rotation by a fixed angle about a fixed axis,
// represented internally as a unit quaternion.
type Rotation struct {
	q quat.Number
}

// NewRotation creates a rotation by alpha radians around axis. axis need
// not be normalized.
func NewRotation(alpha float64, axis Vec) Rotation {
	q := raise(axis)
	sin, cos := math.Sincos(0.5 * alpha)
	q = quat.Scale(sin/quat.Abs(q), q)
	q.Real += cos
	if n := quat.Abs(q); n != 1 {
		q = quat.Scale(1/n, q)
	}
	return Rotation{q: q}
}

// Rotate returns p rotated about rot's axis by rot's angle.
func (rot Rotation) Rotate(p Vec) Vec {
	pp := quat.Mul(quat.Mul(rot.q, raise(p)), quat.Conj(rot.q))
	return Vec{pp.Imag, pp.Jmag, pp.Kmag}
}

// Reflect returns p reflected through the plane with unit normal n.
func Reflect(p, n Vec) Vec {
	return p.Sub(n.Scale(2 * p.Dot(n)))
}

// raise lifts p to the pure quaternion with the same imaginary components.
func raise(p Vec) quat.Number {
	return quat.Number{Imag: p[0], Jmag: p[1], Kmag: p[2]}
}
