//go:build !rot3_quaternions

package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// CoordinatesCayley is the chart given by the Cayley transform. It is cheaper than the
// exponential map and agrees with it to first order at the identity.
const CoordinatesCayley CoordinatesMode = 1

func init() {
	charts[CoordinatesCayley] = CayleyChart{}
}

// CayleyChart is the Cayley transform chart. It covers every rotation except half turns.
type CayleyChart struct{}

// Retract returns CayleyRetract(v).
func (CayleyChart) Retract(v r3.Vector, H *mgl64.Mat3) Rot3 {
	return CayleyRetract(v, H)
}

// Local returns CayleyLocal(r).
func (CayleyChart) Local(r Rot3, H *mgl64.Mat3) r3.Vector {
	return CayleyLocal(r, H)
}

// CayleyRetract returns (I - W/2)^-1 (I + W/2) for W = Skew(v), which expands to
// I + f*(4W + 2W^2) with f = 1/(4 + |v|^2). H receives f*(4I - 2W).
func CayleyRetract(v r3.Vector, H *mgl64.Mat3) Rot3 {
	f := 1 / (4 + v.Norm2())
	w := Skew(v)
	if H != nil {
		*H = mgl64.Ident3().Mul(4).Sub(w.Mul(2)).Mul(f)
	}
	return Rot3{mgl64.Ident3().Add(w.Mul(4 * f)).Add(w.Mul3(w).Mul(2 * f))}
}

// CayleyLocal inverts CayleyRetract. It diverges for half turns, where 1 + trace(r) is zero.
// H receives the inverse of the CayleyRetract derivative at the result.
func CayleyLocal(r Rot3, H *mgl64.Mat3) r3.Vector {
	m := r.rot
	d := 2 / (1 + m.Trace())
	v := r3.Vector{
		X: d * (m.At(2, 1) - m.At(1, 2)),
		Y: d * (m.At(0, 2) - m.At(2, 0)),
		Z: d * (m.At(1, 0) - m.At(0, 1)),
	}
	if H != nil {
		w := Skew(v)
		*H = mgl64.Ident3().Mul(1 + v.Norm2()/4).Add(w.Mul(0.5)).Add(w.Mul3(w).Mul(0.25))
	}
	return v
}

// RetractCayley is Retract in the Cayley chart, whatever the default.
func (r Rot3) RetractCayley(v r3.Vector) Rot3 {
	return r.Compose(CayleyRetract(v, nil))
}

// LocalCayley is LocalCoordinates in the Cayley chart, whatever the default.
func (r Rot3) LocalCayley(other Rot3) r3.Vector {
	return CayleyLocal(r.Between(other, nil, nil), nil)
}
