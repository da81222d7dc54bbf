package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// An orientation can be expressed by an axis, a line from the origin to a point (rx, ry, rz) on the unit
// sphere, and a rotation theta about that axis. These four numbers can be used as-is (R4), or converted to
// R3, where theta multiplies each of the axis components to give a vector whose length is theta and whose
// direction is the axis. The R3 form is the tangent vector used by Expmap and Logmap.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates a zero rotation about the z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// Rot3 returns the rotation described by the axis angle. The axis is normalized first.
func (r4 *R4AA) Rot3() Rot3 {
	r4.Normalize()
	return AxisAngle(r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}, r4.Theta)
}

// ToR3 converts an R4 angle axis to R3.
func (r4 *R4AA) ToR3() r3.Vector {
	return r3.Vector{X: r4.RX * r4.Theta, Y: r4.RY * r4.Theta, Z: r4.RZ * r4.Theta}
}

// Normalize scales the x, y, and z components of a R4 axis angle to be on the unit sphere.
func (r4 *R4AA) Normalize() {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm == 0.0 { // prevent division by 0
		panic("cannot normalize R4AA, divide by zero")
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
}

// R3ToR4 converts an R3 angle axis to R4. The zero vector maps to NewR4AA.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta == 0 {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}

// AxisAngles returns the rotation as an axis and an angle in [0, pi].
func (r Rot3) AxisAngles() *R4AA {
	return R3ToR4(Logmap(r, nil))
}
