package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// RQ factors a 3x3 matrix A as A = U * Rz(z) * Ry(y) * Rx(x) using three Givens rotations, and
// returns the upper triangular U together with the angles (x, y, z). A need not be a rotation.
// For a rotation U is the identity up to rounding and (x, y, z) are its roll, pitch and yaw.
//
// When A is a rotation with pitch at +-pi/2 (gimbal lock) roll and yaw are not separable. The
// first Givens step then sees a zero column entry and atan2 picks one consistent pair, so the
// reconstruction holds but the individual angles are not unique.
func RQ(a mgl64.Mat3) (mgl64.Mat3, r3.Vector) {
	x := -math.Atan2(-a.At(2, 1), a.At(2, 2))
	b := a.Mul3(rotX(-x))

	y := -math.Atan2(b.At(2, 0), b.At(2, 2))
	c := b.Mul3(rotY(-y))

	z := -math.Atan2(-c.At(1, 0), c.At(1, 1))
	u := c.Mul3(rotZ(-z))

	return u, r3.Vector{X: x, Y: y, Z: z}
}

// XYZ returns the angles (x, y, z) with r = Rz(z) * Ry(y) * Rx(x).
func (r Rot3) XYZ() r3.Vector {
	_, angles := RQ(r.Matrix())
	return angles
}

// YPR returns (yaw, pitch, roll), the XYZ angles in reverse order.
func (r Rot3) YPR() r3.Vector {
	xyz := r.XYZ()
	return r3.Vector{X: xyz.Z, Y: xyz.Y, Z: xyz.X}
}

// RPY returns (roll, pitch, yaw), the same as XYZ.
func (r Rot3) RPY() r3.Vector {
	return r.XYZ()
}

// Roll is the rotation about the x axis, applied first.
func (r Rot3) Roll() float64 {
	return r.XYZ().X
}

// Pitch is the rotation about the y axis.
func (r Rot3) Pitch() float64 {
	return r.XYZ().Y
}

// Yaw is the rotation about the z axis, applied last.
func (r Rot3) Yaw() float64 {
	return r.XYZ().Z
}

// EulerAngles are roll, pitch and yaw in radians, composed as Rz(yaw) * Ry(pitch) * Rx(roll).
type EulerAngles struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewEulerAngles returns zero angles, the identity rotation.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

// Rot3 composes the angles into a rotation.
func (ea *EulerAngles) Rot3() Rot3 {
	return RzRyRx(ea.Roll, ea.Pitch, ea.Yaw)
}

// EulerAngles extracts roll, pitch and yaw from r. See RQ for the behavior at gimbal lock.
func (r Rot3) EulerAngles() *EulerAngles {
	xyz := r.XYZ()
	return &EulerAngles{Roll: xyz.X, Pitch: xyz.Y, Yaw: xyz.Z}
}
