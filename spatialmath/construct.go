package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Squared norm below which a projected direction is treated as vanishing.
const alignmentTolerance = 1e-12

// NewRot3 builds a rotation from its matrix entries in row-major order. The entries are not
// checked, see IsValid.
func NewRot3(r11, r12, r13, r21, r22, r23, r31, r32, r33 float64) Rot3 {
	return NewRot3FromMatrix(mat3(r11, r12, r13, r21, r22, r23, r31, r32, r33))
}

// NewRot3FromColumns builds a rotation whose columns are the images of the x, y and z axes.
func NewRot3FromColumns(c1, c2, c3 r3.Vector) Rot3 {
	return NewRot3(
		c1.X, c2.X, c3.X,
		c1.Y, c2.Y, c3.Y,
		c1.Z, c2.Z, c3.Z,
	)
}

// QuaternionRot3 builds a rotation from the components of a unit quaternion.
func QuaternionRot3(w, x, y, z float64) Rot3 {
	return NewRot3FromQuaternion(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z})
}

// Rx is a rotation by t radians about the x axis.
func Rx(t float64) Rot3 {
	return NewRot3FromMatrix(rotX(t))
}

// Ry is a rotation by t radians about the y axis.
func Ry(t float64) Rot3 {
	return NewRot3FromMatrix(rotY(t))
}

// Rz is a rotation by t radians about the z axis.
func Rz(t float64) Rot3 {
	return NewRot3FromMatrix(rotZ(t))
}

// RzRyRx returns Rz(z) * Ry(y) * Rx(x): x is applied first, in the fixed frame.
func RzRyRx(x, y, z float64) Rot3 {
	return NewRot3FromMatrix(rotZ(z).Mul3(rotY(y)).Mul3(rotX(x)))
}

// RzRyRxVec is RzRyRx with the angles packed as (x, y, z).
func RzRyRxVec(xyz r3.Vector) Rot3 {
	return RzRyRx(xyz.X, xyz.Y, xyz.Z)
}

// Ypr builds a rotation from yaw, pitch and roll, the aerospace convention. It equals
// RzRyRx(roll, pitch, yaw).
func Ypr(yaw, pitch, roll float64) Rot3 {
	return RzRyRx(roll, pitch, yaw)
}

// Yaw is a rotation about the z axis, the same as Rz.
func Yaw(t float64) Rot3 { return Rz(t) }

// Pitch is a rotation about the y axis, the same as Ry.
func Pitch(t float64) Rot3 { return Ry(t) }

// Roll is a rotation about the x axis, the same as Rx.
func Roll(t float64) Rot3 { return Rx(t) }

// AxisAngle is a rotation by angle radians about axis. The axis must have unit length; a
// non-unit axis scales the angle.
func AxisAngle(axis r3.Vector, angle float64) Rot3 {
	return expmap(axis.Mul(angle))
}

// AxisAngleUnit3 is AxisAngle with the axis given as a direction.
func AxisAngleUnit3(axis Unit3, angle float64) Rot3 {
	return expmap(axis.p.Mul(angle))
}

// AlignPair returns the rotation about axis that brings the projection of bP onto the plane
// orthogonal to axis into line with the projection of aP, so that R*bP and aP share a direction
// when both are orthogonal to axis. The identity is returned when either projection vanishes.
func AlignPair(axis Unit3, aP, bP Unit3) Rot3 {
	z := axis.p
	aPerp := aP.p.Sub(z.Mul(z.Dot(aP.p)))
	bPerp := bP.p.Sub(z.Mul(z.Dot(bP.p)))
	if aPerp.Norm2() < alignmentTolerance || bPerp.Norm2() < alignmentTolerance {
		return Identity()
	}
	x := aPerp.Normalize()
	y := z.Cross(x)
	angle := math.Atan2(y.Dot(bPerp), x.Dot(bPerp))
	return AxisAngle(z, -angle)
}

// AlignTwoPairs returns the rotation R that maps the b frame onto the a frame, given two
// directions P and Q observed in both. P is matched exactly, R*bP == aP, and Q is matched as
// well as the rotation about P allows. The result is undefined for parallel P and Q.
func AlignTwoPairs(aP, bP, aQ, bQ Unit3) Rot3 {
	// rotate bP onto aP about their common normal
	n := bP.p.Cross(aP.p)
	var axis Unit3
	if n.Norm2() < alignmentTolerance {
		axis = unit3(aP.p.Ortho())
	} else {
		axis = unit3(n)
	}
	i1Rb := AlignPair(axis, aP, bP)

	// then rotate about aP to bring Q into line
	i1Q := i1Rb.RotateUnit3(bQ, nil, nil)
	aRi1 := AlignPair(aP, aQ, i1Q)
	return aRi1.Compose(i1Rb)
}
