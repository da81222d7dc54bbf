// Package spatialmath implements the rotation group SO(3) as used by nonlinear least-squares
// solvers: composition, the exponential and logarithm maps with their Jacobians, retraction
// charts, the action of rotations on points and directions, and Euler angle extraction.
//
// Rot3 is a plain value. Its storage is chosen when the package is built: a 3x3 matrix by
// default, or a unit quaternion with the rot3_quaternions build tag. Every operation returns a
// new value and none of them share state, so rotations may be used freely across goroutines.
//
// Jacobian outputs are optional pointer arguments. A nil pointer means the derivative is not
// wanted and it is not computed. Derivatives are taken with respect to right-multiplied
// perturbations, R*Expmap(d), for rotation arguments and results.
package spatialmath

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Between returns r^-1 * other, the rotation taking the r frame to the other frame.
// H1 and H2 receive the derivatives with respect to r and other.
func (r Rot3) Between(other Rot3, H1, H2 *mgl64.Mat3) Rot3 {
	result := r.Inverse().Compose(other)
	if H1 != nil {
		*H1 = result.Transpose().Mul(-1)
	}
	if H2 != nil {
		*H2 = mgl64.Ident3()
	}
	return result
}

// Conjugate re-expresses r, a rotation acting in frame B, as the equivalent rotation acting in
// frame C, given cRb the rotation from B to C: cRb * r * cRb^-1.
func (r Rot3) Conjugate(cRb Rot3) Rot3 {
	return cRb.Compose(r).Compose(cRb.Inverse())
}

// Transpose returns the transpose of the rotation matrix, which is also its inverse.
func (r Rot3) Transpose() mgl64.Mat3 {
	return r.Matrix().Transpose()
}

// AdjointMap is the adjoint representation of r acting on tangent vectors. For SO(3) it is the
// rotation matrix itself.
func (r Rot3) AdjointMap() mgl64.Mat3 {
	return r.Matrix()
}

// Column returns column i of the rotation matrix, counting from zero.
func (r Rot3) Column(i int) r3.Vector {
	return fromVec3(r.Matrix().Col(i))
}

// R1 is the first column, the x axis of the rotated frame.
func (r Rot3) R1() r3.Vector { return r.Column(0) }

// R2 is the second column, the y axis of the rotated frame.
func (r Rot3) R2() r3.Vector { return r.Column(1) }

// R3 is the third column, the z axis of the rotated frame.
func (r Rot3) R3() r3.Vector { return r.Column(2) }

// QuaternionVector returns the quaternion as (w, x, y, z) with w >= 0.
func (r Rot3) QuaternionVector() [4]float64 {
	q := r.ToQuaternion()
	return [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag}
}

// Slerp interpolates along the geodesic from r (t = 0) to other (t = 1).
func (r Rot3) Slerp(t float64, other Rot3) Rot3 {
	return r.Compose(Expmap(Logmap(r.Between(other, nil, nil), nil).Mul(t), nil))
}

// String formats the rotation matrix row by row.
func (r Rot3) String() string {
	m := r.Matrix()
	return fmt.Sprintf("[%.9g, %.9g, %.9g;\n %.9g, %.9g, %.9g;\n %.9g, %.9g, %.9g]",
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2))
}

// Print writes the rotation to w, prefixed by s. Write errors are ignored.
func (r Rot3) Print(w io.Writer, s string) {
	//nolint:errcheck
	fmt.Fprintf(w, "%s:\n%s\n", s, r)
}

// Random returns a rotation about a uniformly random axis by an angle uniform in [-pi, pi].
// rng is owned by the caller, who must serialize access to it.
func Random(rng *rand.Rand) Rot3 {
	axis := RandomUnit3(rng)
	angle := rng.Float64()*2*math.Pi - math.Pi
	return AxisAngleUnit3(axis, angle)
}
