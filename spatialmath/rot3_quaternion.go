//go:build rot3_quaternions

package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Rot3 is a 3D rotation stored as a unit quaternion (w, x, y, z), with q and -q describing the
// same rotation. Build without the rot3_quaternions tag to store a 3x3 matrix instead.
// The zero value is not a rotation, use Identity.
type Rot3 struct {
	q quat.Number
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rot3 {
	return Rot3{quat.Number{Real: 1}}
}

// NewRot3FromMatrix converts a rotation matrix. The matrix is not checked.
func NewRot3FromMatrix(m mgl64.Mat3) Rot3 {
	return Rot3{matrixToQuat(m)}
}

// NewRot3FromQuaternion wraps a unit quaternion. The norm is not checked, see IsValid.
func NewRot3FromQuaternion(q quat.Number) Rot3 {
	return Rot3{q}
}

// Matrix returns the 3x3 rotation matrix.
func (r Rot3) Matrix() mgl64.Mat3 {
	return quatToMatrix(r.q)
}

// ToQuaternion returns the unit quaternion of the rotation with a non-negative scalar part.
func (r Rot3) ToQuaternion() quat.Number {
	return canonicalQuat(r.q)
}

// Compose returns the Hamilton product r*other. No renormalization is done, see Normalized.
func (r Rot3) Compose(other Rot3) Rot3 {
	return Rot3{quat.Mul(r.q, other.q)}
}

// Inverse returns the conjugate quaternion.
func (r Rot3) Inverse() Rot3 {
	return Rot3{quat.Conj(r.q)}
}

func (r Rot3) apply(p r3.Vector) r3.Vector {
	return rotateByQuat(r.q, p)
}

func (r Rot3) applyInverse(p r3.Vector) r3.Vector {
	return rotateByQuat(quat.Conj(r.q), p)
}

func expmap(omega r3.Vector) Rot3 {
	return Rot3{expmapQuat(omega)}
}

func (r Rot3) logmap() r3.Vector {
	return logmapQuat(r.q)
}

// Equals compares quaternions component-wise with an absolute tolerance, accepting either sign.
// NaN components never compare equal.
func (r Rot3) Equals(other Rot3, tol float64) bool {
	return quatNear(r.q, other.q, tol) || quatNear(r.q, quat.Scale(-1, other.q), tol)
}

func quatNear(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) <= tol &&
		math.Abs(a.Imag-b.Imag) <= tol &&
		math.Abs(a.Jmag-b.Jmag) <= tol &&
		math.Abs(a.Kmag-b.Kmag) <= tol
}

// Normalized rescales the quaternion to unit norm. Use it to remove drift after long chains of
// compositions.
func (r Rot3) Normalized() Rot3 {
	n := quat.Abs(r.q)
	if n == 0 {
		return r
	}
	return Rot3{quat.Scale(1/n, r.q)}
}

// Drift is how far the quaternion norm is from one, zero for an exact rotation.
func (r Rot3) Drift() float64 {
	return math.Abs(quat.Abs(r.q) - 1)
}

// IsValid reports whether the quaternion has unit norm within tol.
func (r Rot3) IsValid(tol float64) bool {
	return r.validate(tol) == nil
}

func (r Rot3) validate(tol float64) error {
	return validateQuaternion(r.q, tol)
}

// rot3Record is the persisted form of a quaternion rotation.
type rot3Record struct {
	Version int     `json:"version"`
	W       float64 `json:"w"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
}

func (r Rot3) record() rot3Record {
	return rot3Record{Version: rot3RecordVersion, W: r.q.Real, X: r.q.Imag, Y: r.q.Jmag, Z: r.q.Kmag}
}

func (rec rot3Record) rot3() Rot3 {
	return Rot3{quat.Number{Real: rec.W, Imag: rec.X, Jmag: rec.Y, Kmag: rec.Z}}
}
