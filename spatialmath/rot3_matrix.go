//go:build !rot3_quaternions

package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Rot3 is a 3D rotation stored as an orthonormal 3x3 matrix. Build with the rot3_quaternions tag
// to store a unit quaternion instead. The zero value is not a rotation, use Identity.
type Rot3 struct {
	rot mgl64.Mat3
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Rot3 {
	return Rot3{mgl64.Ident3()}
}

// NewRot3FromMatrix wraps a rotation matrix. The matrix is not checked, see IsValid.
func NewRot3FromMatrix(m mgl64.Mat3) Rot3 {
	return Rot3{m}
}

// NewRot3FromQuaternion converts a unit quaternion to a rotation.
func NewRot3FromQuaternion(q quat.Number) Rot3 {
	return Rot3{quatToMatrix(q)}
}

// Matrix returns the 3x3 rotation matrix.
func (r Rot3) Matrix() mgl64.Mat3 {
	return r.rot
}

// ToQuaternion returns the unit quaternion of the rotation with a non-negative scalar part.
func (r Rot3) ToQuaternion() quat.Number {
	return canonicalQuat(matrixToQuat(r.rot))
}

// Compose returns the product r*other. No re-orthonormalization is done, see Normalized.
func (r Rot3) Compose(other Rot3) Rot3 {
	return Rot3{r.rot.Mul3(other.rot)}
}

// Inverse returns the transpose of the rotation.
func (r Rot3) Inverse() Rot3 {
	return Rot3{r.rot.Transpose()}
}

func (r Rot3) apply(p r3.Vector) r3.Vector {
	return mulVec(r.rot, p)
}

func (r Rot3) applyInverse(p r3.Vector) r3.Vector {
	return mulVec(r.rot.Transpose(), p)
}

func expmap(omega r3.Vector) Rot3 {
	return Rot3{expmapMatrix(omega)}
}

func (r Rot3) logmap() r3.Vector {
	return logmapQuat(matrixToQuat(r.rot))
}

// Equals compares the matrix entries with an absolute tolerance. NaN entries never compare equal.
func (r Rot3) Equals(other Rot3, tol float64) bool {
	for i := range r.rot {
		if !(math.Abs(r.rot[i]-other.rot[i]) <= tol) {
			return false
		}
	}
	return true
}

// Normalized returns the rotation matrix closest to r in the Frobenius norm, U*V^T from the SVD of r.
// Use it to remove drift after long chains of compositions.
func (r Rot3) Normalized() Rot3 {
	a := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, r.rot.At(i, j))
		}
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return r
	}
	var u, v, p mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	p.Mul(&u, v.T())
	if mat.Det(&p) < 0 {
		// flip the direction of the smallest singular value to land in SO(3) instead of O(3)
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
		p.Mul(&u, v.T())
	}
	var out mgl64.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, p.At(i, j))
		}
	}
	return Rot3{out}
}

// Drift is the largest entry of r^T*r - I, zero for an exact rotation.
func (r Rot3) Drift() float64 {
	return orthonormalityError(r.rot)
}

// IsValid reports whether r^T*r is the identity and det(r) is one, both within tol.
func (r Rot3) IsValid(tol float64) bool {
	return r.validate(tol) == nil
}

func (r Rot3) validate(tol float64) error {
	return validateMatrix(r.rot, tol)
}

// rot3Record is the persisted form of a matrix rotation, row-major.
type rot3Record struct {
	Version int     `json:"version"`
	Rot11   float64 `json:"rot11"`
	Rot12   float64 `json:"rot12"`
	Rot13   float64 `json:"rot13"`
	Rot21   float64 `json:"rot21"`
	Rot22   float64 `json:"rot22"`
	Rot23   float64 `json:"rot23"`
	Rot31   float64 `json:"rot31"`
	Rot32   float64 `json:"rot32"`
	Rot33   float64 `json:"rot33"`
}

func (r Rot3) record() rot3Record {
	m := r.rot
	return rot3Record{
		Version: rot3RecordVersion,
		Rot11:   m.At(0, 0), Rot12: m.At(0, 1), Rot13: m.At(0, 2),
		Rot21: m.At(1, 0), Rot22: m.At(1, 1), Rot23: m.At(1, 2),
		Rot31: m.At(2, 0), Rot32: m.At(2, 1), Rot33: m.At(2, 2),
	}
}

func (rec rot3Record) rot3() Rot3 {
	return NewRot3(
		rec.Rot11, rec.Rot12, rec.Rot13,
		rec.Rot21, rec.Rot22, rec.Rot23,
		rec.Rot31, rec.Rot32, rec.Rot33,
	)
}
