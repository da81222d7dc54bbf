package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/num/quat"
)

// Below this squared angle the trigonometric coefficients of the exponential map and its
// derivatives are replaced by their Taylor series. The first dropped term is O(theta^4).
const nearZeroThetaSq = 1e-8

// mat3 builds an mgl64.Mat3 from entries given in row-major order. mgl64 stores columns first.
func mat3(r11, r12, r13, r21, r22, r23, r31, r32, r33 float64) mgl64.Mat3 {
	return mgl64.Mat3{r11, r21, r31, r12, r22, r32, r13, r23, r33}
}

// Skew returns the skew-symmetric matrix of v, i.e. the matrix W with W*p = v x p.
func Skew(v r3.Vector) mgl64.Mat3 {
	return mat3(
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	)
}

func toVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec3(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

func mulVec(m mgl64.Mat3, v r3.Vector) r3.Vector {
	return fromVec3(m.Mul3x1(toVec3(v)))
}

func rotX(t float64) mgl64.Mat3 {
	s, c := math.Sincos(t)
	return mat3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

func rotY(t float64) mgl64.Mat3 {
	s, c := math.Sincos(t)
	return mat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

func rotZ(t float64) mgl64.Mat3 {
	s, c := math.Sincos(t)
	return mat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// expmapMatrix is Rodrigues' formula R = I + a*W + b*W^2 with a = sin(t)/t and b = (1-cos(t))/t^2.
func expmapMatrix(omega r3.Vector) mgl64.Mat3 {
	theta2 := omega.Norm2()
	var a, b float64
	if theta2 < nearZeroThetaSq {
		a = 1 - theta2/6
		b = 0.5 - theta2/24
	} else {
		theta := math.Sqrt(theta2)
		a = math.Sin(theta) / theta
		b = (1 - math.Cos(theta)) / theta2
	}
	w := Skew(omega)
	return mgl64.Ident3().Add(w.Mul(a)).Add(w.Mul3(w).Mul(b))
}

// expmapQuat is the quaternion exponential (cos(t/2), sin(t/2)/t * omega).
func expmapQuat(omega r3.Vector) quat.Number {
	theta2 := omega.Norm2()
	var c, s float64
	if theta2 < nearZeroThetaSq {
		c = 1 - theta2/8
		s = 0.5 - theta2/48
	} else {
		theta := math.Sqrt(theta2)
		c = math.Cos(theta / 2)
		s = math.Sin(theta/2) / theta
	}
	return quat.Number{Real: c, Imag: s * omega.X, Jmag: s * omega.Y, Kmag: s * omega.Z}
}

// logmapQuat returns the tangent vector of a unit quaternion. The angle comes from
// atan2(|v|, w) rather than acos or a division by sin(theta), so the result stays well
// conditioned both near the identity and near a half turn. The returned norm is in [0, pi].
// At exactly pi the sign of the axis is arbitrary, since both signs describe the same rotation.
func logmapQuat(q quat.Number) r3.Vector {
	q = canonicalQuat(q)
	v := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	s2 := v.Norm2()
	var scale float64
	if s2 < nearZeroThetaSq {
		// theta/s = 2*atan(s/w)/s = (2/w) * (1 - s^2/(3w^2) + ...)
		scale = 2 / q.Real * (1 - s2/(3*q.Real*q.Real))
	} else {
		s := math.Sqrt(s2)
		scale = 2 * math.Atan2(s, q.Real) / s
	}
	return v.Mul(scale)
}

// canonicalQuat picks the representative of the double cover with a non-negative scalar part.
func canonicalQuat(q quat.Number) quat.Number {
	if q.Real < 0 {
		return quat.Scale(-1, q)
	}
	return q
}

func quatToMatrix(q quat.Number) mgl64.Mat3 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return mat3(
		1-2*(y*y+z*z), 2*(x*y-w*z), 2*(x*z+w*y),
		2*(x*y+w*z), 1-2*(x*x+z*z), 2*(y*z-w*x),
		2*(x*z-w*y), 2*(y*z+w*x), 1-2*(x*x+y*y),
	)
}

// matrixToQuat uses Shepperd's method: it divides by the largest of the four candidate
// quaternion components, so it is accurate for every rotation angle.
func matrixToQuat(m mgl64.Mat3) quat.Number {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m20, m21, m22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return quat.Number{Real: s / 4, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		return quat.Number{Real: (m21 - m12) / s, Imag: s / 4, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		return quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: s / 4, Kmag: (m12 + m21) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		return quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: s / 4}
	}
}

// validateMatrix checks that m^T*m is the identity and det(m) is one, both within tol. Every failed
// check is reported.
func validateMatrix(m mgl64.Mat3, tol float64) error {
	var err error
	if d := orthonormalityError(m); !(d <= tol) {
		err = multierr.Append(err, errors.Errorf("rotation matrix is not orthonormal, m^T*m is off the identity by %v", d))
	}
	if det := m.Det(); !(math.Abs(det-1) <= tol) {
		err = multierr.Append(err, errors.Errorf("rotation matrix determinant is %v, not 1", det))
	}
	return err
}

// orthonormalityError is the largest absolute entry of m^T*m - I.
func orthonormalityError(m mgl64.Mat3) float64 {
	d := m.Transpose().Mul3(m).Sub(mgl64.Ident3())
	var worst float64
	for _, v := range d {
		worst = math.Max(worst, math.Abs(v))
	}
	return worst
}

// validateQuaternion checks that q has unit norm within tol.
func validateQuaternion(q quat.Number, tol float64) error {
	if n := quat.Abs(q); !(math.Abs(n-1) <= tol) {
		return errors.Errorf("quaternion norm is %v, not 1", n)
	}
	return nil
}

// rotateByQuat computes q * (0, p) * q^-1 for a unit quaternion without building the matrix.
func rotateByQuat(q quat.Number, p r3.Vector) r3.Vector {
	u := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	t := u.Cross(p).Mul(2)
	return p.Add(t.Mul(q.Real)).Add(u.Cross(t))
}

// ExpmapDerivative returns the right Jacobian of SO(3) at omega:
// Expmap(omega + d) ~= Expmap(omega) * Expmap(ExpmapDerivative(omega) * d).
func ExpmapDerivative(omega r3.Vector) mgl64.Mat3 {
	theta2 := omega.Norm2()
	var b, c float64
	if theta2 < nearZeroThetaSq {
		b = 0.5 - theta2/24
		c = 1.0/6 - theta2/120
	} else {
		theta := math.Sqrt(theta2)
		b = (1 - math.Cos(theta)) / theta2
		c = (theta - math.Sin(theta)) / (theta2 * theta)
	}
	w := Skew(omega)
	return mgl64.Ident3().Sub(w.Mul(b)).Add(w.Mul3(w).Mul(c))
}

// LogmapDerivative returns the inverse of ExpmapDerivative(omega). The W^2 coefficient is
// written with cot(theta/2) so that it stays finite all the way to theta = pi.
func LogmapDerivative(omega r3.Vector) mgl64.Mat3 {
	theta2 := omega.Norm2()
	var c float64
	if theta2 < nearZeroThetaSq {
		c = 1.0/12 + theta2/720
	} else {
		half := math.Sqrt(theta2) / 2
		c = (1 - half*math.Cos(half)/math.Sin(half)) / theta2
	}
	w := Skew(omega)
	return mgl64.Ident3().Add(w.Mul(0.5)).Add(w.Mul3(w).Mul(c))
}
