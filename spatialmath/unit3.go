package spatialmath

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Unit3 is a direction in 3D space, a point on the unit sphere S^2. Its tangent space is two
// dimensional and is spanned by the columns of Basis.
type Unit3 struct {
	p r3.Vector
}

// NewUnit3 normalizes v into a direction. v must not be the zero vector.
func NewUnit3(v r3.Vector) (Unit3, error) {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Unit3{}, errors.Errorf("cannot make a direction from %v", v)
	}
	return Unit3{v.Mul(1 / n)}, nil
}

// unit3 normalizes v without checking it. Callers guarantee v is a finite non-zero vector.
func unit3(v r3.Vector) Unit3 {
	return Unit3{v.Normalize()}
}

// RandomUnit3 returns a direction drawn uniformly from the sphere.
func RandomUnit3(rng *rand.Rand) Unit3 {
	for {
		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		if v.Norm2() > 1e-12 {
			return unit3(v)
		}
	}
}

// Point3 returns the direction as a unit vector.
func (u Unit3) Point3() r3.Vector {
	return u.p
}

// Basis returns two unit vectors orthogonal to u and to each other, as the columns of a 3x2
// matrix. The first is u crossed with the coordinate axis u is least aligned with, which keeps
// it well conditioned for every direction.
func (u Unit3) Basis() mgl64.Mat3x2 {
	axis := r3.Vector{Z: 1}
	ax, ay, az := math.Abs(u.p.X), math.Abs(u.p.Y), math.Abs(u.p.Z)
	switch {
	case ax <= ay && ax <= az:
		axis = r3.Vector{X: 1}
	case ay <= ax && ay <= az:
		axis = r3.Vector{Y: 1}
	}
	b1 := u.p.Cross(axis).Normalize()
	b2 := u.p.Cross(b1)
	return mgl64.Mat3x2{b1.X, b1.Y, b1.Z, b2.X, b2.Y, b2.Z}
}

// Skew returns the skew-symmetric matrix of the unit vector.
func (u Unit3) Skew() mgl64.Mat3 {
	return Skew(u.p)
}

// Dot returns the cosine of the angle between u and other.
func (u Unit3) Dot(other Unit3) float64 {
	return u.p.Dot(other.p)
}

// Cross returns u x other. The result is not normalized.
func (u Unit3) Cross(other Unit3) r3.Vector {
	return u.p.Cross(other.p)
}

// Retract moves along the great circle leaving u in the tangent direction Basis()*v, by an angle
// of |v|.
func (u Unit3) Retract(v r2.Point) Unit3 {
	xi := fromVec3(u.Basis().Mul2x1(mgl64.Vec2{v.X, v.Y}))
	theta := xi.Norm()
	if theta < 1e-15 {
		return unit3(u.p.Add(xi))
	}
	return unit3(u.p.Mul(math.Cos(theta)).Add(xi.Mul(math.Sin(theta) / theta)))
}

// LocalCoordinates is the inverse of Retract. For antipodal directions every tangent direction
// is a shortest path, and (pi, 0) is returned.
func (u Unit3) LocalCoordinates(other Unit3) r2.Point {
	x := u.p.Dot(other.p)
	z := 1 - x*x
	var y float64
	if z < 1e-15 {
		if x < 0 {
			return r2.Point{X: math.Pi}
		}
		y = 1 - (x-1)/3
	} else {
		y = math.Acos(x) / math.Sqrt(z)
	}
	t := u.Basis().Transpose().Mul3x1(toVec3(other.p.Sub(u.p.Mul(x)).Mul(y)))
	return r2.Point{X: t[0], Y: t[1]}
}

// Equals reports whether the two unit vectors agree component-wise within tol.
func (u Unit3) Equals(other Unit3, tol float64) bool {
	d := u.p.Sub(other.p)
	return math.Abs(d.X) <= tol && math.Abs(d.Y) <= tol && math.Abs(d.Z) <= tol
}
