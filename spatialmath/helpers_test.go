package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

const jacobianTol = 1e-6

var fdSettings = &fd.JacobianSettings{Formula: fd.Central, Step: 1e-5}

// numericalJacobian differentiates f at zero. f takes an n dimensional perturbation and returns the m
// dimensional local coordinates of the perturbed output.
func numericalJacobian(m, n int, f func(dx []float64) []float64) *mat.Dense {
	dst := mat.NewDense(m, n, nil)
	fd.Jacobian(dst, func(y, x []float64) { copy(y, f(x)) }, make([]float64, n), fdSettings)
	return dst
}

func vec(x []float64) r3.Vector {
	return r3.Vector{X: x[0], Y: x[1], Z: x[2]}
}

func slice(v r3.Vector) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// perturbed applies a right perturbation of r.
func perturbed(r Rot3, dx []float64) Rot3 {
	return r.Compose(Expmap(vec(dx), nil))
}

// localOf gives the exponential map coordinates of x around ref.
func localOf(ref, x Rot3) []float64 {
	return slice(Logmap(ref.Inverse().Compose(x), nil))
}

func unitPerturbed(u Unit3, dx []float64) Unit3 {
	return u.Retract(r2.Point{X: dx[0], Y: dx[1]})
}

func unitLocalOf(ref, x Unit3) []float64 {
	v := ref.LocalCoordinates(x)
	return []float64{v.X, v.Y}
}

type matrix interface {
	At(row, col int) float64
}

func expectJacobian(t *testing.T, analytic matrix, numeric *mat.Dense) {
	t.Helper()
	rows, cols := numeric.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			test.That(t, analytic.At(i, j), test.ShouldAlmostEqual, numeric.At(i, j), jacobianTol)
		}
	}
}

func expectRot3(t *testing.T, got, want Rot3, tol float64) {
	t.Helper()
	if !got.Equals(want, tol) {
		t.Fatalf("rotations differ:\n%v\nwant\n%v", got, want)
	}
}

func expectVector(t *testing.T, got, want r3.Vector, tol float64) {
	t.Helper()
	test.That(t, got.X, test.ShouldAlmostEqual, want.X, tol)
	test.That(t, got.Y, test.ShouldAlmostEqual, want.Y, tol)
	test.That(t, got.Z, test.ShouldAlmostEqual, want.Z, tol)
}

func expectMat3(t *testing.T, got, want mgl64.Mat3, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			test.That(t, got.At(i, j), test.ShouldAlmostEqual, want.At(i, j), tol)
		}
	}
}

func mustUnit3(t *testing.T, x, y, z float64) Unit3 {
	t.Helper()
	u, err := NewUnit3(r3.Vector{X: x, Y: y, Z: z})
	test.That(t, err, test.ShouldBeNil)
	return u
}

// sampleRotations covers the identity, small and large angles, half turns and random rotations.
func sampleRotations() []Rot3 {
	rng := rand.New(rand.NewSource(1))
	samples := []Rot3{
		Identity(),
		Rx(1e-6),
		RzRyRx(0.1, -0.2, 0.3),
		Ypr(2.5, 1.2, -2.9),
		AxisAngle(r3.Vector{Z: 1}, math.Pi-1e-3),
	}
	for i := 0; i < 10; i++ {
		samples = append(samples, Random(rng))
	}
	return samples
}
