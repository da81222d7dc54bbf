package spatialmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

var tangentSamples = []r3.Vector{
	{},
	{X: 1e-9, Y: -2e-9, Z: 5e-10},
	{X: 1e-5, Y: 2e-5, Z: -1e-5},
	{X: 0.1, Y: 0.2, Z: 0.3},
	{X: -1.2, Y: 0.4, Z: 0.9},
	{Z: math.Pi / 2},
	{X: 2, Y: -1, Z: 1.5},
	{Y: math.Pi - 1e-4},
}

func TestExpmapFirstOrder(t *testing.T) {
	w := r3.Vector{X: 1e-6, Y: -2e-6, Z: 3e-6}
	expected := mgl64.Ident3().Add(Skew(w))
	expectMat3(t, Expmap(w, nil).Matrix(), expected, 1e-11)
}

func TestExpmapKnownValues(t *testing.T) {
	expectRot3(t, Expmap(r3.Vector{Z: math.Pi / 2}, nil), Rz(math.Pi/2), 1e-12)
	expectRot3(t, Expmap(r3.Vector{X: -0.7}, nil), Rx(-0.7), 1e-12)
	expectRot3(t, Expmap(r3.Vector{}, nil), Identity(), 0)
	expectRot3(t, Rodrigues(r3.Vector{Y: 0.3}), Ry(0.3), 1e-12)
	expectRot3(t, RodriguesXYZ(0.1, 0.2, 0.3), Expmap(r3.Vector{X: 0.1, Y: 0.2, Z: 0.3}, nil), 1e-12)
}

func TestLogmapExpmapRoundTrip(t *testing.T) {
	for _, w := range tangentSamples {
		expectVector(t, Logmap(Expmap(w, nil), nil), w, 1e-9)
	}
	for _, r := range sampleRotations() {
		w := Logmap(r, nil)
		test.That(t, w.Norm(), test.ShouldBeLessThanOrEqualTo, math.Pi+1e-12)
		expectRot3(t, Expmap(w, nil), r, 1e-9)
	}
}

func TestLogmapNearPi(t *testing.T) {
	axis := r3.Vector{X: 1, Y: 2, Z: -2}.Normalize()
	for _, eps := range []float64{1e-3, 1e-6, 1e-9, 0} {
		r := AxisAngle(axis, math.Pi-eps)
		w := Logmap(r, nil)
		test.That(t, w.Norm(), test.ShouldAlmostEqual, math.Pi-eps, 1e-8)
		// at exactly pi either sign is a valid answer
		test.That(t, math.Abs(w.Normalize().Dot(axis)), test.ShouldAlmostEqual, 1, 1e-8)
		expectRot3(t, Expmap(w, nil), r, 1e-9)
	}
	// a half turn built from the matrix entries directly
	r := NewRot3(-1, 0, 0, 0, -1, 0, 0, 0, 1)
	w := Logmap(r, nil)
	test.That(t, math.Abs(w.Z), test.ShouldAlmostEqual, math.Pi, 1e-12)
	expectRot3(t, Expmap(w, nil), r, 1e-12)
}

func TestExpmapJacobian(t *testing.T) {
	for _, w := range tangentSamples {
		var H mgl64.Mat3
		r := Expmap(w, &H)
		expectMat3(t, H, ExpmapDerivative(w), 0)
		numeric := numericalJacobian(3, 3, func(dx []float64) []float64 {
			return localOf(r, Expmap(w.Add(vec(dx)), nil))
		})
		expectJacobian(t, H, numeric)
	}
}

func TestLogmapJacobian(t *testing.T) {
	for _, r := range sampleRotations() {
		var H mgl64.Mat3
		w := Logmap(r, &H)
		if w.Norm() > math.Pi-1e-2 {
			// the chart wraps at pi, where finite differences jump between w and -w
			continue
		}
		numeric := numericalJacobian(3, 3, func(dx []float64) []float64 {
			return slice(Logmap(perturbed(r, dx), nil))
		})
		expectJacobian(t, H, numeric)
	}
}

func TestDerivativesAreInverse(t *testing.T) {
	for _, w := range tangentSamples {
		expectMat3(t, ExpmapDerivative(w).Mul3(LogmapDerivative(w)), mgl64.Ident3(), 1e-9)
	}
}

func TestDerivativesTaylorContinuity(t *testing.T) {
	// both sides of the small-angle switch agree
	below := r3.Vector{X: 0.99e-4}
	above := r3.Vector{X: 1.01e-4}
	expectMat3(t, ExpmapDerivative(below), ExpmapDerivative(above), 1e-5)
	expectMat3(t, LogmapDerivative(below), LogmapDerivative(above), 1e-5)
	expectRot3(t, Expmap(below, nil), Expmap(above, nil), 1e-5)
}
