package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestAngularVelocity(t *testing.T) {
	start := RzRyRx(0.2, 0.1, 0.3)
	dt := 2.0

	for _, rate := range []struct {
		TestName    string
		AngularRate r3.Vector
	}{
		{"unitary roll", r3.Vector{X: 1, Y: 0, Z: 0}},
		{"unitary pitch", r3.Vector{X: 0, Y: 1, Z: 0}},
		{"unitary yaw", r3.Vector{X: 0, Y: 0, Z: 1}},
		{"roll", r3.Vector{X: 0.4, Y: 0, Z: 0}},
		{"pitch", r3.Vector{X: 0, Y: -0.6, Z: 0}},
		{"mixed", r3.Vector{X: 0.3, Y: 0.2, Z: -0.5}},
	} {
		t.Run(rate.TestName, func(t *testing.T) {
			fin := IntegrateAngularVelocity(start, rate.AngularRate, dt)
			expectRot3(t, fin, start.Compose(Expmap(rate.AngularRate.Mul(dt), nil)), 1e-12)

			av := AngularVelocityBetween(start, fin, dt)
			expectVector(t, av, rate.AngularRate, 1e-9)
		})
	}

	t.Run("short way round", func(t *testing.T) {
		fin := start.Compose(Rz(1.5 * math.Pi))
		av := AngularVelocityBetween(start, fin, 1)
		test.That(t, av.Z, test.ShouldBeLessThan, 0.)
	})

	t.Run("zero time step", func(t *testing.T) {
		test.That(t, func() { AngularVelocityBetween(start, start.Compose(Rx(0.1)), 0) }, test.ShouldPanic)
		test.That(t, IntegrateAngularVelocity(start, r3.Vector{X: 1}, 0).Equals(start, 1e-15), test.ShouldBeTrue)
	})
}
