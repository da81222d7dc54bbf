package spatialmath

import (
	"github.com/golang/geo/r3"
)

// AngularVelocityBetween returns the constant body-frame angular velocity, in rad/s, that turns
// from into to over dt seconds. Turns of more than pi are taken the short way round. dt must be
// non-zero.
func AngularVelocityBetween(from, to Rot3, dt float64) r3.Vector {
	if dt == 0 { // prevent division by 0
		panic("cannot compute angular velocity over a zero time step")
	}
	return Logmap(from.Between(to, nil, nil), nil).Mul(1 / dt)
}

// IntegrateAngularVelocity applies the body-frame angular velocity omega, in rad/s, to r for dt
// seconds.
func IntegrateAngularVelocity(r Rot3, omega r3.Vector, dt float64) Rot3 {
	return r.Compose(Expmap(omega.Mul(dt), nil))
}
