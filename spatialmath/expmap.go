package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Expmap maps a tangent vector omega (axis times angle) to the rotation it generates, using
// Rodrigues' formula or the quaternion exponential depending on the build. Small angles use a
// Taylor expansion instead of dividing by the angle. H receives the right Jacobian at omega.
func Expmap(omega r3.Vector, H *mgl64.Mat3) Rot3 {
	if H != nil {
		*H = ExpmapDerivative(omega)
	}
	return expmap(omega)
}

// Logmap returns the tangent vector omega, with |omega| in [0, pi], such that
// Expmap(omega) == r. Near a half turn the axis comes from the quaternion vector part, so the
// precision loss is bounded, but rotations by exactly pi have two valid answers (omega and
// -omega) and either may be returned. H receives the inverse right Jacobian at omega.
func Logmap(r Rot3, H *mgl64.Mat3) r3.Vector {
	omega := r.logmap()
	if H != nil {
		*H = LogmapDerivative(omega)
	}
	return omega
}

// Rodrigues is Expmap without the derivative.
func Rodrigues(omega r3.Vector) Rot3 {
	return expmap(omega)
}

// RodriguesXYZ is Rodrigues with the incremental roll, pitch and yaw given separately.
func RodriguesXYZ(wx, wy, wz float64) Rot3 {
	return expmap(r3.Vector{X: wx, Y: wy, Z: wz})
}
