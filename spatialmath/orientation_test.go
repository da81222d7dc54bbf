package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{Real: math.Cos(th / 2.), Imag: math.Sin(th / 2.)} // in quaternion representation
	aa45x = &R4AA{th, 1., 0., 0.}                                         // in axis-angle representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                      // in euler angle representation
	r45x  = Rx(th)                                                        // as a rotation
)

func TestQuaternions(t *testing.T) {
	qr := NewRot3FromQuaternion(q45x)
	test.That(t, OrientationAlmostEqual(qr, r45x), test.ShouldBeTrue)
	test.That(t, qr.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, qr.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, qr.AxisAngles().RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, qr.AxisAngles().RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, qr.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, qr.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, qr.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
}

func TestEulerAnglesOrientation(t *testing.T) {
	test.That(t, OrientationAlmostEqual(ea45x, r45x), test.ShouldBeTrue)
	q := ea45x.Rot3().ToQuaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, q.Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, q45x.Kmag)
	test.That(t, ea45x.Rot3().AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, ea45x.Rot3().AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
}

func TestAxisAngles(t *testing.T) {
	test.That(t, OrientationAlmostEqual(aa45x, r45x), test.ShouldBeTrue)
	test.That(t, aa45x.Rot3().EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, aa45x.Rot3().EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, aa45x.Rot3().EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	expectVector(t, aa45x.ToR3(), Logmap(r45x, nil), 1e-12)

	back := R3ToR4(aa45x.ToR3())
	test.That(t, back.Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, back.RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, back.RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, back.RZ, test.ShouldAlmostEqual, aa45x.RZ)
	test.That(t, Identity().AxisAngles(), test.ShouldResemble, NewR4AA())

	unnormalized := &R4AA{Theta: th, RX: 2}
	test.That(t, OrientationAlmostEqual(unnormalized, r45x), test.ShouldBeTrue)
	test.That(t, unnormalized.RX, test.ShouldEqual, 1.)

	test.That(t, func() { (&R4AA{Theta: 1}).Normalize() }, test.ShouldPanic)
}

func TestOrientationTransform(t *testing.T) {
	aa := &R4AA{Theta: math.Pi / 2., RX: 0., RY: 1., RZ: 0.}
	result := aa.Rot3().Rotate(Rx(0).R1(), nil, nil)
	t.Logf("x axis after a quarter turn about y: %v", result)
	test.That(t, result.X, test.ShouldAlmostEqual, 0)
	test.That(t, result.Y, test.ShouldAlmostEqual, 0)
	test.That(t, result.Z, test.ShouldAlmostEqual, -1)
}

func TestOrientationBetween(t *testing.T) {
	aa := &R4AA{Theta: math.Pi / 2., RX: 0., RY: 1., RZ: 0.}
	btw := OrientationBetween(aa, ea45x)
	test.That(t, OrientationAlmostEqual(aa.Rot3().Compose(btw), ea45x), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(aa, ea45x), test.ShouldBeFalse)
	test.That(t, OrientationAlmostEqualEps(Rz(0.1), Rz(0.1001), 1e-3), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqualEps(Rz(0.1), Rz(0.102), 1e-3), test.ShouldBeFalse)
}
