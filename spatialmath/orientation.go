package spatialmath

// Orientation is implemented by every parameterization of a 3D rotation that can be converted to
// a Rot3: Rot3 itself, R4AA and EulerAngles.
type Orientation interface {
	Rot3() Rot3
}

// Rot3 returns r, so that Rot3 is itself an Orientation.
func (r Rot3) Rot3() Rot3 {
	return r
}

// OrientationAlmostEqual will return a bool describing whether 2 orientations are within 1e-5 radians
// of each other.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return OrientationAlmostEqualEps(o1, o2, 1e-5)
}

// OrientationAlmostEqualEps is OrientationAlmostEqual with a caller-chosen angle tolerance in radians.
func OrientationAlmostEqualEps(o1, o2 Orientation, eps float64) bool {
	return Logmap(OrientationBetween(o1, o2), nil).Norm() <= eps
}

// OrientationBetween returns the rotation taking o1 to o2, expressed in the o1 frame.
func OrientationBetween(o1, o2 Orientation) Rot3 {
	return o1.Rot3().Between(o2.Rot3(), nil, nil)
}
