//go:build !rot3_quaternions && !rot3_expmap

package spatialmath

// DefaultChart is the chart used by Retract and LocalCoordinates. Build with rot3_expmap to
// make it the exponential map.
type DefaultChart = CayleyChart

// DefaultCoordinatesMode names DefaultChart.
const DefaultCoordinatesMode = CoordinatesCayley
