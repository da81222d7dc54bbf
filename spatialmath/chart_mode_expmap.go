//go:build rot3_quaternions || rot3_expmap

package spatialmath

// DefaultChart is the chart used by Retract and LocalCoordinates.
type DefaultChart = ExpmapChart

// DefaultCoordinatesMode names DefaultChart.
const DefaultCoordinatesMode = CoordinatesExpmap
