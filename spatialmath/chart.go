package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// CoordinatesMode names a local coordinate chart of SO(3).
type CoordinatesMode int

// CoordinatesExpmap is the chart given by the exponential map.
const CoordinatesExpmap CoordinatesMode = iota

// A Chart maps tangent vectors at the identity to rotations and back. Retract and Local are
// inverse to each other near the identity. H receives the derivative of the output with
// respect to the input, nil to skip it.
type Chart interface {
	Retract(v r3.Vector, H *mgl64.Mat3) Rot3
	Local(r Rot3, H *mgl64.Mat3) r3.Vector
}

// ExpmapChart is the exponential map chart. It is exact: Local(Retract(v)) == v for |v| < pi.
type ExpmapChart struct{}

// Retract returns Expmap(v).
func (ExpmapChart) Retract(v r3.Vector, H *mgl64.Mat3) Rot3 {
	return Expmap(v, H)
}

// Local returns Logmap(r).
func (ExpmapChart) Local(r Rot3, H *mgl64.Mat3) r3.Vector {
	return Logmap(r, H)
}

var charts = map[CoordinatesMode]Chart{
	CoordinatesExpmap: ExpmapChart{},
}

// ChartFor looks up the chart for mode. The Cayley chart is only available in matrix builds.
func ChartFor(mode CoordinatesMode) (Chart, error) {
	c, ok := charts[mode]
	if !ok {
		return nil, errors.Errorf("coordinates mode %d is not supported by this build", mode)
	}
	return c, nil
}

// Retract moves from r along the tangent vector v in the default chart: r * chart(v).
// H1 and H2 receive the derivatives with respect to r and v.
func (r Rot3) Retract(v r3.Vector, H1, H2 *mgl64.Mat3) Rot3 {
	return retractWith(DefaultChart{}, r, v, H1, H2)
}

// LocalCoordinates is the inverse of Retract: the tangent vector v with r.Retract(v) == other.
// H1 and H2 receive the derivatives with respect to r and other.
func (r Rot3) LocalCoordinates(other Rot3, H1, H2 *mgl64.Mat3) r3.Vector {
	return localWith(DefaultChart{}, r, other, H1, H2)
}

// RetractExpmap is Retract in the exponential map chart, whatever the default.
func (r Rot3) RetractExpmap(v r3.Vector, H1, H2 *mgl64.Mat3) Rot3 {
	return retractWith(ExpmapChart{}, r, v, H1, H2)
}

// LocalExpmap is LocalCoordinates in the exponential map chart, whatever the default.
func (r Rot3) LocalExpmap(other Rot3, H1, H2 *mgl64.Mat3) r3.Vector {
	return localWith(ExpmapChart{}, r, other, H1, H2)
}

// RetractWithMode is Retract in the chart named by mode.
func (r Rot3) RetractWithMode(v r3.Vector, mode CoordinatesMode, H1, H2 *mgl64.Mat3) (Rot3, error) {
	c, err := ChartFor(mode)
	if err != nil {
		return Rot3{}, err
	}
	return retractWith(c, r, v, H1, H2), nil
}

// LocalWithMode is LocalCoordinates in the chart named by mode.
func (r Rot3) LocalWithMode(other Rot3, mode CoordinatesMode, H1, H2 *mgl64.Mat3) (r3.Vector, error) {
	c, err := ChartFor(mode)
	if err != nil {
		return r3.Vector{}, err
	}
	return localWith(c, r, other, H1, H2), nil
}

func retractWith(c Chart, r Rot3, v r3.Vector, H1, H2 *mgl64.Mat3) Rot3 {
	h := c.Retract(v, H2)
	if H1 != nil {
		*H1 = h.Transpose()
	}
	return r.Compose(h)
}

func localWith(c Chart, r, other Rot3, H1, H2 *mgl64.Mat3) r3.Vector {
	if H1 == nil && H2 == nil {
		return c.Local(r.Between(other, nil, nil), nil)
	}
	var dhr, dvh mgl64.Mat3
	h := r.Between(other, &dhr, nil)
	v := c.Local(h, &dvh)
	if H1 != nil {
		*H1 = dvh.Mul3(dhr)
	}
	if H2 != nil {
		*H2 = dvh
	}
	return v
}
