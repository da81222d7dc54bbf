package spatialmath

import (
	"encoding/json"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RotationType defines what rotation representations are known.
type RotationType string

// The set of allowed representations for rotations.
const (
	NoRotation         = RotationType("")
	RotationMatrixType = RotationType("rotation_matrix")
	QuaternionType     = RotationType("quaternion")
	AxisAnglesType     = RotationType("axis_angle")
	EulerAnglesType    = RotationType("euler_angles")
	TangentType        = RotationType("tangent")
	RPYType            = RotationType("rpy")
)

// RawRotation holds the underlying type of rotation, and the value.
type RawRotation struct {
	Type  RotationType    `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// QuaternionConfig is the configuration form of a unit quaternion.
type QuaternionConfig struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TangentConfig is the configuration form of a tangent vector, axis times angle in radians.
type TangentConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ParseRotation will use the Type in RawRotation to unmarshal the Value into the correct struct that
// describes a rotation. An empty config is the identity. Matrices and quaternions must already be
// valid rotations to within 1e-6.
func ParseRotation(rr RawRotation) (Rot3, error) {
	var r Rot3
	switch rr.Type {
	case NoRotation:
		return Identity(), nil
	case RotationMatrixType:
		var rows [3][3]float64
		if err := json.Unmarshal(rr.Value, &rows); err != nil {
			return Rot3{}, err
		}
		m := mat3(
			rows[0][0], rows[0][1], rows[0][2],
			rows[1][0], rows[1][1], rows[1][2],
			rows[2][0], rows[2][1], rows[2][2],
		)
		if err := validateMatrix(m, recordTolerance); err != nil {
			return Rot3{}, errors.Wrap(err, "invalid rotation_matrix rotation")
		}
		r = NewRot3FromMatrix(m)
	case QuaternionType:
		var q QuaternionConfig
		if err := json.Unmarshal(rr.Value, &q); err != nil {
			return Rot3{}, err
		}
		qn := quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
		if err := validateQuaternion(qn, recordTolerance); err != nil {
			return Rot3{}, errors.Wrap(err, "invalid quaternion rotation")
		}
		r = NewRot3FromQuaternion(qn)
	case AxisAnglesType:
		var aa R4AA
		if err := json.Unmarshal(rr.Value, &aa); err != nil {
			return Rot3{}, err
		}
		if aa.RX == 0 && aa.RY == 0 && aa.RZ == 0 {
			return Rot3{}, errors.New("axis angle rotation needs a non-zero axis")
		}
		r = aa.Rot3()
	case EulerAnglesType:
		var ea EulerAngles
		if err := json.Unmarshal(rr.Value, &ea); err != nil {
			return Rot3{}, err
		}
		r = ea.Rot3()
	case TangentType:
		var tc TangentConfig
		if err := json.Unmarshal(rr.Value, &tc); err != nil {
			return Rot3{}, err
		}
		r = Expmap(r3.Vector{X: tc.X, Y: tc.Y, Z: tc.Z}, nil)
	case RPYType:
		var s string
		if err := json.Unmarshal(rr.Value, &s); err != nil {
			return Rot3{}, err
		}
		rpy, err := parseSpaceDelimitedFloats(s)
		if err != nil {
			return Rot3{}, err
		}
		if len(rpy) != 3 {
			return Rot3{}, errors.Errorf("rpy needs 3 values, got %q", s)
		}
		r = RzRyRx(rpy[0], rpy[1], rpy[2])
	default:
		return Rot3{}, errors.Errorf("rotation type %s not recognized", rr.Type)
	}
	if err := r.validate(recordTolerance); err != nil {
		return Rot3{}, errors.Wrapf(err, "invalid %s rotation", rr.Type)
	}
	return r, nil
}

// RotationMap encodes the orientation interface to something serializable and human readable.
func RotationMap(o Orientation) (map[string]interface{}, error) {
	switch v := o.(type) {
	case *R4AA:
		return map[string]interface{}{"type": string(AxisAnglesType), "value": v}, nil
	case *EulerAngles:
		return map[string]interface{}{"type": string(EulerAnglesType), "value": v}, nil
	case Rot3:
		q := v.ToQuaternion()
		return map[string]interface{}{
			"type":  string(QuaternionType),
			"value": &QuaternionConfig{W: q.Real, X: q.Imag, Y: q.Jmag, Z: q.Kmag},
		}, nil
	default:
		return nil, errors.Errorf("do not know how to map Orientation type %T to json fields", o)
	}
}

// NewRawRotation is the inverse of ParseRotation for any orientation RotationMap knows.
func NewRawRotation(o Orientation) (RawRotation, error) {
	m, err := RotationMap(o)
	if err != nil {
		return RawRotation{}, err
	}
	value, err := json.Marshal(m["value"])
	if err != nil {
		return RawRotation{}, err
	}
	return RawRotation{Type: RotationType(m["type"].(string)), Value: value}, nil
}
