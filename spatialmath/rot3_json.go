package spatialmath

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	rot3RecordVersion = 1

	// decoded rotations must be this close to orthonormal (or unit norm) to be accepted.
	recordTolerance = 1e-6
)

// MarshalJSON writes the rotation in the versioned record format of the current build: the row-major
// matrix entries, or the quaternion components with the rot3_quaternions tag.
func (r Rot3) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.record())
}

// UnmarshalJSON reads a record written by MarshalJSON. The decoded rotation is checked but not
// renormalized, so a value that has drifted beyond tolerance is rejected rather than silently fixed.
func (r *Rot3) UnmarshalJSON(data []byte) error {
	var rec rot3Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "cannot decode rotation")
	}
	if rec.Version != rot3RecordVersion {
		return errors.Errorf("rotation record version %d not supported, want %d", rec.Version, rot3RecordVersion)
	}
	decoded := rec.rot3()
	if err := decoded.validate(recordTolerance); err != nil {
		return errors.Wrap(err, "invalid rotation")
	}
	*r = decoded
	return nil
}
