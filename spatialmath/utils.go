package spatialmath

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseSpaceDelimitedFloats splits up space-delimited fields such as the rpy attribute of a URDF joint.
func parseSpaceDelimitedFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	converted := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q", s)
		}
		converted = append(converted, value)
	}
	return converted, nil
}
