// Package format contains numeric formatting helpers for serializers.
package format

import (
	"strconv"
	"strings"
)

// Float formats a float with the shortest representation that round-trips.
// GDML consumers parse attribute values as doubles, so no width padding is
// needed.
func Float(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// Floats joins a list of floats with single spaces, as used in GDML matrix
// values.
func Floats(ns []float64) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = Float(n)
	}
	return strings.Join(parts, " ")
}
