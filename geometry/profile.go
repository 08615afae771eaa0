package geometry

import "fmt"

// Profile is a closed revolution profile described by parallel lists of
// radii and heights. Revolving the polygon around the Z axis yields a
// generic polycone solid.
type Profile struct {
	R []float64 `json:"r"`
	Z []float64 `json:"z"`
}

// Validate checks that the profile describes a usable revolution polygon.
func (p Profile) Validate() error {
	if len(p.R) != len(p.Z) {
		return fmt.Errorf("profile has %d radii but %d heights", len(p.R), len(p.Z))
	}
	if len(p.R) < 3 {
		return fmt.Errorf("profile needs at least 3 points, got %d", len(p.R))
	}
	for i, r := range p.R {
		if r < 0 {
			return fmt.Errorf("profile radius at index %d cannot be negative", i)
		}
	}
	return nil
}

// Len returns the number of profile points.
func (p Profile) Len() int {
	return len(p.R)
}

// Shifted returns a copy of the profile with all heights displaced by dz.
func (p Profile) Shifted(dz float64) Profile {
	shifted := Profile{
		R: append([]float64{}, p.R...),
		Z: make([]float64, len(p.Z)),
	}
	for i, z := range p.Z {
		shifted.Z[i] = z + dz
	}
	return shifted
}
