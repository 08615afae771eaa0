// Package geometry implement geometry primitives used in the setup model.
package geometry

// Point represent a point in 3D space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3D represent a vector in 3D space.
type Vec3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rotation represent Tait-Bryan rotation angles around X, Y and Z axes.
// Angles are in radians.
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// IsZero reports whether the rotation is the identity rotation.
func (r Rotation) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0
}

// CenterAndSizeToMinAndMax converts axis center and size to axis min and max.
func CenterAndSizeToMinAndMax(center float64, size float64) (min float64, max float64) {
	return center - size/2, center + size/2
}
