package setup

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/validate"
)

// BoxSolid represent box of given full widths, centered at the origin.
// Dimensions are in mm.
type BoxSolid struct {
	Size geometry.Vec3D `json:"size"`
}

// Validate checks box dimensions.
func (b BoxSolid) Validate() error {
	for axis, size := range map[string]float64{
		"x": b.Size.X,
		"y": b.Size.Y,
		"z": b.Size.Z,
	} {
		if !validate.Positive(size) {
			return fmt.Errorf("box size in %s axis cannot be <= 0.0", axis)
		}
	}
	return nil
}

// MarshalJSON json.Marshaller implementation.
func (b BoxSolid) MarshalJSON() ([]byte, error) {
	type Alias BoxSolid
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.box,
		Alias: Alias(b),
	})
}

// TubsSolid represent a tube section around the Z axis.
// Radii and the full height are in mm, angles in radians.
type TubsSolid struct {
	RMin   float64 `json:"rmin"`
	RMax   float64 `json:"rmax"`
	Dz     float64 `json:"dz"`
	SPhi   float64 `json:"sphi"`
	DPhi   float64 `json:"dphi"`
	NSlice int     `json:"nslice,omitempty"`
}

// Validate checks tube dimensions.
func (t TubsSolid) Validate() error {
	if !validate.NonNegative(t.RMin) {
		return fmt.Errorf("tubs inner radius cannot be < 0.0")
	}
	if t.RMax <= t.RMin {
		return fmt.Errorf("tubs outer radius cannot be <= inner radius")
	}
	if !validate.Positive(t.Dz) {
		return fmt.Errorf("tubs height cannot be <= 0.0")
	}
	if !validate.InRange2PI(t.DPhi) {
		return fmt.Errorf("tubs phi range must be in [0, 2π]")
	}
	return nil
}

// MarshalJSON json.Marshaller implementation.
func (t TubsSolid) MarshalJSON() ([]byte, error) {
	type Alias TubsSolid
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.tubs,
		Alias: Alias(t),
	})
}

// SphereSolid represent a spherical shell section.
// Radii are in mm, angles in radians.
type SphereSolid struct {
	RMin   float64 `json:"rmin"`
	RMax   float64 `json:"rmax"`
	SPhi   float64 `json:"sphi"`
	DPhi   float64 `json:"dphi"`
	STheta float64 `json:"stheta"`
	DTheta float64 `json:"dtheta"`
	NSlice int     `json:"nslice,omitempty"`
	NStack int     `json:"nstack,omitempty"`
}

// Validate checks sphere dimensions.
func (s SphereSolid) Validate() error {
	if !validate.NonNegative(s.RMin) {
		return fmt.Errorf("sphere inner radius cannot be < 0.0")
	}
	if s.RMax <= s.RMin {
		return fmt.Errorf("sphere outer radius cannot be <= inner radius")
	}
	if !validate.InRange2PI(s.DPhi) {
		return fmt.Errorf("sphere phi range must be in [0, 2π]")
	}
	if !validate.InRangePI(s.DTheta) {
		return fmt.Errorf("sphere theta range must be in [0, π]")
	}
	if !validate.InRange(0, math.Pi, s.STheta) {
		return fmt.Errorf("sphere theta start must be in [0, π]")
	}
	return nil
}

// MarshalJSON json.Marshaller implementation.
func (s SphereSolid) MarshalJSON() ([]byte, error) {
	type Alias SphereSolid
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.sphere,
		Alias: Alias(s),
	})
}

// PolyconeSolid represent a solid of revolution described by a closed
// r/z profile around the Z axis.
type PolyconeSolid struct {
	SPhi    float64          `json:"sphi"`
	DPhi    float64          `json:"dphi"`
	Profile geometry.Profile `json:"profile"`
	NSlice  int              `json:"nslice,omitempty"`
}

// Validate checks the polycone profile and angles.
func (p PolyconeSolid) Validate() error {
	if !validate.InRange2PI(p.DPhi) {
		return fmt.Errorf("polycone phi range must be in [0, 2π]")
	}
	return p.Profile.Validate()
}

// MarshalJSON json.Marshaller implementation.
func (p PolyconeSolid) MarshalJSON() ([]byte, error) {
	type Alias PolyconeSolid
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.polycone,
		Alias: Alias(p),
	})
}

// BooleanOperationType determines boolean solid operation type.
type BooleanOperationType int

const (
	// Union operation: A ∪ B.
	Union BooleanOperationType = iota
	// Subtraction operation: A \ B.
	Subtraction
)

var mapBooleanOperationToJSON = map[BooleanOperationType]string{
	Union:       "union",
	Subtraction: "subtraction",
}

var mapJSONToBooleanOperation = map[string]BooleanOperationType{
	"union":       Union,
	"subtraction": Subtraction,
}

// MarshalJSON custom Marshal function.
func (t BooleanOperationType) MarshalJSON() ([]byte, error) {
	s, ok := mapBooleanOperationToJSON[t]
	if !ok {
		return nil, fmt.Errorf("BooleanOperationType.MarshalJSON: can not convert %v to string", int(t))
	}
	return json.Marshal(s)
}

// UnmarshalJSON custom Unmarshal function.
func (t *BooleanOperationType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	operation, ok := mapJSONToBooleanOperation[s]
	if !ok {
		return fmt.Errorf("BooleanOperationType.UnmarshalJSON: can not convert %q to BooleanOperationType", s)
	}
	*t = operation
	return nil
}

// BooleanSolid represent a constructive operation on two registered solids.
// The second solid is displaced and rotated relative to the first.
type BooleanSolid struct {
	Operation   BooleanOperationType `json:"operation"`
	First       string               `json:"first"`
	Second      string               `json:"second"`
	Translation geometry.Point       `json:"translation"`
	Rotation    geometry.Rotation    `json:"rotation"`
}

// Validate checks the boolean solid references.
func (b BooleanSolid) Validate() error {
	if b.First == "" || b.Second == "" {
		return fmt.Errorf("boolean solid needs two operand solid names")
	}
	if b.First == b.Second {
		return fmt.Errorf("boolean solid operands must differ")
	}
	return nil
}

// MarshalJSON json.Marshaller implementation.
func (b BooleanSolid) MarshalJSON() ([]byte, error) {
	type Alias BooleanSolid
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  solidType.boolean,
		Alias: Alias(b),
	})
}
