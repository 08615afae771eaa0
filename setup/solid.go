package setup

import (
	"encoding/json"

	"github.com/legend-exp/geom-scarf/utils"
)

// Solid store SolidGeometry interface described by Name.
type Solid struct {
	Name     string        `json:"name"`
	Geometry SolidGeometry `json:"geometry"`
}

// SolidGeometry is implemented by all solid shapes.
type SolidGeometry interface {
	// Validate checks the shape dimensions.
	Validate() error
}

var solidType = struct {
	box      string
	tubs     string
	sphere   string
	polycone string
	boolean  string
}{
	box:      "box",
	tubs:     "tubs",
	sphere:   "sphere",
	polycone: "genericPolycone",
	boolean:  "boolean",
}

var solidTypeMapping = map[string]func() interface{}{
	solidType.box:      func() interface{} { return &BoxSolid{} },
	solidType.tubs:     func() interface{} { return &TubsSolid{} },
	solidType.sphere:   func() interface{} { return &SphereSolid{} },
	solidType.polycone: func() interface{} { return &PolyconeSolid{} },
	solidType.boolean:  func() interface{} { return &BooleanSolid{} },
}

// Validate checks the solid name and shape.
func (s *Solid) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if s.Geometry == nil {
		return ErrNoGeometry
	}
	return s.Geometry.Validate()
}

// UnmarshalJSON custom Unmarshal function.
// Geometry type is recognized by geometry/type in json.
func (s *Solid) UnmarshalJSON(b []byte) error {
	type rawSolid struct {
		Name        string          `json:"name"`
		GeometryRaw json.RawMessage `json:"geometry"`
	}

	var raw rawSolid
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Name = raw.Name

	geometry, err := utils.TypeBasedUnmarshallJSON(raw.GeometryRaw, solidTypeMapping)
	if err != nil {
		return err
	}
	solidGeometry, ok := geometry.(SolidGeometry)
	if !ok {
		return ErrNoGeometry
	}
	s.Geometry = solidGeometry

	return nil
}
