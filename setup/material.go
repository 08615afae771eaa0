package setup

import (
	"encoding/json"

	"github.com/legend-exp/geom-scarf/utils"
)

var materialType = struct {
	predefined string
	compound   string
}{
	predefined: "predefined",
	compound:   "compound",
}

var materialTypeMapping = map[string]func() interface{}{
	materialType.predefined: func() interface{} { return &MaterialPredefined{} },
	materialType.compound:   func() interface{} { return &MaterialCompound{} },
}

// Material defines a volume material used in the geometry.
type Material struct {
	Name  string        `json:"name"`
	Specs MaterialSpecs `json:"specs"`
}

// MaterialSpecs wraps the polymorphic material definition.
type MaterialSpecs struct {
	MaterialType
}

// MaterialType is implemented by all material definitions.
type MaterialType interface{}

// MarshalJSON json.Marshaller implementation.
func (m MaterialSpecs) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.MaterialType)
}

// UnmarshalJSON custom Unmarshal function.
// The material definition is recognized by specs/type in json.
func (m *MaterialSpecs) UnmarshalJSON(b []byte) error {
	materialInfo, err := utils.TypeBasedUnmarshallJSON(b, materialTypeMapping)
	if err != nil {
		return err
	}
	m.MaterialType = materialInfo
	return nil
}

// MaterialPredefined material type - reference a material from the
// simulation engine NIST database by name (eg. "G4_Galactic", "G4_Fe").
// Predefined materials are emitted by reference only.
type MaterialPredefined struct {
	PredefinedID string `json:"predefinedId"`
}

// MarshalJSON json.Marshaller implementation.
func (p MaterialPredefined) MarshalJSON() ([]byte, error) {
	type Alias MaterialPredefined
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  materialType.predefined,
		Alias: (Alias)(p),
	})
}

// MaterialCompound material type - material defined by its element
// composition.
type MaterialCompound struct {
	// Density of the medium in g/cm³.
	Density float64 `json:"density"`

	// State of matter - optional.
	StateOfMatter StateOfMatter `json:"stateOfMatter,omitempty"`

	// Temperature in K - optional.
	Temperature float64 `json:"temperature,omitempty"`

	// Pressure in Pa - optional.
	Pressure float64 `json:"pressure,omitempty"`

	Elements []ElementCount `json:"elements"`

	// Optical properties attached to the material - optional.
	Properties Properties `json:"properties,omitempty"`
}

// MarshalJSON json.Marshaller implementation.
func (c MaterialCompound) MarshalJSON() ([]byte, error) {
	type Alias MaterialCompound
	return json.Marshal(struct {
		Type string `json:"type"`
		Alias
	}{
		Type:  materialType.compound,
		Alias: (Alias)(c),
	})
}

// ElementCount is one element of a compound with its atom count.
type ElementCount struct {
	Symbol string `json:"symbol"`
	NAtoms int    `json:"natoms"`
}
