package setup

// OpticalSurface describes the optical behaviour of a boundary.
// Model, finish and type use the Geant4 unified-model vocabulary.
type OpticalSurface struct {
	Name   string `json:"name"`
	Model  string `json:"model"`
	Finish string `json:"finish"`
	Type   string `json:"type"`

	// Value is the model parameter (sigma alpha or polish).
	Value float64 `json:"value"`

	Properties Properties `json:"properties,omitempty"`
}

// BorderSurface attaches an optical surface to the boundary between two
// physical volumes. The surface acts on photons crossing from First into
// Second.
type BorderSurface struct {
	Name    string
	First   *PhysicalVolume
	Second  *PhysicalVolume
	Surface *OpticalSurface
}
