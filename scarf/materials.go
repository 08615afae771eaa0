package scarf

import "github.com/legend-exp/geom-scarf/setup"

// hc in eV*nm, used to convert photon wavelengths to energies.
const evNM = 1239.84193

func nmToEV(nm float64) float64 { return evNM / nm }

// energiesFromNM converts a descending wavelength list in nm to the
// matching photon energy list in eV. Since energy is hc/lambda, the
// result comes out ascending with values still paired by index.
func energiesFromNM(wavelengths []float64) []float64 {
	energies := make([]float64, len(wavelengths))
	for i, nm := range wavelengths {
		energies[i] = nmToEV(nm)
	}
	return energies
}

// MaterialRegistry builds and memoizes the SCARF materials and optical
// surfaces. Materials are registered on first use, so a geometry only
// carries the materials it references.
type MaterialRegistry struct {
	reg *setup.Registry

	// LArTemperatureK is the argon temperature used for material state.
	LArTemperatureK float64

	materials map[string]*setup.Material
	surfaces  map[string]*setup.OpticalSurface
}

// NewMaterialRegistry constructor.
func NewMaterialRegistry(reg *setup.Registry) *MaterialRegistry {
	return &MaterialRegistry{
		reg:             reg,
		LArTemperatureK: 88.8,
		materials:       map[string]*setup.Material{},
		surfaces:        map[string]*setup.OpticalSurface{},
	}
}

func (m *MaterialRegistry) material(name string, build func() *setup.Material) (*setup.Material, error) {
	if cached, ok := m.materials[name]; ok {
		return cached, nil
	}
	material := build()
	if err := m.reg.AddMaterial(material); err != nil {
		return nil, err
	}
	m.materials[name] = material
	return material, nil
}

func (m *MaterialRegistry) surface(name string, build func() *setup.OpticalSurface) (*setup.OpticalSurface, error) {
	if cached, ok := m.surfaces[name]; ok {
		return cached, nil
	}
	surface := build()
	if err := m.reg.AddSurface(surface); err != nil {
		return nil, err
	}
	m.surfaces[name] = surface
	return surface, nil
}

// Predefined returns a NIST material referenced by name (eg. "G4_Fe").
func (m *MaterialRegistry) Predefined(id string) (*setup.Material, error) {
	return m.material(id, func() *setup.Material {
		return &setup.Material{
			Name:  id,
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialPredefined{PredefinedID: id}},
		}
	})
}

// LiquidArgon returns the scintillating liquid argon of the cryostat,
// with refractive index, attenuation and scintillation attached.
func (m *MaterialRegistry) LiquidArgon() (*setup.Material, error) {
	return m.material("liquid_argon", func() *setup.Material {
		props := setup.Properties{}
		props.AddVec("RINDEX",
			energiesFromNM([]float64{650, 500, 400, 300, 200, 150, 128}),
			[]float64{1.222, 1.2245, 1.229, 1.240, 1.271, 1.323, 1.357})
		// attenuation lengths in mm
		props.AddVec("RAYLEIGH",
			energiesFromNM([]float64{650, 128}),
			[]float64{1.2e6, 900})
		props.AddVec("ABSLENGTH",
			energiesFromNM([]float64{650, 128}),
			[]float64{1.0e6, 600})
		// VUV scintillation peaked at 128 nm
		props.AddVec("SCINTILLATIONCOMPONENT1",
			energiesFromNM([]float64{135, 131, 128, 125, 122}),
			[]float64{0.1, 0.5, 1.0, 0.5, 0.1})
		props.AddConst("SCINTILLATIONYIELD", 1000) // photons/MeV, flat-top
		props.AddConst("RESOLUTIONSCALE", 1)
		props.AddConst("SCINTILLATIONTIMECONSTANT1", 6)    // ns, singlet
		props.AddConst("SCINTILLATIONTIMECONSTANT2", 1590) // ns, triplet
		props.AddConst("SCINTILLATIONYIELD1", 0.23)

		return &setup.Material{
			Name: "liquid_argon",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       1.390,
				StateOfMatter: setup.Liquid,
				Temperature:   m.LArTemperatureK,
				Pressure:      1.0e5,
				Elements:      []setup.ElementCount{{Symbol: "Ar", NAtoms: 1}},
				Properties:    props,
			}},
		}
	})
}

// MetalSteel returns the cryostat vessel steel.
func (m *MaterialRegistry) MetalSteel() (*setup.Material, error) {
	return m.material("metal_steel", func() *setup.Material {
		return &setup.Material{
			Name: "metal_steel",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       7.9,
				StateOfMatter: setup.SolidState,
				Elements: []setup.ElementCount{
					{Symbol: "Cr", NAtoms: 2},
					{Symbol: "Fe", NAtoms: 7},
					{Symbol: "Ni", NAtoms: 1},
				},
			}},
		}
	})
}

// Rock returns the cavern rock.
func (m *MaterialRegistry) Rock() (*setup.Material, error) {
	return m.material("rock", func() *setup.Material {
		return &setup.Material{
			Name: "rock",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       2.65,
				StateOfMatter: setup.SolidState,
				Elements: []setup.ElementCount{
					{Symbol: "Si", NAtoms: 1},
					{Symbol: "O", NAtoms: 2},
				},
			}},
		}
	})
}

// EnrichedGermanium returns the HPGe crystal germanium.
func (m *MaterialRegistry) EnrichedGermanium() (*setup.Material, error) {
	return m.material("enriched_germanium", func() *setup.Material {
		return &setup.Material{
			Name: "enriched_germanium",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       5.55,
				StateOfMatter: setup.SolidState,
				Temperature:   m.LArTemperatureK,
				Elements:      []setup.ElementCount{{Symbol: "Ge", NAtoms: 1}},
			}},
		}
	})
}

// TPBOnFibers returns the wavelength shifter coating of the fibers.
func (m *MaterialRegistry) TPBOnFibers() (*setup.Material, error) {
	return m.material("tpb_on_fibers", func() *setup.Material {
		props := setup.Properties{}
		props.AddVec("RINDEX",
			energiesFromNM([]float64{650, 128}),
			[]float64{1.67, 1.67})
		// absorb VUV, transparent in the visible
		props.AddVec("WLSABSLENGTH",
			energiesFromNM([]float64{650, 355, 350, 128}),
			[]float64{1.0e5, 1.0e5, 0.001, 0.001})
		// re-emission spectrum peaked at 425 nm
		props.AddVec("WLSCOMPONENT",
			energiesFromNM([]float64{550, 500, 460, 425, 400, 375}),
			[]float64{0.05, 0.3, 0.8, 1.0, 0.4, 0.05})
		props.AddConst("WLSTIMECONSTANT", 0.01) // ns
		props.AddConst("WLSMEANNUMBERPHOTONS", 1.2)

		return &setup.Material{
			Name: "tpb_on_fibers",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       1.08,
				StateOfMatter: setup.SolidState,
				Elements: []setup.ElementCount{
					{Symbol: "H", NAtoms: 22},
					{Symbol: "C", NAtoms: 28},
				},
				Properties: props,
			}},
		}
	})
}

// PSFibers returns the polystyrene fiber core.
func (m *MaterialRegistry) PSFibers() (*setup.Material, error) {
	return m.material("ps_fibers", func() *setup.Material {
		props := setup.Properties{}
		props.AddVec("RINDEX",
			energiesFromNM([]float64{650, 128}),
			[]float64{1.6, 1.6})
		props.AddVec("ABSLENGTH",
			energiesFromNM([]float64{650, 450, 430, 128}),
			[]float64{3500, 3500, 10, 10})
		props.AddVec("WLSABSLENGTH",
			energiesFromNM([]float64{650, 445, 425, 340, 330, 128}),
			[]float64{1.0e5, 1.0e5, 0.5, 0.5, 1.0e5, 1.0e5})
		props.AddVec("WLSCOMPONENT",
			energiesFromNM([]float64{600, 550, 500, 480, 460, 440}),
			[]float64{0.05, 0.3, 0.8, 1.0, 0.6, 0.05})
		props.AddConst("WLSTIMECONSTANT", 2.7) // ns

		return &setup.Material{
			Name: "ps_fibers",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       1.05,
				StateOfMatter: setup.SolidState,
				Elements: []setup.ElementCount{
					{Symbol: "H", NAtoms: 8},
					{Symbol: "C", NAtoms: 8},
				},
				Properties: props,
			}},
		}
	})
}

// PMMA returns the inner fiber cladding acrylic.
func (m *MaterialRegistry) PMMA() (*setup.Material, error) {
	return m.material("pmma", func() *setup.Material {
		props := setup.Properties{}
		props.AddVec("RINDEX",
			energiesFromNM([]float64{650, 128}),
			[]float64{1.49, 1.49})

		return &setup.Material{
			Name: "pmma",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       1.2,
				StateOfMatter: setup.SolidState,
				Elements: []setup.ElementCount{
					{Symbol: "H", NAtoms: 8},
					{Symbol: "C", NAtoms: 5},
					{Symbol: "O", NAtoms: 2},
				},
				Properties: props,
			}},
		}
	})
}

// PMMAOuter returns the outer fiber cladding acrylic.
func (m *MaterialRegistry) PMMAOuter() (*setup.Material, error) {
	return m.material("pmma_cl2", func() *setup.Material {
		props := setup.Properties{}
		props.AddVec("RINDEX",
			energiesFromNM([]float64{650, 128}),
			[]float64{1.42, 1.42})

		return &setup.Material{
			Name: "pmma_cl2",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       1.2,
				StateOfMatter: setup.SolidState,
				Elements: []setup.ElementCount{
					{Symbol: "H", NAtoms: 8},
					{Symbol: "C", NAtoms: 5},
					{Symbol: "O", NAtoms: 2},
				},
				Properties: props,
			}},
		}
	})
}

// PEN returns the PEN scintillator plate material.
func (m *MaterialRegistry) PEN() (*setup.Material, error) {
	return m.material("pen", func() *setup.Material {
		props := setup.Properties{}
		props.AddVec("RINDEX",
			energiesFromNM([]float64{650, 128}),
			[]float64{1.51, 1.51})
		props.AddVec("WLSCOMPONENT",
			energiesFromNM([]float64{600, 550, 500, 470, 450, 430}),
			[]float64{0.05, 0.35, 0.85, 1.0, 0.6, 0.05})
		props.AddConst("SCINTILLATIONYIELD", 5000)

		return &setup.Material{
			Name: "pen",
			Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
				Density:       1.30,
				StateOfMatter: setup.SolidState,
				Temperature:   88.15,
				Elements: []setup.ElementCount{
					{Symbol: "C", NAtoms: 14},
					{Symbol: "H", NAtoms: 10},
					{Symbol: "O", NAtoms: 4},
				},
				Properties: props,
			}},
		}
	})
}
