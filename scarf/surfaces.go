package scarf

import "github.com/legend-exp/geom-scarf/setup"

// SurfaceToSteel returns the diffuse steel surface used for the inner
// cryostat wall. The reflectivity is set to that of copper, which should
// be similar.
func (m *MaterialRegistry) SurfaceToSteel() (*setup.OpticalSurface, error) {
	return m.surface("surface_to_steel", func() *setup.OpticalSurface {
		surface := &setup.OpticalSurface{
			Name:   "surface_to_steel",
			Model:  "unified",
			Finish: "ground",
			Type:   "dielectric_metal",
			Value:  0.5,
		}
		surface.Properties.AddVec("REFLECTIVITY",
			energiesFromNM([]float64{650, 550, 450, 300, 200, 128}),
			[]float64{0.9, 0.85, 0.6, 0.35, 0.3, 0.25})
		return surface
	})
}

// SurfaceToGermanium returns the germanium crystal surface.
func (m *MaterialRegistry) SurfaceToGermanium() (*setup.OpticalSurface, error) {
	return m.surface("surface_to_germanium", func() *setup.OpticalSurface {
		surface := &setup.OpticalSurface{
			Name:   "surface_to_germanium",
			Model:  "unified",
			Finish: "ground",
			Type:   "dielectric_metal",
			Value:  0.3,
		}
		surface.Properties.AddVec("REFLECTIVITY",
			energiesFromNM([]float64{650, 400, 200, 128}),
			[]float64{0.45, 0.4, 0.35, 0.3})
		return surface
	})
}

// SurfaceLArToTPB returns the rough argon-to-wavelength-shifter surface.
func (m *MaterialRegistry) SurfaceLArToTPB() (*setup.OpticalSurface, error) {
	return m.surface("surface_lar_to_tpb", func() *setup.OpticalSurface {
		surface := &setup.OpticalSurface{
			Name:   "surface_lar_to_tpb",
			Model:  "unified",
			Finish: "ground",
			Type:   "dielectric_dielectric",
			// rad. converted from 0.5, probably a GLISUR smoothness
			// parameter, in MaGe.
			Value: 0.3,
		}
		surface.Properties.AddConst("SIGMA_ALPHA", 0.2)
		surface.Properties.AddConst("DIFFUSELOBECONSTANT", 0.7)
		surface.Properties.AddConst("SPECULARLOBECONSTANT", 0.2)
		surface.Properties.AddConst("SPECULARSPIKECONSTANT", 0.1)
		surface.Properties.AddConst("BACKSCATTERCONSTANT", 0.0)
		return surface
	})
}

// SurfaceToFiberCore returns the absorbing surface that makes the fiber
// core act as a sensitive detector.
func (m *MaterialRegistry) SurfaceToFiberCore() (*setup.OpticalSurface, error) {
	return m.surface("surface_to_fiber_core", func() *setup.OpticalSurface {
		surface := &setup.OpticalSurface{
			Name:   "surface_to_fiber_core",
			Model:  "unified",
			Finish: "ground",
			Type:   "dielectric_metal",
			Value:  0.05,
		}
		wavelengths := []float64{670, 595, 525, 505, 435, 400, 350, 310, 280, 100}
		efficiency := make([]float64, len(wavelengths))
		reflectivity := make([]float64, len(wavelengths))
		for i := range wavelengths {
			efficiency[i] = 1
		}
		surface.Properties.AddVec("EFFICIENCY", energiesFromNM(wavelengths), efficiency)
		surface.Properties.AddVec("REFLECTIVITY", energiesFromNM(wavelengths), reflectivity)
		return surface
	})
}

// SurfaceToSiPM returns the photon detection surface of the SiPMs.
func (m *MaterialRegistry) SurfaceToSiPM() (*setup.OpticalSurface, error) {
	return m.surface("surface_lar_to_sipm", func() *setup.OpticalSurface {
		surface := &setup.OpticalSurface{
			Name:   "surface_lar_to_sipm",
			Model:  "unified",
			Finish: "polished",
			Type:   "dielectric_metal",
			Value:  0,
		}
		// fully sensitive between 400 and 1000 nm
		energies := []float64{0.5, 1.24, 3.10, 6.0}
		surface.Properties.AddVec("EFFICIENCY", energies, []float64{0, 1, 1, 0})
		surface.Properties.AddVec("REFLECTIVITY", energies, []float64{0, 0, 0, 0})
		return surface
	})
}
