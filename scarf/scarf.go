// Package scarf builds the SCARF test stand geometry: the cryostat with
// its liquid argon volume, HPGe detector strings, the wavelength-shifting
// fiber shroud, the calibration source and the surrounding cavern.
//
// Positions in the configuration are offsets from the liquid argon center
// in mm. Each configuration entry maps to one constructed volume placed
// once at construction time.
package scarf

import (
	"math"

	conf "github.com/legend-exp/geom-scarf/config"
	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/setup"
)

var log = conf.NamedLogger("scarf")

// nslice used for all revolution solids, matching the CAD export
// granularity of half a degree.
const defaultNSlice = 720

// placePV places a logical volume inside a mother at a z offset.
func placePV(name string, volume, mother *setup.LogicalVolume, zPos float64, reg *setup.Registry) (*setup.PhysicalVolume, error) {
	pv := &setup.PhysicalVolume{
		Name:     name,
		Volume:   volume,
		Mother:   mother,
		Position: geometry.Point{X: 0, Y: 0, Z: zPos},
	}
	if err := reg.Place(pv); err != nil {
		return nil, err
	}
	return pv, nil
}

// addPolycone registers a generic polycone solid and its logical volume.
func addPolycone(
	name string,
	profile geometry.Profile,
	material *setup.Material,
	color setup.ColorRGBA,
	reg *setup.Registry,
) (*setup.LogicalVolume, error) {
	solid := &setup.Solid{
		Name: name,
		Geometry: setup.PolyconeSolid{
			SPhi:    0,
			DPhi:    2 * math.Pi,
			Profile: profile,
			NSlice:  defaultNSlice,
		},
	}
	if err := reg.AddSolid(solid); err != nil {
		return nil, err
	}

	volume := &setup.LogicalVolume{
		Name:     name,
		Solid:    solid,
		Material: material,
		Color:    &color,
	}
	if err := reg.AddVolume(volume); err != nil {
		return nil, err
	}
	return volume, nil
}

// addTubs registers a tube solid and its logical volume.
func addTubs(
	name string,
	tubs setup.TubsSolid,
	material *setup.Material,
	reg *setup.Registry,
) (*setup.LogicalVolume, error) {
	solid := &setup.Solid{Name: name, Geometry: tubs}
	if err := reg.AddSolid(solid); err != nil {
		return nil, err
	}

	volume := &setup.LogicalVolume{
		Name:     name,
		Solid:    solid,
		Material: material,
	}
	if err := reg.AddVolume(volume); err != nil {
		return nil, err
	}
	return volume, nil
}
