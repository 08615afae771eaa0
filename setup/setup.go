// Package setup implement setup.Registry, which contains a full geometry
// description: solids, materials, logical and physical volumes and optical
// surfaces. The registry is the in-memory form of the geometry later
// serialized to GDML.
package setup

import "fmt"

// Registry contains all geometry description data for one construction run.
//
// All collections are keyed by name and preserve insertion order, so a
// registry always serializes the same way. Names must be unique within
// their collection.
type Registry struct {
	solids     []*Solid
	materials  []*Material
	volumes    []*LogicalVolume
	placements []*PhysicalVolume
	surfaces   []*OpticalSurface
	borders    []*BorderSurface

	solidByName     map[string]*Solid
	materialByName  map[string]*Material
	volumeByName    map[string]*LogicalVolume
	placementByName map[string]*PhysicalVolume
	surfaceByName   map[string]*OpticalSurface

	world *LogicalVolume
}

// NewRegistry constructor.
func NewRegistry() *Registry {
	return &Registry{
		solidByName:     map[string]*Solid{},
		materialByName:  map[string]*Material{},
		volumeByName:    map[string]*LogicalVolume{},
		placementByName: map[string]*PhysicalVolume{},
		surfaceByName:   map[string]*OpticalSurface{},
	}
}

// AddSolid validates the solid and registers it under its name.
func (r *Registry) AddSolid(solid *Solid) error {
	if err := solid.Validate(); err != nil {
		return SolidError(solid.Name, err.Error())
	}
	if _, exists := r.solidByName[solid.Name]; exists {
		return SolidError(solid.Name, "duplicate solid name")
	}
	r.solids = append(r.solids, solid)
	r.solidByName[solid.Name] = solid
	return nil
}

// AddMaterial registers the material under its name.
func (r *Registry) AddMaterial(material *Material) error {
	if _, exists := r.materialByName[material.Name]; exists {
		return MaterialError(material.Name, "duplicate material name")
	}
	r.materials = append(r.materials, material)
	r.materialByName[material.Name] = material
	return nil
}

// AddVolume registers the logical volume under its name.
func (r *Registry) AddVolume(volume *LogicalVolume) error {
	if volume.Solid == nil {
		return VolumeError(volume.Name, "logical volume has no solid")
	}
	if volume.Material == nil {
		return VolumeError(volume.Name, "logical volume has no material")
	}
	if _, exists := r.volumeByName[volume.Name]; exists {
		return VolumeError(volume.Name, "duplicate volume name")
	}
	r.volumes = append(r.volumes, volume)
	r.volumeByName[volume.Name] = volume
	return nil
}

// Place registers a physical volume and attaches it to its mother.
func (r *Registry) Place(placement *PhysicalVolume) error {
	if placement.Volume == nil {
		return PlacementError(placement.Name, "placement has no volume")
	}
	if placement.Mother == nil {
		return PlacementError(placement.Name, "placement has no mother volume")
	}
	if _, exists := r.placementByName[placement.Name]; exists {
		return PlacementError(placement.Name, "duplicate placement name")
	}
	r.placements = append(r.placements, placement)
	r.placementByName[placement.Name] = placement
	placement.Mother.Daughters = append(placement.Mother.Daughters, placement)
	return nil
}

// AddSurface registers an optical surface under its name.
func (r *Registry) AddSurface(surface *OpticalSurface) error {
	if _, exists := r.surfaceByName[surface.Name]; exists {
		return SurfaceError(surface.Name, "duplicate surface name")
	}
	r.surfaces = append(r.surfaces, surface)
	r.surfaceByName[surface.Name] = surface
	return nil
}

// AddBorderSurface registers a border surface between two placements.
func (r *Registry) AddBorderSurface(border *BorderSurface) error {
	if border.First == nil || border.Second == nil {
		return SurfaceError(border.Name, "border surface needs two physical volumes")
	}
	if border.Surface == nil {
		return SurfaceError(border.Name, "border surface has no optical surface")
	}
	r.borders = append(r.borders, border)
	return nil
}

// SetWorld marks the registry world volume.
func (r *Registry) SetWorld(volume *LogicalVolume) error {
	if _, exists := r.volumeByName[volume.Name]; !exists {
		return fmt.Errorf("world volume %q is not registered", volume.Name)
	}
	r.world = volume
	return nil
}

// World returns the world volume, or nil if none was set.
func (r *Registry) World() *LogicalVolume { return r.world }

// Solid returns the named solid.
func (r *Registry) Solid(name string) (*Solid, bool) {
	s, ok := r.solidByName[name]
	return s, ok
}

// Material returns the named material.
func (r *Registry) Material(name string) (*Material, bool) {
	m, ok := r.materialByName[name]
	return m, ok
}

// Volume returns the named logical volume.
func (r *Registry) Volume(name string) (*LogicalVolume, bool) {
	v, ok := r.volumeByName[name]
	return v, ok
}

// Placement returns the named physical volume.
func (r *Registry) Placement(name string) (*PhysicalVolume, bool) {
	p, ok := r.placementByName[name]
	return p, ok
}

// Solids returns all solids in insertion order.
func (r *Registry) Solids() []*Solid { return r.solids }

// Materials returns all materials in insertion order.
func (r *Registry) Materials() []*Material { return r.materials }

// Volumes returns all logical volumes in insertion order.
func (r *Registry) Volumes() []*LogicalVolume { return r.volumes }

// Placements returns all physical volumes in insertion order.
func (r *Registry) Placements() []*PhysicalVolume { return r.placements }

// Surfaces returns all optical surfaces in insertion order.
func (r *Registry) Surfaces() []*OpticalSurface { return r.surfaces }

// BorderSurfaces returns all border surfaces in insertion order.
func (r *Registry) BorderSurfaces() []*BorderSurface { return r.borders }
