package gdml

import (
	"fmt"
	"strconv"

	"github.com/legend-exp/geom-scarf/format"
	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/setup"
)

// Convert builds a GDML document from the registry. The registry world
// volume must be set.
func Convert(reg *setup.Registry) (*Document, error) {
	if reg.World() == nil {
		return nil, fmt.Errorf("gdml: registry has no world volume")
	}

	conv := converter{
		reg: reg,
		doc: &Document{
			XSI:            "http://www.w3.org/2001/XMLSchema-instance",
			SchemaLocation: schemaLocation,
		},
	}

	if err := conv.convertMaterials(); err != nil {
		return nil, err
	}
	if err := conv.convertSolids(); err != nil {
		return nil, err
	}
	conv.convertSurfaces()
	if err := conv.convertStructure(); err != nil {
		return nil, err
	}

	conv.doc.Setup = Setup{
		Name:    "Default",
		Version: "1.0",
		World:   Ref{Ref: reg.World().Name},
	}
	return conv.doc, nil
}

type converter struct {
	reg *setup.Registry
	doc *Document
}

// addMatrices hoists properties into define matrices and returns the
// property references for the owning material or surface. Tabulated
// properties become two-column energy/value matrices, scalar properties
// single-value matrices.
func (c *converter) addMatrices(owner string, props setup.Properties) []Property {
	var refs []Property
	for _, p := range props.Const {
		name := owner + "_" + p.Name
		c.doc.Define.Matrices = append(c.doc.Define.Matrices, Matrix{
			Name:   name,
			ColDim: 1,
			Values: format.Float(p.Value),
		})
		refs = append(refs, Property{Name: p.Name, Ref: name})
	}
	for _, p := range props.Vec {
		name := owner + "_" + p.Name
		values := make([]float64, 0, 2*len(p.Energies))
		for i, energy := range p.Energies {
			values = append(values, energy, p.Values[i])
		}
		c.doc.Define.Matrices = append(c.doc.Define.Matrices, Matrix{
			Name:   name,
			ColDim: 2,
			Values: format.Floats(values),
		})
		refs = append(refs, Property{Name: p.Name, Ref: name})
	}
	return refs
}

func (c *converter) addPosition(name string, p geometry.Point) Ref {
	c.doc.Define.Positions = append(c.doc.Define.Positions, Position{
		Name: name,
		X:    format.Float(p.X),
		Y:    format.Float(p.Y),
		Z:    format.Float(p.Z),
		Unit: "mm",
	})
	return Ref{Ref: name}
}

func (c *converter) addRotation(name string, r geometry.Rotation) Ref {
	c.doc.Define.Rotations = append(c.doc.Define.Rotations, Rotation{
		Name: name,
		X:    format.Float(r.X),
		Y:    format.Float(r.Y),
		Z:    format.Float(r.Z),
		Unit: "rad",
	})
	return Ref{Ref: name}
}

// convertMaterials emits compound materials and the elements they use.
// Predefined NIST materials are referenced by name from volumes and need
// no definition.
func (c *converter) convertMaterials() error {
	emittedElements := map[string]bool{}

	for _, material := range c.reg.Materials() {
		compound, ok := derefSpecs(material.Specs.MaterialType).(setup.MaterialCompound)
		if !ok {
			continue
		}

		for _, count := range compound.Elements {
			if emittedElements[count.Symbol] {
				continue
			}
			element, err := setup.GetElement(count.Symbol)
			if err != nil {
				return fmt.Errorf("gdml: material %q: %w", material.Name, err)
			}
			c.doc.Materials.Elements = append(c.doc.Materials.Elements, Element{
				Name:    element.Name,
				Formula: element.Symbol,
				Z:       element.Z,
				Atom:    Atom{Value: format.Float(element.AtomicMass)},
			})
			emittedElements[count.Symbol] = true
		}

		out := Material{
			Name:    material.Name,
			State:   compound.StateOfMatter.String(),
			Density: Quantity{Value: format.Float(compound.Density), Unit: "g/cm3"},
		}
		if compound.Temperature != 0 {
			out.Temperature = &Quantity{Value: format.Float(compound.Temperature), Unit: "K"}
		}
		if compound.Pressure != 0 {
			out.Pressure = &Quantity{Value: format.Float(compound.Pressure), Unit: "pascal"}
		}
		for _, count := range compound.Elements {
			element, _ := setup.GetElement(count.Symbol)
			out.Composites = append(out.Composites, Composite{N: count.NAtoms, Ref: element.Name})
		}
		out.Properties = c.addMatrices(material.Name, compound.Properties)

		c.doc.Materials.Materials = append(c.doc.Materials.Materials, out)
	}
	return nil
}

func (c *converter) convertSolids() error {
	for _, solid := range c.reg.Solids() {
		entry, err := c.convertSolid(solid)
		if err != nil {
			return err
		}
		c.doc.Solids.Entries = append(c.doc.Solids.Entries, entry)
	}
	return nil
}

// derefGeometry unwraps pointer shapes, so solids built in code and
// solids decoded from JSON convert the same way.
func derefGeometry(g setup.SolidGeometry) setup.SolidGeometry {
	switch shape := g.(type) {
	case *setup.BoxSolid:
		return *shape
	case *setup.TubsSolid:
		return *shape
	case *setup.SphereSolid:
		return *shape
	case *setup.PolyconeSolid:
		return *shape
	case *setup.BooleanSolid:
		return *shape
	}
	return g
}

func (c *converter) convertSolid(solid *setup.Solid) (interface{}, error) {
	switch shape := derefGeometry(solid.Geometry).(type) {
	case setup.BoxSolid:
		return Box{
			Name:  solid.Name,
			X:     format.Float(shape.Size.X),
			Y:     format.Float(shape.Size.Y),
			Z:     format.Float(shape.Size.Z),
			LUnit: "mm",
		}, nil

	case setup.TubsSolid:
		return Tube{
			Name:     solid.Name,
			RMin:     format.Float(shape.RMin),
			RMax:     format.Float(shape.RMax),
			Z:        format.Float(shape.Dz),
			StartPhi: format.Float(shape.SPhi),
			DeltaPhi: format.Float(shape.DPhi),
			LUnit:    "mm",
			AUnit:    "rad",
		}, nil

	case setup.SphereSolid:
		return Sphere{
			Name:       solid.Name,
			RMin:       format.Float(shape.RMin),
			RMax:       format.Float(shape.RMax),
			StartPhi:   format.Float(shape.SPhi),
			DeltaPhi:   format.Float(shape.DPhi),
			StartTheta: format.Float(shape.STheta),
			DeltaTheta: format.Float(shape.DTheta),
			LUnit:      "mm",
			AUnit:      "rad",
		}, nil

	case setup.PolyconeSolid:
		points := make([]RZPoint, shape.Profile.Len())
		for i := range points {
			points[i] = RZPoint{
				R: format.Float(shape.Profile.R[i]),
				Z: format.Float(shape.Profile.Z[i]),
			}
		}
		return GenericPolycone{
			Name:     solid.Name,
			StartPhi: format.Float(shape.SPhi),
			DeltaPhi: format.Float(shape.DPhi),
			LUnit:    "mm",
			AUnit:    "rad",
			RZPoints: points,
		}, nil

	case setup.BooleanSolid:
		if _, ok := c.reg.Solid(shape.First); !ok {
			return nil, fmt.Errorf("gdml: boolean solid %q: unknown operand %q", solid.Name, shape.First)
		}
		if _, ok := c.reg.Solid(shape.Second); !ok {
			return nil, fmt.Errorf("gdml: boolean solid %q: unknown operand %q", solid.Name, shape.Second)
		}
		out := BooleanSolid{
			Name:   solid.Name,
			First:  Ref{Ref: shape.First},
			Second: Ref{Ref: shape.Second},
		}
		switch shape.Operation {
		case setup.Union:
			out.XMLName.Local = "union"
		case setup.Subtraction:
			out.XMLName.Local = "subtraction"
		default:
			return nil, fmt.Errorf("gdml: boolean solid %q: unknown operation %v", solid.Name, shape.Operation)
		}
		if shape.Translation != (geometry.Point{}) {
			ref := c.addPosition(solid.Name+"_pos", shape.Translation)
			out.PositionRef = &ref
		}
		if !shape.Rotation.IsZero() {
			ref := c.addRotation(solid.Name+"_rot", shape.Rotation)
			out.RotationRef = &ref
		}
		return out, nil

	default:
		return nil, fmt.Errorf("gdml: solid %q: unsupported shape %T", solid.Name, solid.Geometry)
	}
}

// convertSurfaces appends optical surface definitions after the shape
// solids.
func (c *converter) convertSurfaces() {
	for _, surface := range c.reg.Surfaces() {
		c.doc.Solids.Entries = append(c.doc.Solids.Entries, OpticalSurface{
			Name:       surface.Name,
			Model:      surface.Model,
			Finish:     surface.Finish,
			Type:       surface.Type,
			Value:      format.Float(surface.Value),
			Properties: c.addMatrices(surface.Name, surface.Properties),
		})
	}
}

// convertStructure emits logical volumes daughters first, so every
// volumeref points at an already defined volume, with the world last.
func (c *converter) convertStructure() error {
	visited := map[string]bool{}
	var visit func(lv *setup.LogicalVolume) error
	visit = func(lv *setup.LogicalVolume) error {
		if visited[lv.Name] {
			return nil
		}
		visited[lv.Name] = true
		for _, daughter := range lv.Daughters {
			if err := visit(daughter.Volume); err != nil {
				return err
			}
		}
		out, err := c.convertVolume(lv)
		if err != nil {
			return err
		}
		c.doc.Structure.Volumes = append(c.doc.Structure.Volumes, out)
		return nil
	}

	world := c.reg.World()
	for _, lv := range c.reg.Volumes() {
		if lv == world {
			continue
		}
		if err := visit(lv); err != nil {
			return err
		}
	}
	if err := visit(world); err != nil {
		return err
	}

	for _, border := range c.reg.BorderSurfaces() {
		c.doc.Structure.BorderSurfaces = append(c.doc.Structure.BorderSurfaces, BorderSurface{
			Name:            border.Name,
			SurfaceProperty: border.Surface.Name,
			PhysVolRefs: []Ref{
				{Ref: border.First.Name},
				{Ref: border.Second.Name},
			},
		})
	}
	return nil
}

func (c *converter) convertVolume(lv *setup.LogicalVolume) (Volume, error) {
	materialRef, err := materialRefName(lv.Material)
	if err != nil {
		return Volume{}, fmt.Errorf("gdml: volume %q: %w", lv.Name, err)
	}

	out := Volume{
		Name:        lv.Name,
		MaterialRef: Ref{Ref: materialRef},
		SolidRef:    Ref{Ref: lv.Solid.Name},
	}

	for _, daughter := range lv.Daughters {
		pv := PhysVol{
			Name:        daughter.Name,
			VolumeRef:   Ref{Ref: daughter.Volume.Name},
			PositionRef: c.addPosition(daughter.Name+"_pos", daughter.Position),
		}
		if !daughter.Rotation.IsZero() {
			ref := c.addRotation(daughter.Name+"_rot", daughter.Rotation)
			pv.RotationRef = &ref
		}
		out.PhysVols = append(out.PhysVols, pv)
	}

	if lv.Detector != nil {
		out.Auxiliary = append(out.Auxiliary, Auxiliary{
			AuxType:  "RMG_detector",
			AuxValue: lv.Detector.Type,
			Children: []Auxiliary{
				{AuxType: "det_uid", AuxValue: strconv.Itoa(lv.Detector.UID)},
			},
		})
	}
	if lv.Color != nil {
		out.Auxiliary = append(out.Auxiliary, Auxiliary{
			AuxType:  "color",
			AuxValue: colorHex(*lv.Color),
		})
	}
	return out, nil
}

// derefSpecs unwraps pointer material definitions, the JSON decoded form.
func derefSpecs(m setup.MaterialType) setup.MaterialType {
	switch specs := m.(type) {
	case *setup.MaterialPredefined:
		return *specs
	case *setup.MaterialCompound:
		return *specs
	}
	return m
}

// materialRefName resolves the name a volume materialref points at.
// Predefined materials are referenced by their NIST identifier.
func materialRefName(material *setup.Material) (string, error) {
	switch specs := derefSpecs(material.Specs.MaterialType).(type) {
	case setup.MaterialPredefined:
		return specs.PredefinedID, nil
	case setup.MaterialCompound:
		return material.Name, nil
	default:
		return "", fmt.Errorf("material %q has unsupported specs %T", material.Name, material.Specs.MaterialType)
	}
}

// colorHex renders a display color as #rrggbbaa.
func colorHex(c setup.ColorRGBA) string {
	channel := func(v float64) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x",
		channel(c[0]), channel(c[1]), channel(c[2]), channel(c[3]))
}
