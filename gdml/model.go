// Package gdml serializes a setup.Registry to the Geometry Description
// Markup Language, the XML interchange format consumed by the downstream
// simulation.
package gdml

import "encoding/xml"

const schemaLocation = "http://service-spi.web.cern.ch/service-spi/app/releases/GDML/schema/gdml.xsd"

// Document is the GDML file root.
type Document struct {
	XMLName        xml.Name `xml:"gdml"`
	XSI            string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:noNamespaceSchemaLocation,attr"`

	Define    Define    `xml:"define"`
	Materials Materials `xml:"materials"`
	Solids    Solids    `xml:"solids"`
	Structure Structure `xml:"structure"`
	Setup     Setup     `xml:"setup"`
}

// Define holds the constants referenced from the other sections.
type Define struct {
	Matrices  []Matrix   `xml:"matrix"`
	Positions []Position `xml:"position"`
	Rotations []Rotation `xml:"rotation"`
}

// Matrix is a tabulated property; properties use two columns
// (photon energy, value), scalar properties one.
type Matrix struct {
	Name   string `xml:"name,attr"`
	ColDim int    `xml:"coldim,attr"`
	Values string `xml:"values,attr"`
}

// Position is a placement translation in mm.
type Position struct {
	Name string `xml:"name,attr"`
	X    string `xml:"x,attr"`
	Y    string `xml:"y,attr"`
	Z    string `xml:"z,attr"`
	Unit string `xml:"unit,attr"`
}

// Rotation is a placement rotation in rad.
type Rotation struct {
	Name string `xml:"name,attr"`
	X    string `xml:"x,attr"`
	Y    string `xml:"y,attr"`
	Z    string `xml:"z,attr"`
	Unit string `xml:"unit,attr"`
}

// Materials section.
type Materials struct {
	Elements  []Element  `xml:"element"`
	Materials []Material `xml:"material"`
}

// Element is a chemical element definition.
type Element struct {
	Name    string `xml:"name,attr"`
	Formula string `xml:"formula,attr"`
	Z       int    `xml:"Z,attr"`
	Atom    Atom   `xml:"atom"`
}

// Atom carries the atomic mass in g/mol.
type Atom struct {
	Value string `xml:"value,attr"`
}

// Material is a compound material definition. Predefined NIST materials
// are referenced by name from volumes and have no definition here.
type Material struct {
	Name string `xml:"name,attr"`

	State string `xml:"state,attr,omitempty"`

	Temperature *Quantity `xml:"T,omitempty"`
	Pressure    *Quantity `xml:"P,omitempty"`

	Density    Quantity    `xml:"D"`
	Composites []Composite `xml:"composite"`
	Properties []Property  `xml:"property"`
}

// Quantity is a value with a unit attribute.
type Quantity struct {
	Value string `xml:"value,attr"`
	Unit  string `xml:"unit,attr,omitempty"`
}

// Composite references an element with an atom count.
type Composite struct {
	N   int    `xml:"n,attr"`
	Ref string `xml:"ref,attr"`
}

// Property references a define matrix.
type Property struct {
	Name string `xml:"name,attr"`
	Ref  string `xml:"ref,attr"`
}

// Solids section.
type Solids struct {
	Entries []interface{}
}

// MarshalXML emits the solid entries in registry order, preserving the
// heterogeneous element names.
func (s Solids) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, entry := range s.Entries {
		if err := e.Encode(entry); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Box solid, full widths.
type Box struct {
	XMLName xml.Name `xml:"box"`
	Name    string   `xml:"name,attr"`
	X       string   `xml:"x,attr"`
	Y       string   `xml:"y,attr"`
	Z       string   `xml:"z,attr"`
	LUnit   string   `xml:"lunit,attr"`
}

// Tube solid, full height.
type Tube struct {
	XMLName  xml.Name `xml:"tube"`
	Name     string   `xml:"name,attr"`
	RMin     string   `xml:"rmin,attr"`
	RMax     string   `xml:"rmax,attr"`
	Z        string   `xml:"z,attr"`
	StartPhi string   `xml:"startphi,attr"`
	DeltaPhi string   `xml:"deltaphi,attr"`
	LUnit    string   `xml:"lunit,attr"`
	AUnit    string   `xml:"aunit,attr"`
}

// Sphere shell section solid.
type Sphere struct {
	XMLName    xml.Name `xml:"sphere"`
	Name       string   `xml:"name,attr"`
	RMin       string   `xml:"rmin,attr"`
	RMax       string   `xml:"rmax,attr"`
	StartPhi   string   `xml:"startphi,attr"`
	DeltaPhi   string   `xml:"deltaphi,attr"`
	StartTheta string   `xml:"starttheta,attr"`
	DeltaTheta string   `xml:"deltatheta,attr"`
	LUnit      string   `xml:"lunit,attr"`
	AUnit      string   `xml:"aunit,attr"`
}

// GenericPolycone solid of revolution.
type GenericPolycone struct {
	XMLName  xml.Name  `xml:"genericPolycone"`
	Name     string    `xml:"name,attr"`
	StartPhi string    `xml:"startphi,attr"`
	DeltaPhi string    `xml:"deltaphi,attr"`
	LUnit    string    `xml:"lunit,attr"`
	AUnit    string    `xml:"aunit,attr"`
	RZPoints []RZPoint `xml:"rzpoint"`
}

// RZPoint is one profile vertex.
type RZPoint struct {
	R string `xml:"r,attr"`
	Z string `xml:"z,attr"`
}

// BooleanSolid is a union or subtraction; the element name carries the
// operation.
type BooleanSolid struct {
	XMLName     xml.Name
	Name        string `xml:"name,attr"`
	First       Ref    `xml:"first"`
	Second      Ref    `xml:"second"`
	PositionRef *Ref   `xml:"positionref,omitempty"`
	RotationRef *Ref   `xml:"rotationref,omitempty"`
}

// Ref references another document entity by name.
type Ref struct {
	Ref string `xml:"ref,attr"`
}

// OpticalSurface definition, emitted within the solids section.
type OpticalSurface struct {
	XMLName    xml.Name   `xml:"opticalsurface"`
	Name       string     `xml:"name,attr"`
	Model      string     `xml:"model,attr"`
	Finish     string     `xml:"finish,attr"`
	Type       string     `xml:"type,attr"`
	Value      string     `xml:"value,attr"`
	Properties []Property `xml:"property"`
}

// Structure section.
type Structure struct {
	Volumes        []Volume        `xml:"volume"`
	BorderSurfaces []BorderSurface `xml:"bordersurface"`
}

// Volume is a logical volume with its placements.
type Volume struct {
	Name        string      `xml:"name,attr"`
	MaterialRef Ref         `xml:"materialref"`
	SolidRef    Ref         `xml:"solidref"`
	PhysVols    []PhysVol   `xml:"physvol"`
	Auxiliary   []Auxiliary `xml:"auxiliary"`
}

// PhysVol is one placement of a volume inside its mother.
type PhysVol struct {
	Name        string `xml:"name,attr"`
	VolumeRef   Ref    `xml:"volumeref"`
	PositionRef Ref    `xml:"positionref"`
	RotationRef *Ref   `xml:"rotationref,omitempty"`
}

// Auxiliary carries simulation hints (active detectors, display colors).
type Auxiliary struct {
	AuxType  string      `xml:"auxtype,attr"`
	AuxValue string      `xml:"auxvalue,attr"`
	Children []Auxiliary `xml:"auxiliary,omitempty"`
}

// BorderSurface attaches an optical surface to a volume boundary.
type BorderSurface struct {
	Name            string `xml:"name,attr"`
	SurfaceProperty string `xml:"surfaceproperty,attr"`
	PhysVolRefs     []Ref  `xml:"physvolref"`
}

// Setup selects the world volume.
type Setup struct {
	Name    string `xml:"name,attr"`
	Version string `xml:"version,attr"`
	World   Ref    `xml:"world"`
}
