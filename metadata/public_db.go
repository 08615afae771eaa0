package metadata

// PublicDB is the limited public fallback database. It synthesizes a
// record for any requested detector from a per-kind sample crystal,
// keeping the requested name. The detector kind is recognized from the
// first letter of the name, following the experiment naming scheme.
//
// Geometries built from it are approximations for development and
// testing and must never be mistaken for the real hardware description,
// which is why construction from public data only requires an explicit
// opt-in.
type PublicDB struct{}

// NewPublicDB constructor.
func NewPublicDB() *PublicDB { return &PublicDB{} }

var kindByNamePrefix = map[byte]DetectorKind{
	'V': KindICPC,
	'B': KindBeGe,
	'C': KindCoax,
	'P': KindPPC,
}

// Sample crystals per detector kind, with dimensions representative of the
// public test data.
var publicSamples = map[DetectorKind]CrystalGeometry{
	KindICPC: {
		HeightInMM: 98.3,
		RadiusInMM: 38.25,
		Groove: Groove{
			DepthInMM:  2.0,
			RadiusInMM: GrooveRadius{Outer: 13.5, Inner: 11.5},
		},
		PPContact:          Contact{RadiusInMM: 7.5, DepthInMM: 2.0},
		Taper:              Tapers{Top: Taper{AngleInDeg: 45, HeightInMM: 5}},
		BoreholeDepthInMM:  55.0,
		BoreholeRadiusInMM: 5.25,
	},
	KindBeGe: {
		HeightInMM: 29.46,
		RadiusInMM: 36.98,
		Groove: Groove{
			DepthInMM:  2.0,
			RadiusInMM: GrooveRadius{Outer: 10.5, Inner: 7.5},
		},
		PPContact: Contact{RadiusInMM: 7.5, DepthInMM: 0},
	},
	KindCoax: {
		HeightInMM: 84.0,
		RadiusInMM: 38.75,
		Groove: Groove{
			DepthInMM:  2.0,
			RadiusInMM: GrooveRadius{Outer: 20.0, Inner: 17.0},
		},
		BoreholeDepthInMM:  73.0,
		BoreholeRadiusInMM: 6.75,
	},
	KindPPC: {
		HeightInMM: 50.5,
		RadiusInMM: 34.7,
		PPContact:  Contact{RadiusInMM: 1.7, DepthInMM: 0},
	},
}

// Detector implements DB.
func (db *PublicDB) Detector(name string) (HPGe, error) {
	if name == "" {
		return HPGe{}, NotFoundError{Name: name}
	}
	kind, ok := kindByNamePrefix[name[0]]
	if !ok {
		return HPGe{}, NotFoundError{Name: name}
	}

	sample := publicSamples[kind]
	return HPGe{
		Name: name,
		Kind: kind,
		Production: Production{
			Enrichment: Enrichment{Val: 0.9},
			Order:      0,
			Slice:      "A",
		},
		Geometry: sample,
	}, nil
}
