package setup

// ConstProperty is a scalar optical property (eg. SIGMA_ALPHA).
type ConstProperty struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// VecProperty is an optical property tabulated against photon energy.
// Energies are in eV, sorted ascending.
type VecProperty struct {
	Name     string    `json:"name"`
	Energies []float64 `json:"energies"`
	Values   []float64 `json:"values"`
}

// Properties holds the optical properties attached to a material or an
// optical surface.
type Properties struct {
	Const []ConstProperty `json:"const,omitempty"`
	Vec   []VecProperty   `json:"vec,omitempty"`
}

// AddConst appends a scalar property.
func (p *Properties) AddConst(name string, value float64) {
	p.Const = append(p.Const, ConstProperty{Name: name, Value: value})
}

// AddVec appends a tabulated property.
func (p *Properties) AddVec(name string, energies, values []float64) {
	p.Vec = append(p.Vec, VecProperty{Name: name, Energies: energies, Values: values})
}

// Empty reports whether no properties are attached.
func (p Properties) Empty() bool {
	return len(p.Const) == 0 && len(p.Vec) == 0
}
