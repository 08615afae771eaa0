package setup

import "fmt"

// Element describe one chemical element used in compound materials.
type Element struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name"`
	Z          int     `json:"z"`
	AtomicMass float64 `json:"atomicMass"`
}

// Elements used by the SCARF geometry materials. Atomic masses in g/mol.
var elementTable = map[string]Element{
	"H":  {Symbol: "H", Name: "hydrogen", Z: 1, AtomicMass: 1.008},
	"C":  {Symbol: "C", Name: "carbon", Z: 6, AtomicMass: 12.011},
	"N":  {Symbol: "N", Name: "nitrogen", Z: 7, AtomicMass: 14.007},
	"O":  {Symbol: "O", Name: "oxygen", Z: 8, AtomicMass: 15.999},
	"Si": {Symbol: "Si", Name: "silicon", Z: 14, AtomicMass: 28.085},
	"Ar": {Symbol: "Ar", Name: "argon", Z: 18, AtomicMass: 39.948},
	"Cr": {Symbol: "Cr", Name: "chromium", Z: 24, AtomicMass: 51.996},
	"Mn": {Symbol: "Mn", Name: "manganese", Z: 25, AtomicMass: 54.938},
	"Fe": {Symbol: "Fe", Name: "iron", Z: 26, AtomicMass: 55.845},
	"Ni": {Symbol: "Ni", Name: "nickel", Z: 28, AtomicMass: 58.693},
	"Cu": {Symbol: "Cu", Name: "copper", Z: 29, AtomicMass: 63.546},
	"Ge": {Symbol: "Ge", Name: "germanium", Z: 32, AtomicMass: 72.63},
	"Pb": {Symbol: "Pb", Name: "lead", Z: 82, AtomicMass: 207.2},
}

// GetElement returns the element for a symbol.
func GetElement(symbol string) (Element, error) {
	element, ok := elementTable[symbol]
	if !ok {
		return Element{}, fmt.Errorf("unknown element symbol %q", symbol)
	}
	return element, nil
}
