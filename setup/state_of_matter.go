package setup

import (
	"encoding/json"
	"fmt"
)

// StateOfMatter represent state of matter of a material.
type StateOfMatter int

const (
	// UndefinedStateOfMatter - state of matter is not serialized.
	UndefinedStateOfMatter StateOfMatter = iota
	// SolidState solid state of matter.
	SolidState
	// Liquid state of matter.
	Liquid
	// Gas state of matter.
	Gas
)

var mapStateOfMatterToJSON = map[StateOfMatter]string{
	SolidState: "solid",
	Liquid:     "liquid",
	Gas:        "gas",
}

var mapJSONToStateOfMatter = map[string]StateOfMatter{
	"solid":  SolidState,
	"liquid": Liquid,
	"gas":    Gas,
}

// String implements fmt.Stringer, using the GDML state attribute names.
func (s StateOfMatter) String() string {
	return mapStateOfMatterToJSON[s]
}

// MarshalJSON custom Marshal function.
func (s StateOfMatter) MarshalJSON() ([]byte, error) {
	if s == UndefinedStateOfMatter {
		return json.Marshal("")
	}
	str, ok := mapStateOfMatterToJSON[s]
	if !ok {
		return nil, fmt.Errorf("StateOfMatter.MarshalJSON: can not convert %v to string", int(s))
	}
	return json.Marshal(str)
}

// UnmarshalJSON custom Unmarshal function.
func (s *StateOfMatter) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if str == "" {
		*s = UndefinedStateOfMatter
		return nil
	}
	state, ok := mapJSONToStateOfMatter[str]
	if !ok {
		return fmt.Errorf("StateOfMatter.UnmarshalJSON: can not convert %q to StateOfMatter", str)
	}
	*s = state
	return nil
}
