// Package utils contains marshalling helpers shared by the setup model.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypeBasedUnmarshallJSON unmarshal data into a concrete type selected by
// the "type" discriminator field, using the provided type -> constructor
// mapping.
func TypeBasedUnmarshallJSON(
	data []byte, typeMapping map[string]func() interface{},
) (interface{}, error) {
	var raw struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	create, knownType := typeMapping[raw.Type]
	if !knownType {
		return nil, fmt.Errorf("unknown type %q", raw.Type)
	}
	value := create()
	if err := json.Unmarshal(data, value); err != nil {
		return nil, err
	}
	reflectValue := reflect.ValueOf(value)
	if reflectValue.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("invalid input type")
	}
	return reflectValue.Elem().Interface(), nil
}
