package test

import (
	"encoding/json"
	"reflect"
	"testing"
)

// MarshallingCases contains test cases for Marshalling Test functions.
type MarshallingCases []struct {
	Model interface{}

	// JSON which is compared to json.Marshal result.
	// JSON can be in any valid format. Indents and white spaces are ignored.
	JSON string
}

// Marshal run testCases on json.Marshal function.
func Marshal(t *testing.T, testCases MarshallingCases) {
	t.Helper()
	for _, tc := range testCases {
		result, err := json.Marshal(tc.Model)
		if err != nil {
			t.Errorf("Marshal failed with Error[%v]", err)
		}
		if diff := DiffJSON(t, []byte(tc.JSON), result); diff != "" {
			t.Errorf("actual != expected\n%s", diff)
		}
	}
}

// Unmarshal run test cases on json.Unmarshal function.
func Unmarshal(t *testing.T, testCases MarshallingCases) {
	t.Helper()
	for _, tc := range testCases {
		rawInput := []byte(tc.JSON)

		objType := reflect.TypeOf(tc.Model).Elem()
		result := reflect.New(objType).Interface()
		if err := json.Unmarshal(rawInput, &result); err != nil {
			t.Errorf("Unmarshal failed with Error[%v]", err)
		}

		if diff := DiffModel(t, tc.Model, result); diff != "" {
			t.Errorf("actual != expected\n%s", diff)
		}
	}
}

// UnmarshalMarshalled first Marshal tc.Model, then Unmarshal result from previous operation.
func UnmarshalMarshalled(t *testing.T, testCases MarshallingCases) {
	t.Helper()
	for _, tc := range testCases {
		marshaled, marshallErr := json.Marshal(tc.Model)
		if marshallErr != nil {
			t.Errorf("Marshal failed with Error[%v]", marshallErr)
		}

		objType := reflect.TypeOf(tc.Model).Elem()
		unmarshaled := reflect.New(objType).Interface()
		if err := json.Unmarshal(marshaled, &unmarshaled); err != nil {
			t.Errorf("Unmarshal failed with Error[%v]", err)
		}

		if diff := DiffModel(t, tc.Model, unmarshaled); diff != "" {
			t.Errorf("actual != expected\n%s", diff)
		}
	}
}
