// Package test contains testing utils functions.
package test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sergi/go-diff/diffmatchpatch"
	diff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

func init() {
	spew.Config.DisableMethods = true
	spew.Config.DisableCapacities = true
	spew.Config.DisablePointerMethods = true
	spew.Config.DisablePointerAddresses = true
}

var jsonFormatterConfig = formatter.AsciiFormatterConfig{
	Coloring:       true,
	ShowArrayIndex: true,
}

// DiffJSON compares two JSON documents ignoring formatting and returns a
// readable diff, or "" when they are equal.
func DiffJSON(t *testing.T, expected, actual []byte) string {
	t.Helper()

	jsonRaw := map[string]interface{}{}
	if err := json.Unmarshal(expected, &jsonRaw); err != nil {
		t.Errorf("Unable to unmarshall expected Error[%v]", err)
	}

	diffs, diffErr := diff.New().Compare(expected, actual)
	if diffErr != nil {
		t.Errorf("Unable to calculate diff Error[%v]", diffErr)
	}
	if diffs.Modified() {
		str, err := formatter.NewAsciiFormatter(jsonRaw, jsonFormatterConfig).Format(diffs)
		if err != nil {
			t.Errorf("Unable to format diff in test Error[%v]", err)
		}
		return str
	}
	return ""
}

// DiffModel deep-compares two models and returns a readable diff, or ""
// when they are equal.
func DiffModel(t *testing.T, expected, actual interface{}) string {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		return ""
	}
	expectedStr := spew.Sdump(expected)
	actualStr := spew.Sdump(actual)

	dump := diffmatchpatch.New()
	diffs := dump.DiffMain(expectedStr, actualStr, true)
	return dump.DiffPrettyText(diffs)
}
