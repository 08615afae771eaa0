package gdml

import (
	"encoding/xml"
	"os"

	conf "github.com/legend-exp/geom-scarf/config"
	"github.com/legend-exp/geom-scarf/setup"
)

var log = conf.NamedLogger("gdml")

// Serialize converts the registry into a GDML document string.
func Serialize(reg *setup.Registry) (string, error) {
	doc, err := Convert(reg)
	if err != nil {
		return "", err
	}
	marshaled, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(marshaled) + "\n", nil
}

// Write serializes the registry and writes the document to path.
func Write(reg *setup.Registry, path string) error {
	serialized, err := Serialize(reg)
	if err != nil {
		return err
	}
	log.Infof("Writing geometry with %d volumes to %s", len(reg.Volumes()), path)
	return os.WriteFile(path, []byte(serialized), 0644)
}
