package metadata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirDB is a detector metadata database backed by a directory of YAML
// records, one file per detector, named <detector>.yaml.
type DirDB struct {
	dir string
}

// NewDirDB opens a directory database.
func NewDirDB(dir string) (*DirDB, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("detector metadata directory: %w", err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("detector metadata path %q is not a directory", dir)
	}
	return &DirDB{dir: dir}, nil
}

// Detector implements DB.
func (db *DirDB) Detector(name string) (HPGe, error) {
	path := filepath.Join(db.dir, name+".yaml")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return HPGe{}, NotFoundError{Name: name}
	}
	if err != nil {
		return HPGe{}, fmt.Errorf("reading detector record %q: %w", path, err)
	}

	var record HPGe
	if err := yaml.Unmarshal(raw, &record); err != nil {
		return HPGe{}, fmt.Errorf("parsing detector record %q: %w", path, err)
	}
	if record.Name == "" {
		record.Name = name
	}
	if record.Name != name {
		return HPGe{}, fmt.Errorf("detector record %q is named %q", path, record.Name)
	}
	if err := record.Validate(); err != nil {
		return HPGe{}, err
	}
	return record, nil
}

// Chain looks up detector records through several databases in order.
// Earlier databases shadow later ones.
type Chain []DB

// Detector implements DB.
func (c Chain) Detector(name string) (HPGe, error) {
	for _, db := range c {
		record, err := db.Detector(name)
		if err == nil {
			return record, nil
		}
		if _, notFound := err.(NotFoundError); !notFound {
			return HPGe{}, err
		}
	}
	return HPGe{}, NotFoundError{Name: name}
}
