package setup

import "fmt"

var (
	// ErrEmptyName reported for unnamed registry entries.
	ErrEmptyName = fmt.Errorf("empty name")
	// ErrNoGeometry reported for solids without a shape.
	ErrNoGeometry = fmt.Errorf("solid has no geometry")
)

type makeNewNameErrorFuncType = func(name string, message string, formatedValues ...interface{}) error

// SolidError ...
var SolidError = makeNewNameErrorFunc("Solid")

// MaterialError ...
var MaterialError = makeNewNameErrorFunc("Material")

// VolumeError ...
var VolumeError = makeNewNameErrorFunc("LogicalVolume")

// PlacementError ...
var PlacementError = makeNewNameErrorFunc("PhysicalVolume")

// SurfaceError ...
var SurfaceError = makeNewNameErrorFunc("Surface")

func makeNewNameErrorFunc(modelName string) makeNewNameErrorFuncType {
	return func(name string, message string, formatedValues ...interface{}) error {
		header := fmt.Sprintf("[registry] %s{Name: %q}: ", modelName, name)
		return fmt.Errorf(header+message, formatedValues...)
	}
}
