package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conf "github.com/legend-exp/geom-scarf/config"
	"github.com/legend-exp/geom-scarf/metadata"
)

func TestRunWritesGeometryFile(t *testing.T) {
	t.Setenv("SCARF_METADATA", "")
	output := filepath.Join(t.TempDir(), "geometry.gdml")

	err := run(&conf.Config{
		OutputPath:     output,
		PublicGeometry: true,
	})
	require.NoError(t, err)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(written), "<gdml")
	assert.Contains(t, string(written), `name="V09999A"`)
	assert.Contains(t, string(written), `<world ref="world">`)
}

func TestRunWithoutDatabaseNeedsOptIn(t *testing.T) {
	t.Setenv("SCARF_METADATA", "")
	output := filepath.Join(t.TempDir(), "geometry.gdml")

	err := run(&conf.Config{OutputPath: output})
	assert.Error(t, err)
}

func TestOpenDetectorDB(t *testing.T) {
	db, err := openDetectorDB(&conf.Config{})
	require.NoError(t, err)
	assert.Nil(t, db)

	mainDir := t.TempDir()
	record := "name: V09999A\ntype: icpc\ngeometry:\n  height_in_mm: 98.3\n  radius_in_mm: 38.25\n"
	require.NoError(t, os.WriteFile(filepath.Join(mainDir, "V09999A.yaml"), []byte(record), 0644))

	extraDir := t.TempDir()
	shadowed := "name: V09999A\ntype: icpc\ngeometry:\n  height_in_mm: 50.0\n  radius_in_mm: 38.25\n"
	require.NoError(t, os.WriteFile(filepath.Join(extraDir, "V09999A.yaml"), []byte(shadowed), 0644))

	db, err = openDetectorDB(&conf.Config{
		DetectorDBPath:     mainDir,
		ExtraDetectorsPath: extraDir,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	found, err := db.Detector("V09999A")
	require.NoError(t, err)
	assert.Equal(t, 50.0, found.Geometry.HeightInMM)

	_, err = db.Detector("B99000A")
	assert.IsType(t, metadata.NotFoundError{}, err)
}
