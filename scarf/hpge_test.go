package scarf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend-exp/geom-scarf/metadata"
)

func publicRecord(t *testing.T, name string) metadata.HPGe {
	t.Helper()
	record, err := metadata.NewPublicDB().Detector(name)
	require.NoError(t, err)
	return record
}

func TestCrystalProfileICPC(t *testing.T) {
	record := publicRecord(t, "V09999A")
	profile := CrystalProfile(record)

	require.NoError(t, profile.Validate())

	// starts on the axis above the p+ dimple, ends on the axis at the
	// borehole bottom
	assert.Equal(t, 0.0, profile.R[0])
	assert.Equal(t, record.Geometry.PPContact.DepthInMM, profile.Z[0])
	last := profile.Len() - 1
	assert.Equal(t, 0.0, profile.R[last])
	assert.Equal(t,
		record.Geometry.HeightInMM-record.Geometry.BoreholeDepthInMM,
		profile.Z[last])

	// no point leaves the crystal envelope
	for i := 0; i < profile.Len(); i++ {
		assert.LessOrEqual(t, profile.R[i], record.Geometry.RadiusInMM)
		assert.GreaterOrEqual(t, profile.Z[i], 0.0)
		assert.LessOrEqual(t, profile.Z[i], record.Geometry.HeightInMM)
	}
}

func TestCrystalProfilePPC(t *testing.T) {
	record := publicRecord(t, "P99000A")
	profile := CrystalProfile(record)

	require.NoError(t, profile.Validate())

	// no dimple, groove, taper or borehole: a plain cylinder
	assert.Equal(t, 4, profile.Len())
	assert.Equal(t, record.Geometry.RadiusInMM, profile.R[1])
	assert.Equal(t, record.Geometry.HeightInMM, profile.Z[2])
}

func TestTaperCut(t *testing.T) {
	_, ok := taperCut(metadata.Taper{}, 38.25)
	assert.False(t, ok)

	radius, ok := taperCut(metadata.Taper{AngleInDeg: 45, HeightInMM: 5}, 38.25)
	require.True(t, ok)
	assert.InDelta(t, 33.25, radius, 1e-9)

	radius, ok = taperCut(metadata.Taper{AngleInDeg: 30, HeightInMM: 6}, 38.25)
	require.True(t, ok)
	assert.InDelta(t, 38.25-6*math.Tan(math.Pi/6), radius, 1e-9)
}
