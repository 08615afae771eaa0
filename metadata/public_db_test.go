package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicDBSynthesizesRecords(t *testing.T) {
	db := NewPublicDB()

	for name, kind := range map[string]DetectorKind{
		"V09999A": KindICPC,
		"B99000A": KindBeGe,
		"C99000A": KindCoax,
		"P99000A": KindPPC,
	} {
		record, err := db.Detector(name)
		require.NoError(t, err)

		assert.Equal(t, name, record.Name)
		assert.Equal(t, kind, record.Kind)
		assert.Equal(t, 0.9, record.Production.Enrichment.Val)
		assert.NoError(t, record.Validate())
	}
}

func TestPublicDBBoreholeByKind(t *testing.T) {
	db := NewPublicDB()

	icpc, err := db.Detector("V00050B")
	require.NoError(t, err)
	assert.Greater(t, icpc.Geometry.BoreholeDepthInMM, 0.0)

	bege, err := db.Detector("B00000C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, bege.Geometry.BoreholeDepthInMM)
}

func TestPublicDBUnknownPrefix(t *testing.T) {
	db := NewPublicDB()

	_, err := db.Detector("X12345A")
	assert.IsType(t, NotFoundError{}, err)

	_, err = db.Detector("")
	assert.Error(t, err)
}
