package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileValidate(t *testing.T) {
	valid := Profile{
		R: []float64{0, 450, 450, 0},
		Z: []float64{0, 0, 1100, 1100},
	}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, 4, valid.Len())

	assert.Error(t, Profile{R: []float64{0, 1}, Z: []float64{0}}.Validate())
	assert.Error(t, Profile{R: []float64{0, 1}, Z: []float64{0, 1}}.Validate())
	assert.Error(t, Profile{
		R: []float64{0, -1, 1},
		Z: []float64{0, 1, 2},
	}.Validate())
}

func TestProfileShifted(t *testing.T) {
	profile := Profile{
		R: []float64{0, 450, 450, 0},
		Z: []float64{0, 0, 1100, 1100},
	}
	shifted := profile.Shifted(-550)

	assert.Equal(t, profile.R, shifted.R)
	assert.Equal(t, []float64{-550, -550, 550, 550}, shifted.Z)

	// the source profile is untouched
	assert.Equal(t, []float64{0, 0, 1100, 1100}, profile.Z)
}

func TestCenterAndSizeToMinAndMax(t *testing.T) {
	min, max := CenterAndSizeToMinAndMax(10, 4)
	assert.Equal(t, 8.0, min)
	assert.Equal(t, 12.0, max)
}
