package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat(t *testing.T) {
	assert.Equal(t, "0", Float(0))
	assert.Equal(t, "-150", Float(-150.0))
	assert.Equal(t, "1.39", Float(1.39))
	assert.Equal(t, "6.283185307179586", Float(6.283185307179586))
}

func TestFloats(t *testing.T) {
	assert.Equal(t, "", Floats(nil))
	assert.Equal(t, "1.88 1.22 9.68 1.38", Floats([]float64{1.88, 1.22, 9.68, 1.38}))
}
