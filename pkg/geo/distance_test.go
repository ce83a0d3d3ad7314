package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(5.3364, -4.0267, 5.3364, -4.0267))
}

func TestDistance_Symmetry(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"within the city", 5.32, -4.02, 5.35, -3.98},
		{"across the equator", -1.5, 10.0, 2.5, 12.0},
		{"antimeridian neighbours", 10.0, 179.9, 10.0, -179.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d1 := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			d2 := Distance(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			assert.InDelta(t, d1, d2, 1e-9)
		})
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// Plateau to Cocody, roughly 5.5 km.
	d := Distance(5.3258, -4.0217, 5.3599, -3.9821)

	assert.Greater(t, d, 4.0)
	assert.Less(t, d, 7.0)
}

func TestEstimateTravelMinutes(t *testing.T) {
	assert.Equal(t, 30, EstimateTravelMinutes(10, 20))
	assert.Equal(t, 1, EstimateTravelMinutes(0.1, 20))
	assert.Equal(t, 0, EstimateTravelMinutes(0, 20))

	// non-positive speed falls back to the default
	assert.Equal(t, 30, EstimateTravelMinutes(10, 0))
}

func TestBoundingBox_Contains(t *testing.T) {
	assert.True(t, Abidjan.Contains(5.2, -3.7))
	assert.False(t, Abidjan.Contains(48.8, 2.3))
	assert.True(t, Abidjan.Contains(5.0, -3.9))
	assert.True(t, Abidjan.Contains(5.4, -3.5))
	assert.False(t, Abidjan.Contains(5.5, -3.7))
	assert.False(t, Abidjan.Contains(5.2, -3.4))
}

func TestBoundingBox_ViewboxParam(t *testing.T) {
	vb := Abidjan.ViewboxParam()
	assert.Equal(t, [4]float64{-3.9, 5.0, -3.5, 5.4}, vb)
}
