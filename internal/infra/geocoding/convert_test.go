package geocoding

import (
	"testing"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestConvertResult(t *testing.T) {
	p := nominatimPlace{
		PlaceID:     42,
		Lat:         "5.3364",
		Lon:         "-4.0267",
		DisplayName: "Rue des Jardins, Cocody, Abidjan, Côte d'Ivoire",
		Class:       "highway",
		Type:        "residential",
	}

	got, ok := ConvertResult(p)

	assert.True(t, ok)
	assert.Equal(t, "Rue des Jardins, Cocody", got.Name)
	assert.Equal(t, "Rue des Jardins, Cocody, Abidjan, Côte d'Ivoire", got.Address)
	assert.Equal(t, 5.3364, got.Latitude)
	assert.Equal(t, -4.0267, got.Longitude)
	assert.Equal(t, entity.SourceOSM, got.Source)
}

func TestConvertResult_PointOfInterestKeepsFirstSegment(t *testing.T) {
	tests := []struct {
		placeType string
		expected  string
	}{
		{"restaurant", "Chez Ambroise"},
		{"pharmacy", "Chez Ambroise"},
		{"hotel", "Chez Ambroise"},
		{"bank", "Chez Ambroise"},
		{"school", "Chez Ambroise"},
		{"residential", "Chez Ambroise, Marcory"},
	}

	for _, tt := range tests {
		t.Run(tt.placeType, func(t *testing.T) {
			p := nominatimPlace{
				Lat:         "5.30",
				Lon:         "-3.99",
				DisplayName: "Chez Ambroise, Marcory, Abidjan",
				Type:        tt.placeType,
			}

			got, ok := ConvertResult(p)

			assert.True(t, ok)
			assert.Equal(t, tt.expected, got.Name)
		})
	}
}

func TestConvertResult_SingleSegmentName(t *testing.T) {
	p := nominatimPlace{Lat: "5.30", Lon: "-3.99", DisplayName: "Abidjan", Type: "city"}

	got, ok := ConvertResult(p)

	assert.True(t, ok)
	assert.Equal(t, "Abidjan", got.Name)
}

func TestConvertResult_BadCoordinates(t *testing.T) {
	p := nominatimPlace{Lat: "not-a-number", Lon: "-3.99", DisplayName: "Abidjan"}

	_, ok := ConvertResult(p)

	assert.False(t, ok)
}
