package entity

import (
	"testing"

	"github.com/DioGolang/GeoCourier/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestNewDeliveryLocation(t *testing.T) {
	//Arrange
	id := "loc-1"
	name := "Marché de Cocody"
	district := "Cocody"

	//Act
	loc, err := NewDeliveryLocation(id, name, district, ZoneCommercial, 5.35, -3.98, geo.Abidjan)

	//Assert
	assert.Nil(t, err)
	assert.NotNil(t, loc)
	assert.True(t, loc.Active)
}

func TestDeliveryLocation_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		locName     string
		zoneType    ZoneType
		lat, lon    float64
		expectedErr error
	}{
		{"Should return error when ID is empty", "", "Adjamé", ZoneCommercial, 5.35, -3.98, ErrIDIsRequired},
		{"Should return error when Name is empty", "loc-1", "", ZoneCommercial, 5.35, -3.98, ErrNameIsRequired},
		{"Should return error when zone type is unknown", "loc-1", "Adjamé", ZoneType("swamp"), 5.35, -3.98, ErrInvalidZoneType},
		{"Should return error when latitude is out of range", "loc-1", "Adjamé", ZoneResidential, 95.0, -3.98, ErrInvalidCoordinates},
		{"Should return error when outside the operating region", "loc-1", "Paris", ZoneResidential, 48.85, 2.35, ErrOutsideServiceArea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := NewDeliveryLocation(tt.id, tt.locName, "", tt.zoneType, tt.lat, tt.lon, geo.Abidjan)

			assert.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, loc)
		})
	}
}

func TestDeliveryLocation_InactiveSkipsRegionCheck(t *testing.T) {
	loc := &DeliveryLocation{
		ID:       "loc-2",
		Name:     "Ancien dépôt",
		ZoneType: ZoneIndustrial,
		Active:   false,
	}

	assert.NoError(t, loc.Validate(geo.Abidjan))
}
