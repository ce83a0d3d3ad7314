package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryZone_Covers(t *testing.T) {
	zone := &DeliveryZone{ID: "z1", Name: "Centre", BaseFeeMinor: 500, MaxDistanceKm: 3, ETAMinutes: 15, Active: true}

	assert.True(t, zone.Covers(0))
	assert.True(t, zone.Covers(3))
	assert.False(t, zone.Covers(3.01))
}

func TestDeliveryZone_Validate(t *testing.T) {
	tests := []struct {
		name        string
		zone        DeliveryZone
		expectedErr error
	}{
		{"Should return error when ID is empty", DeliveryZone{Name: "Centre", MaxDistanceKm: 3}, ErrIDIsRequired},
		{"Should return error when Name is empty", DeliveryZone{ID: "z1", MaxDistanceKm: 3}, ErrNameIsRequired},
		{"Should return error when fee is negative", DeliveryZone{ID: "z1", Name: "Centre", BaseFeeMinor: -1, MaxDistanceKm: 3}, ErrFeeMustBePos},
		{"Should return error when radius is zero", DeliveryZone{ID: "z1", Name: "Centre"}, ErrRadiusMustBePos},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.zone.Validate()
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
