package entity

import "github.com/DioGolang/GeoCourier/pkg/geo"

// DeliveryLocation is a named, geocoded reference point in the coverage area.
// Long-lived reference data, maintained by back-office tooling.
type DeliveryLocation struct {
	ID          string
	Name        string
	District    string
	ZoneType    ZoneType
	Latitude    float64
	Longitude   float64
	PostalCode  string
	FeeMinor    int64
	ETAMinutes  int
	Active      bool
	Description string
}

func NewDeliveryLocation(id, name, district string, zoneType ZoneType, lat, lon float64, bounds geo.BoundingBox) (*DeliveryLocation, error) {
	loc := &DeliveryLocation{
		ID:        id,
		Name:      name,
		District:  district,
		ZoneType:  zoneType,
		Latitude:  lat,
		Longitude: lon,
		Active:    true,
	}

	if err := loc.Validate(bounds); err != nil {
		return nil, err
	}
	return loc, nil
}

// Validate enforces the invariant that active locations carry valid
// coordinates inside the operating region.
func (l *DeliveryLocation) Validate(bounds geo.BoundingBox) error {
	if l.ID == "" {
		return ErrIDIsRequired
	}
	if l.Name == "" {
		return ErrNameIsRequired
	}
	if !l.ZoneType.IsValid() {
		return ErrInvalidZoneType
	}
	if l.FeeMinor < 0 {
		return ErrFeeMustBePos
	}
	if l.Active {
		if l.Latitude < -90 || l.Latitude > 90 || l.Longitude < -180 || l.Longitude > 180 {
			return ErrInvalidCoordinates
		}
		if !bounds.Contains(l.Latitude, l.Longitude) {
			return ErrOutsideServiceArea
		}
	}
	return nil
}
