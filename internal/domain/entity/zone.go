package entity

// DeliveryZone is a fee/ETA tier keyed by a maximum distance radius.
// Zones are evaluated in ascending base-fee order; the first zone whose
// radius covers the computed distance wins.
type DeliveryZone struct {
	ID            string
	Name          string
	BaseFeeMinor  int64
	MaxDistanceKm float64
	ETAMinutes    int
	Color         string
	Active        bool
}

func (z *DeliveryZone) Covers(distanceKm float64) bool {
	return z.MaxDistanceKm >= distanceKm
}

func (z *DeliveryZone) Validate() error {
	if z.ID == "" {
		return ErrIDIsRequired
	}
	if z.Name == "" {
		return ErrNameIsRequired
	}
	if z.BaseFeeMinor < 0 {
		return ErrFeeMustBePos
	}
	if z.MaxDistanceKm <= 0 {
		return ErrRadiusMustBePos
	}
	return nil
}
