package entity

import "time"

// DriverPosition is a read-only snapshot of a driver's last known state.
// HasFix is false when the driver has never reported a position.
type DriverPosition struct {
	DriverID  string
	Name      string
	Latitude  float64
	Longitude float64
	HasFix    bool
	UpdatedAt time.Time
	Available bool
	Active    bool
}
