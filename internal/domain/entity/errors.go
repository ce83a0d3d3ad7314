package entity

import "errors"

var (
	ErrIDIsRequired       = errors.New("id is required")
	ErrNameIsRequired     = errors.New("name is required")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrOutsideServiceArea = errors.New("coordinates outside the operating region")
	ErrInvalidZoneType    = errors.New("invalid zone type")
	ErrFeeMustBePos       = errors.New("fee must be greater than or equal to zero")
	ErrRadiusMustBePos    = errors.New("zone radius must be greater than zero")
)
