package entity

// ZoneType classifies a delivery location's surroundings.
type ZoneType string

const (
	ZoneCommercial   ZoneType = "commercial"
	ZoneResidential  ZoneType = "residential"
	ZoneIndustrial   ZoneType = "industrial"
	ZoneVillage      ZoneType = "village"
	ZonePublicPlace  ZoneType = "public_place"
	ZoneNeighborhood ZoneType = "neighborhood"
)

func (z ZoneType) IsValid() bool {
	switch z {
	case ZoneCommercial, ZoneResidential, ZoneIndustrial,
		ZoneVillage, ZonePublicPlace, ZoneNeighborhood:
		return true
	}
	return false
}
