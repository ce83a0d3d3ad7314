package entity

// LandmarkType classifies a point of interest.
type LandmarkType string

const (
	LandmarkRestaurant  LandmarkType = "restaurant"
	LandmarkHotel       LandmarkType = "hotel"
	LandmarkBank        LandmarkType = "bank"
	LandmarkPharmacy    LandmarkType = "pharmacy"
	LandmarkHospital    LandmarkType = "hospital"
	LandmarkSchool      LandmarkType = "school"
	LandmarkChurch      LandmarkType = "church"
	LandmarkMosque      LandmarkType = "mosque"
	LandmarkMarket      LandmarkType = "market"
	LandmarkFuelStation LandmarkType = "fuel_station"
	LandmarkOffice      LandmarkType = "office"
	LandmarkOther       LandmarkType = "other"
)

// Landmark is a point of interest attached to a delivery location, used by
// customers to describe a drop-off point. LocationName and LocationDistrict
// come from the owning location when the store joins them in.
type Landmark struct {
	ID               string
	Name             string
	Type             LandmarkType
	Address          string
	Latitude         float64
	Longitude        float64
	LocationID       string
	LocationName     string
	LocationDistrict string
	Description      string
}
