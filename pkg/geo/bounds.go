package geo

// BoundingBox delimits the service's operating region. Coordinates outside
// the box are rejected both on input validation and when filtering results
// coming back from the external geocoder.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// ViewboxParam renders the box in the geocoder's viewbox order
// (min-lon, min-lat, max-lon, max-lat).
func (b BoundingBox) ViewboxParam() [4]float64 {
	return [4]float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat}
}

// Abidjan is the default operating region.
var Abidjan = BoundingBox{
	MinLat: 5.0,
	MaxLat: 5.4,
	MinLon: -3.9,
	MaxLon: -3.5,
}
