package entity

// NearestLocation is a per-query ranking result, never persisted.
type NearestLocation struct {
	LocationID string
	Name       string
	District   string
	DistanceKm float64
	FeeMinor   int64
	ETAMinutes int
}

// DeliveryFeeQuote is the outcome of a fee lookup, including the distance
// the decision was based on.
type DeliveryFeeQuote struct {
	ZoneName   string
	FeeMinor   int64
	ETAMinutes int
	DistanceKm float64
}

// PlaceSource marks where a search result came from.
type PlaceSource string

const (
	SourceLocal PlaceSource = "local"
	SourceOSM   PlaceSource = "osm"
)

// ExternalPlace is an ephemeral geocoder result used only to enrich search
// responses. It is never written to the store.
type ExternalPlace struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Type      string
	Source    PlaceSource
}

// LocationStats aggregates catalog counts for dashboards.
type LocationStats struct {
	Locations int
	Landmarks int
	Zones     int
}
