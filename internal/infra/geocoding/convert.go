package geocoding

import (
	"strconv"
	"strings"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
)

// poiTypes are provider categories where the full address adds noise; only
// the place's own name is kept.
var poiTypes = map[string]struct{}{
	"restaurant": {},
	"pharmacy":   {},
	"hotel":      {},
	"bank":       {},
	"school":     {},
}

// ConvertResult maps the provider schema onto the domain's ExternalPlace.
// The short display name takes the first two comma-separated segments of the
// full address, or just the first for recognized points of interest.
func ConvertResult(p nominatimPlace) (entity.ExternalPlace, bool) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return entity.ExternalPlace{}, false
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return entity.ExternalPlace{}, false
	}

	return entity.ExternalPlace{
		Name:      shortName(p.DisplayName, p.Type),
		Address:   p.DisplayName,
		Latitude:  lat,
		Longitude: lon,
		Type:      p.Type,
		Source:    entity.SourceOSM,
	}, true
}

func shortName(displayName, placeType string) string {
	segments := strings.Split(displayName, ",")
	for i, s := range segments {
		segments[i] = strings.TrimSpace(s)
	}

	if _, poi := poiTypes[placeType]; poi || len(segments) == 1 {
		return segments[0]
	}
	return segments[0] + ", " + segments[1]
}
