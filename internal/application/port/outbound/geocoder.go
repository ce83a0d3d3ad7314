package outbound

import (
	"context"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/geo"
)

// SearchOptions mirror the provider's query parameters.
type SearchOptions struct {
	Limit          int
	CountryCodes   string
	Viewbox        *geo.BoundingBox
	Bounded        bool
	AddressDetails bool
}

// Geocoder is the outbound port to the external place-search provider.
// Implementations never surface provider failures: Search degrades to an
// empty slice and Reverse to nil.
type Geocoder interface {
	Search(ctx context.Context, query string, opts SearchOptions) []entity.ExternalPlace
	Reverse(ctx context.Context, lat, lon float64) *entity.ExternalPlace
}
