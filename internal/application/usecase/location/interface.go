package location

import (
	"context"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
)

// Resolver answers "what is near here" and "what does delivery cost here".
// Every operation degrades to an empty result on store or provider failure;
// none of them surface an error to the caller.
type Resolver interface {
	SearchLocations(ctx context.Context, text string, limit int) []entity.DeliveryLocation
	SearchLandmarks(ctx context.Context, text string, limit int) []entity.Landmark
	LandmarksByType(ctx context.Context, landmarkType entity.LandmarkType) []entity.Landmark
	LocationsByDistrict(ctx context.Context, district string) []entity.DeliveryLocation
	LocationsByZoneType(ctx context.Context, zoneType entity.ZoneType) []entity.DeliveryLocation
	FindNearestLocations(ctx context.Context, lat, lon, maxDistanceKm float64, limit int) []entity.NearestLocation
	DeliveryFee(ctx context.Context, lat, lon float64) entity.DeliveryFeeQuote
	SmartSearch(ctx context.Context, query string, limit int) SmartSearchResult
	ReverseGeocode(ctx context.Context, lat, lon float64) *entity.ExternalPlace
	IsValidGPS(lat, lon float64) bool
	Stats(ctx context.Context) entity.LocationStats
}
