package outbound

import (
	"context"
	"errors"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
)

// ErrServerQueryUnavailable signals that an optional server-side query
// (nearest-neighbor or fee function) is not installed on the store. The
// resolver treats it as a branch condition, not a failure.
var ErrServerQueryUnavailable = errors.New("server-side query unavailable")

// ActiveLocationsCap bounds the bulk fetch backing the in-memory
// nearest-neighbor fallback. Known scaling boundary: catalogs larger than
// this are truncated.
const ActiveLocationsCap = 100

type LocationStore interface {
	SearchLocations(ctx context.Context, text string, limit int) ([]entity.DeliveryLocation, error)
	LocationsByDistrict(ctx context.Context, district string) ([]entity.DeliveryLocation, error)
	LocationsByZoneType(ctx context.Context, zoneType entity.ZoneType) ([]entity.DeliveryLocation, error)
	ActiveLocations(ctx context.Context, limit int) ([]entity.DeliveryLocation, error)

	SearchLandmarks(ctx context.Context, text string, limit int) ([]entity.Landmark, error)
	LandmarksByType(ctx context.Context, landmarkType entity.LandmarkType) ([]entity.Landmark, error)

	// ActiveZonesByFee returns active zones ordered by ascending base fee.
	ActiveZonesByFee(ctx context.Context) ([]entity.DeliveryZone, error)

	CountActiveLocations(ctx context.Context) (int, error)
	CountActiveLandmarks(ctx context.Context) (int, error)
	CountActiveZones(ctx context.Context) (int, error)

	// NearestLocations delegates ranking to the store. Returns
	// ErrServerQueryUnavailable when the backing SQL function is absent.
	NearestLocations(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]entity.NearestLocation, error)

	// DeliveryFee delegates the fee decision to the store. Returns
	// ErrServerQueryUnavailable when the backing SQL function is absent.
	DeliveryFee(ctx context.Context, lat, lon float64) (*entity.DeliveryFeeQuote, error)
}
