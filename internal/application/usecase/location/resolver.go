package location

import (
	"context"
	"errors"
	"sort"

	"github.com/DioGolang/GeoCourier/internal/application/port/outbound"
	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/geo"
	"github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Operating defaults when no delivery zone is configured.
const (
	defaultZoneName   = "Standard"
	defaultFeeMinor   = 1000
	defaultETAMinutes = 25
)

// Fee lookups anchor on the single nearest location within this radius.
const feeSearchRadiusKm = 5

type ResolverImpl struct {
	store    outbound.LocationStore
	geocoder outbound.Geocoder
	bounds   geo.BoundingBox
	country  string
	logger   logger.Logger
	metrics  metrics.Metrics
}

func NewResolver(
	store outbound.LocationStore,
	geocoder outbound.Geocoder,
	bounds geo.BoundingBox,
	country string,
	log logger.Logger,
	m metrics.Metrics,
) *ResolverImpl {
	return &ResolverImpl{
		store:    store,
		geocoder: geocoder,
		bounds:   bounds,
		country:  country,
		logger:   log,
		metrics:  m,
	}
}

func (r *ResolverImpl) SearchLocations(ctx context.Context, text string, limit int) []entity.DeliveryLocation {
	if text == "" {
		return nil
	}
	locations, err := r.store.SearchLocations(ctx, text, limit)
	if err != nil {
		r.logger.Warn(ctx, "location search failed", logger.String("text", text), logger.WithError(err))
		return nil
	}
	return locations
}

func (r *ResolverImpl) SearchLandmarks(ctx context.Context, text string, limit int) []entity.Landmark {
	if text == "" {
		return nil
	}
	landmarks, err := r.store.SearchLandmarks(ctx, text, limit)
	if err != nil {
		r.logger.Warn(ctx, "landmark search failed", logger.String("text", text), logger.WithError(err))
		return nil
	}
	return landmarks
}

func (r *ResolverImpl) LandmarksByType(ctx context.Context, landmarkType entity.LandmarkType) []entity.Landmark {
	landmarks, err := r.store.LandmarksByType(ctx, landmarkType)
	if err != nil {
		r.logger.Warn(ctx, "landmark type lookup failed", logger.String("landmark_type", string(landmarkType)), logger.WithError(err))
		return nil
	}
	return landmarks
}

func (r *ResolverImpl) LocationsByDistrict(ctx context.Context, district string) []entity.DeliveryLocation {
	locations, err := r.store.LocationsByDistrict(ctx, district)
	if err != nil {
		r.logger.Warn(ctx, "district lookup failed", logger.String("district", district), logger.WithError(err))
		return nil
	}
	return locations
}

func (r *ResolverImpl) LocationsByZoneType(ctx context.Context, zoneType entity.ZoneType) []entity.DeliveryLocation {
	locations, err := r.store.LocationsByZoneType(ctx, zoneType)
	if err != nil {
		r.logger.Warn(ctx, "zone type lookup failed", logger.String("zone_type", string(zoneType)), logger.WithError(err))
		return nil
	}
	return locations
}

// FindNearestLocations tries the store's nearest-neighbor query first and
// falls back to ranking up to ActiveLocationsCap locations in memory. The
// fallback produces the same ordering a correct server-side query would.
func (r *ResolverImpl) FindNearestLocations(ctx context.Context, lat, lon, maxDistanceKm float64, limit int) []entity.NearestLocation {
	if !r.IsValidGPS(lat, lon) {
		return nil
	}

	results, err := r.store.NearestLocations(ctx, lat, lon, maxDistanceKm, limit)
	if err == nil {
		return results
	}
	if !errors.Is(err, outbound.ErrServerQueryUnavailable) {
		r.logger.Warn(ctx, "server-side nearest query failed, using fallback", logger.WithError(err))
	}
	r.metrics.RecordFallback("nearest_locations")

	locations, err := r.store.ActiveLocations(ctx, outbound.ActiveLocationsCap)
	if err != nil {
		r.logger.Warn(ctx, "active locations fetch failed", logger.WithError(err))
		return nil
	}

	ranked := make([]entity.NearestLocation, 0, len(locations))
	for _, loc := range locations {
		d := geo.Distance(lat, lon, loc.Latitude, loc.Longitude)
		if d > maxDistanceKm {
			continue
		}
		ranked = append(ranked, entity.NearestLocation{
			LocationID: loc.ID,
			Name:       loc.Name,
			District:   loc.District,
			DistanceKm: d,
			FeeMinor:   loc.FeeMinor,
			ETAMinutes: loc.ETAMinutes,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// DeliveryFee resolves the applicable fee tier for a drop-off point. It
// never fails: when everything else is missing it answers the operating
// default so order placement is never blocked by fee estimation.
func (r *ResolverImpl) DeliveryFee(ctx context.Context, lat, lon float64) entity.DeliveryFeeQuote {
	if r.IsValidGPS(lat, lon) {
		quote, err := r.store.DeliveryFee(ctx, lat, lon)
		if err == nil && quote != nil {
			return *quote
		}
		if err != nil && !errors.Is(err, outbound.ErrServerQueryUnavailable) {
			r.logger.Warn(ctx, "server-side fee query failed, using fallback", logger.WithError(err))
		}
		r.metrics.RecordFallback("delivery_fee")
	}

	zones, err := r.store.ActiveZonesByFee(ctx)
	if err != nil {
		r.logger.Warn(ctx, "zone fetch failed", logger.WithError(err))
		zones = nil
	}

	if len(zones) == 0 {
		return entity.DeliveryFeeQuote{
			ZoneName:   defaultZoneName,
			FeeMinor:   defaultFeeMinor,
			ETAMinutes: defaultETAMinutes,
			DistanceKm: 0,
		}
	}

	cheapest := zones[0]

	var nearest []entity.NearestLocation
	if r.IsValidGPS(lat, lon) {
		nearest = r.FindNearestLocations(ctx, lat, lon, feeSearchRadiusKm, 1)
	}
	if len(nearest) == 0 {
		return entity.DeliveryFeeQuote{
			ZoneName:   cheapest.Name,
			FeeMinor:   cheapest.BaseFeeMinor,
			ETAMinutes: cheapest.ETAMinutes,
			DistanceKm: 0,
		}
	}

	distance := nearest[0].DistanceKm
	for _, zone := range zones {
		if zone.Covers(distance) {
			return entity.DeliveryFeeQuote{
				ZoneName:   zone.Name,
				FeeMinor:   zone.BaseFeeMinor,
				ETAMinutes: zone.ETAMinutes,
				DistanceKm: distance,
			}
		}
	}

	// no zone radius reaches the point; charge the cheapest tier
	return entity.DeliveryFeeQuote{
		ZoneName:   cheapest.Name,
		FeeMinor:   cheapest.BaseFeeMinor,
		ETAMinutes: cheapest.ETAMinutes,
		DistanceKm: distance,
	}
}

// SmartSearch fans out to the local store and the external geocoder
// concurrently and returns the three result groups separately. External
// results are kept only when they fall inside the operating region.
func (r *ResolverImpl) SmartSearch(ctx context.Context, query string, limit int) SmartSearchResult {
	if query == "" {
		return SmartSearchResult{}
	}
	if limit <= 0 {
		limit = 10
	}
	localLimit := limit / 2

	var result SmartSearchResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Locations = r.SearchLocations(gctx, query, localLimit)
		return nil
	})
	g.Go(func() error {
		result.Landmarks = r.SearchLandmarks(gctx, query, localLimit)
		return nil
	})
	g.Go(func() error {
		box := r.bounds
		external := r.geocoder.Search(gctx, query, outbound.SearchOptions{
			Limit:          limit,
			CountryCodes:   r.country,
			Viewbox:        &box,
			Bounded:        true,
			AddressDetails: true,
		})
		kept := external[:0]
		for _, place := range external {
			if r.bounds.Contains(place.Latitude, place.Longitude) {
				kept = append(kept, place)
			}
		}
		result.External = kept
		return nil
	})

	// the legs only ever return nil; Wait is just the join point
	_ = g.Wait()

	return result
}

// ReverseGeocode resolves coordinates to the best-matching external place.
// Out-of-region coordinates or provider failures yield nil.
func (r *ResolverImpl) ReverseGeocode(ctx context.Context, lat, lon float64) *entity.ExternalPlace {
	if !r.IsValidGPS(lat, lon) {
		return nil
	}
	return r.geocoder.Reverse(ctx, lat, lon)
}

// IsValidGPS reports whether the coordinates fall inside the operating
// region's bounding box.
func (r *ResolverImpl) IsValidGPS(lat, lon float64) bool {
	return r.bounds.Contains(lat, lon)
}

// Stats issues the catalog counts as independent parallel reads.
func (r *ResolverImpl) Stats(ctx context.Context) entity.LocationStats {
	var stats entity.LocationStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := r.store.CountActiveLocations(gctx)
		if err != nil {
			r.logger.Warn(gctx, "location count failed", logger.WithError(err))
			return nil
		}
		stats.Locations = n
		return nil
	})
	g.Go(func() error {
		n, err := r.store.CountActiveLandmarks(gctx)
		if err != nil {
			r.logger.Warn(gctx, "landmark count failed", logger.WithError(err))
			return nil
		}
		stats.Landmarks = n
		return nil
	})
	g.Go(func() error {
		n, err := r.store.CountActiveZones(gctx)
		if err != nil {
			r.logger.Warn(gctx, "zone count failed", logger.WithError(err))
			return nil
		}
		stats.Zones = n
		return nil
	})

	_ = g.Wait()
	return stats
}
