package location

import (
	"context"
	"time"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
)

// ResolverMetricsDecorator times every resolver operation. Success is always
// true: the resolver has no error path by design, so only latency matters.
type ResolverMetricsDecorator struct {
	Next    Resolver
	Metrics metrics.Metrics
}

func (d *ResolverMetricsDecorator) SearchLocations(ctx context.Context, text string, limit int) []entity.DeliveryLocation {
	start := time.Now()
	out := d.Next.SearchLocations(ctx, text, limit)
	d.Metrics.RecordUseCaseExecution("SearchLocations", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) SearchLandmarks(ctx context.Context, text string, limit int) []entity.Landmark {
	start := time.Now()
	out := d.Next.SearchLandmarks(ctx, text, limit)
	d.Metrics.RecordUseCaseExecution("SearchLandmarks", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) LandmarksByType(ctx context.Context, landmarkType entity.LandmarkType) []entity.Landmark {
	start := time.Now()
	out := d.Next.LandmarksByType(ctx, landmarkType)
	d.Metrics.RecordUseCaseExecution("LandmarksByType", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) LocationsByDistrict(ctx context.Context, district string) []entity.DeliveryLocation {
	start := time.Now()
	out := d.Next.LocationsByDistrict(ctx, district)
	d.Metrics.RecordUseCaseExecution("LocationsByDistrict", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) LocationsByZoneType(ctx context.Context, zoneType entity.ZoneType) []entity.DeliveryLocation {
	start := time.Now()
	out := d.Next.LocationsByZoneType(ctx, zoneType)
	d.Metrics.RecordUseCaseExecution("LocationsByZoneType", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) FindNearestLocations(ctx context.Context, lat, lon, maxDistanceKm float64, limit int) []entity.NearestLocation {
	start := time.Now()
	out := d.Next.FindNearestLocations(ctx, lat, lon, maxDistanceKm, limit)
	d.Metrics.RecordUseCaseExecution("FindNearestLocations", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) DeliveryFee(ctx context.Context, lat, lon float64) entity.DeliveryFeeQuote {
	start := time.Now()
	out := d.Next.DeliveryFee(ctx, lat, lon)
	d.Metrics.RecordUseCaseExecution("DeliveryFee", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) SmartSearch(ctx context.Context, query string, limit int) SmartSearchResult {
	start := time.Now()
	out := d.Next.SmartSearch(ctx, query, limit)
	d.Metrics.RecordUseCaseExecution("SmartSearch", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) ReverseGeocode(ctx context.Context, lat, lon float64) *entity.ExternalPlace {
	start := time.Now()
	out := d.Next.ReverseGeocode(ctx, lat, lon)
	d.Metrics.RecordUseCaseExecution("ReverseGeocode", true, time.Since(start))
	return out
}

func (d *ResolverMetricsDecorator) IsValidGPS(lat, lon float64) bool {
	return d.Next.IsValidGPS(lat, lon)
}

func (d *ResolverMetricsDecorator) Stats(ctx context.Context) entity.LocationStats {
	start := time.Now()
	out := d.Next.Stats(ctx)
	d.Metrics.RecordUseCaseExecution("Stats", true, time.Since(start))
	return out
}
