package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GeoCourier/internal/application/port/outbound"
	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/lib/pq"
)

// undefined_function: the optional server-side query is not installed.
const pgUndefinedFunction = "42883"

type LocationRepository struct {
	Db *sql.DB
}

func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{Db: db}
}

const locationColumns = `id, name, district, zone_type, latitude, longitude,
	COALESCE(postal_code, ''), fee_minor, eta_minutes, active, COALESCE(description, '')`

func (r *LocationRepository) SearchLocations(ctx context.Context, text string, limit int) ([]entity.DeliveryLocation, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT `+locationColumns+`
		 FROM delivery_locations
		 WHERE active AND (name ILIKE '%' || $1 || '%' OR district ILIKE '%' || $1 || '%')
		 ORDER BY name
		 LIMIT $2`,
		text, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	return scanLocations(rows)
}

func (r *LocationRepository) LocationsByDistrict(ctx context.Context, district string) ([]entity.DeliveryLocation, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT `+locationColumns+`
		 FROM delivery_locations
		 WHERE active AND district = $1
		 ORDER BY name`,
		district,
	)
	if err != nil {
		return nil, fmt.Errorf("locations by district: %w", err)
	}
	return scanLocations(rows)
}

func (r *LocationRepository) LocationsByZoneType(ctx context.Context, zoneType entity.ZoneType) ([]entity.DeliveryLocation, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT `+locationColumns+`
		 FROM delivery_locations
		 WHERE active AND zone_type = $1
		 ORDER BY name`,
		string(zoneType),
	)
	if err != nil {
		return nil, fmt.Errorf("locations by zone type: %w", err)
	}
	return scanLocations(rows)
}

func (r *LocationRepository) ActiveLocations(ctx context.Context, limit int) ([]entity.DeliveryLocation, error) {
	if limit <= 0 || limit > outbound.ActiveLocationsCap {
		limit = outbound.ActiveLocationsCap
	}
	rows, err := r.Db.QueryContext(ctx,
		`SELECT `+locationColumns+`
		 FROM delivery_locations
		 WHERE active
		 ORDER BY name
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("active locations: %w", err)
	}
	return scanLocations(rows)
}

func (r *LocationRepository) SearchLandmarks(ctx context.Context, text string, limit int) ([]entity.Landmark, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT lm.id, lm.name, lm.landmark_type, COALESCE(lm.address, ''),
		        lm.latitude, lm.longitude, lm.location_id,
		        loc.name, loc.district, COALESCE(lm.description, '')
		 FROM landmarks lm
		 JOIN delivery_locations loc ON loc.id = lm.location_id
		 WHERE loc.active AND lm.name ILIKE '%' || $1 || '%'
		 ORDER BY lm.name
		 LIMIT $2`,
		text, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search landmarks: %w", err)
	}
	return scanLandmarks(rows)
}

func (r *LocationRepository) LandmarksByType(ctx context.Context, landmarkType entity.LandmarkType) ([]entity.Landmark, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT lm.id, lm.name, lm.landmark_type, COALESCE(lm.address, ''),
		        lm.latitude, lm.longitude, lm.location_id,
		        loc.name, loc.district, COALESCE(lm.description, '')
		 FROM landmarks lm
		 JOIN delivery_locations loc ON loc.id = lm.location_id
		 WHERE loc.active AND lm.landmark_type = $1
		 ORDER BY lm.name`,
		string(landmarkType),
	)
	if err != nil {
		return nil, fmt.Errorf("landmarks by type: %w", err)
	}
	return scanLandmarks(rows)
}

func (r *LocationRepository) ActiveZonesByFee(ctx context.Context) ([]entity.DeliveryZone, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT id, name, base_fee_minor, max_distance_km, eta_minutes, COALESCE(color, ''), active
		 FROM delivery_zones
		 WHERE active
		 ORDER BY base_fee_minor ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("active zones: %w", err)
	}
	defer rows.Close()

	var zones []entity.DeliveryZone
	for rows.Next() {
		var z entity.DeliveryZone
		if err := rows.Scan(&z.ID, &z.Name, &z.BaseFeeMinor, &z.MaxDistanceKm, &z.ETAMinutes, &z.Color, &z.Active); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (r *LocationRepository) CountActiveLocations(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM delivery_locations WHERE active`)
}

func (r *LocationRepository) CountActiveLandmarks(ctx context.Context) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM landmarks lm
		 JOIN delivery_locations loc ON loc.id = lm.location_id
		 WHERE loc.active`)
}

func (r *LocationRepository) CountActiveZones(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM delivery_zones WHERE active`)
}

func (r *LocationRepository) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.Db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// NearestLocations calls the optional nearby_locations SQL function. When
// the function is not installed the resolver falls back to its in-memory
// ranking, so undefined_function maps to ErrServerQueryUnavailable.
func (r *LocationRepository) NearestLocations(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]entity.NearestLocation, error) {
	rows, err := r.Db.QueryContext(ctx,
		`SELECT location_id, name, district, distance_km, fee_minor, eta_minutes
		 FROM nearby_locations($1, $2, $3, $4)`,
		lat, lon, radiusKm, limit,
	)
	if err != nil {
		return nil, classifyOptional(err, "nearest locations")
	}
	defer rows.Close()

	var results []entity.NearestLocation
	for rows.Next() {
		var n entity.NearestLocation
		if err := rows.Scan(&n.LocationID, &n.Name, &n.District, &n.DistanceKm, &n.FeeMinor, &n.ETAMinutes); err != nil {
			return nil, fmt.Errorf("scan nearest location: %w", err)
		}
		results = append(results, n)
	}
	return results, rows.Err()
}

// DeliveryFee calls the optional calculate_delivery_fee SQL function.
func (r *LocationRepository) DeliveryFee(ctx context.Context, lat, lon float64) (*entity.DeliveryFeeQuote, error) {
	var q entity.DeliveryFeeQuote
	err := r.Db.QueryRowContext(ctx,
		`SELECT zone_name, fee_minor, eta_minutes, distance_km
		 FROM calculate_delivery_fee($1, $2)`,
		lat, lon,
	).Scan(&q.ZoneName, &q.FeeMinor, &q.ETAMinutes, &q.DistanceKm)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrServerQueryUnavailable
		}
		return nil, classifyOptional(err, "delivery fee")
	}
	return &q, nil
}

func classifyOptional(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUndefinedFunction {
		return outbound.ErrServerQueryUnavailable
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanLocations(rows *sql.Rows) ([]entity.DeliveryLocation, error) {
	defer rows.Close()

	var locations []entity.DeliveryLocation
	for rows.Next() {
		var loc entity.DeliveryLocation
		var zoneType string
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.District, &zoneType,
			&loc.Latitude, &loc.Longitude, &loc.PostalCode,
			&loc.FeeMinor, &loc.ETAMinutes, &loc.Active, &loc.Description); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		loc.ZoneType = entity.ZoneType(zoneType)
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func scanLandmarks(rows *sql.Rows) ([]entity.Landmark, error) {
	defer rows.Close()

	var landmarks []entity.Landmark
	for rows.Next() {
		var lm entity.Landmark
		var landmarkType string
		if err := rows.Scan(&lm.ID, &lm.Name, &landmarkType, &lm.Address,
			&lm.Latitude, &lm.Longitude, &lm.LocationID,
			&lm.LocationName, &lm.LocationDistrict, &lm.Description); err != nil {
			return nil, fmt.Errorf("scan landmark: %w", err)
		}
		lm.Type = entity.LandmarkType(landmarkType)
		landmarks = append(landmarks, lm)
	}
	return landmarks, rows.Err()
}
