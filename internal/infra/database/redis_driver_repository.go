package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	activeDriversKey = "drivers:active"
	driverKeyPrefix  = "driver:"
)

// RedisDriverRepository reads driver positions maintained by the driver
// apps. Each driver has a hash keyed driver:{id}; ids of active drivers
// live in a set.
type RedisDriverRepository struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisDriverRepository(client *redis.Client, log logger.Logger) *RedisDriverRepository {
	return &RedisDriverRepository{client: client, logger: log}
}

func (r *RedisDriverRepository) ActiveDriverPositions(ctx context.Context) ([]entity.DriverPosition, error) {
	ids, err := r.client.SMembers(ctx, activeDriversKey).Result()
	if err != nil {
		r.logger.Error(ctx, "redis smembers failed", logger.WithError(err))
		return nil, fmt.Errorf("active drivers: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, driverKeyPrefix+id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error(ctx, "redis pipeline failed", logger.WithError(err))
		return nil, fmt.Errorf("driver hashes: %w", err)
	}

	positions := make([]entity.DriverPosition, 0, len(ids))
	for i, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil || len(fields) == 0 {
			continue
		}
		position := parseDriver(ids[i], fields)
		if position.Active && position.HasFix {
			positions = append(positions, position)
		}
	}
	return positions, nil
}

func (r *RedisDriverRepository) DriverPosition(ctx context.Context, driverID string) (*entity.DriverPosition, error) {
	fields, err := r.client.HGetAll(ctx, driverKeyPrefix+driverID).Result()
	if err != nil {
		r.logger.Error(ctx, "redis hgetall failed",
			logger.String("driver_id", driverID),
			logger.WithError(err),
		)
		return nil, fmt.Errorf("driver position: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	position := parseDriver(driverID, fields)
	return &position, nil
}

func parseDriver(id string, fields map[string]string) entity.DriverPosition {
	position := entity.DriverPosition{
		DriverID:  id,
		Name:      fields["name"],
		Available: fields["available"] == "1",
		Active:    fields["active"] == "1",
	}

	lat, latErr := strconv.ParseFloat(fields["lat"], 64)
	lon, lonErr := strconv.ParseFloat(fields["lon"], 64)
	if latErr == nil && lonErr == nil {
		position.Latitude = lat
		position.Longitude = lon
		position.HasFix = true
	}

	if ts, err := strconv.ParseInt(fields["updated_at"], 10, 64); err == nil {
		position.UpdatedAt = time.Unix(ts, 0)
	}
	return position
}
