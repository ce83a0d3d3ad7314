package outbound

import (
	"context"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
)

type DriverPositionStore interface {
	// ActiveDriverPositions returns active drivers that have reported at
	// least one position.
	ActiveDriverPositions(ctx context.Context) ([]entity.DriverPosition, error)

	// DriverPosition looks up a single driver, nil when unknown.
	DriverPosition(ctx context.Context, driverID string) (*entity.DriverPosition, error)
}
