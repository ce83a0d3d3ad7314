package tracking

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/DioGolang/GeoCourier/internal/application/port/outbound"
	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
	"github.com/google/uuid"
)

// DefaultInterval between driver position samples.
const DefaultInterval = 15 * time.Second

// positionToleranceDeg is the per-axis movement threshold (~11 m). Smaller
// deltas are GPS jitter and must not reach subscribers.
const positionToleranceDeg = 0.0001

// Subscriber is invoked once per changed driver per sampling cycle. It
// receives a copy of the snapshot and must not block for long.
type Subscriber func(position entity.DriverPosition)

// Aggregator polls driver positions on a fixed interval and fans out only
// genuine movement to subscribers. One instance per process, constructed
// with its store injected; there is no package-level state.
type Aggregator struct {
	store   outbound.DriverPositionStore
	logger  logger.Logger
	metrics metrics.Metrics

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	// cycleMu guarantees two cycles never mutate the cache concurrently.
	cycleMu   sync.Mutex
	snapshots map[string]entity.DriverPosition

	subsMu sync.RWMutex
	subs   map[string]Subscriber
}

func NewAggregator(store outbound.DriverPositionStore, log logger.Logger, m metrics.Metrics) *Aggregator {
	return &Aggregator{
		store:     store,
		logger:    log,
		metrics:   m,
		snapshots: make(map[string]entity.DriverPosition),
		subs:      make(map[string]Subscriber),
	}
}

// Start launches the sampling loop: one immediate sample, then one every
// interval. Starting a running aggregator is a no-op.
func (a *Aggregator) Start(interval time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	a.running = true

	go a.run(ctx, interval)

	a.logger.Info(ctx, "live tracking started", logger.String("interval", interval.String()))
}

// Stop cancels the loop and waits for it to finish, so no subscriber is
// invoked after Stop returns. The snapshot cache is discarded. Idempotent.
func (a *Aggregator) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	cancel := a.cancel
	done := a.done
	a.mu.Unlock()

	cancel()
	<-done

	a.cycleMu.Lock()
	a.snapshots = make(map[string]entity.DriverPosition)
	a.cycleMu.Unlock()

	a.logger.Info(context.Background(), "live tracking stopped")
}

// Running reports whether the sampling loop is active.
func (a *Aggregator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Subscribe registers a callback and returns an opaque token that
// unsubscribes exactly that callback.
func (a *Aggregator) Subscribe(fn Subscriber) string {
	token := uuid.NewString()
	a.subsMu.Lock()
	a.subs[token] = fn
	a.subsMu.Unlock()
	return token
}

func (a *Aggregator) Unsubscribe(token string) {
	a.subsMu.Lock()
	delete(a.subs, token)
	a.subsMu.Unlock()
}

// DriverLocation is a point lookup straight to the store, bypassing the
// cache. Usable while the aggregator is stopped. Returns nil on error or
// unknown driver.
func (a *Aggregator) DriverLocation(ctx context.Context, driverID string) *entity.DriverPosition {
	position, err := a.store.DriverPosition(ctx, driverID)
	if err != nil {
		a.logger.Warn(ctx, "driver position lookup failed",
			logger.String("driver_id", driverID),
			logger.WithError(err),
		)
		return nil
	}
	return position
}

func (a *Aggregator) run(ctx context.Context, interval time.Duration) {
	defer close(a.done)

	a.sample(ctx, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.sample(ctx, interval)
		}
	}
}

// sample runs one cycle: fetch, detect movement, update the cache, notify.
// The fetch is bounded by the sampling interval so a slow store cannot
// stall the cadence indefinitely.
func (a *Aggregator) sample(ctx context.Context, interval time.Duration) {
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, interval)
	defer cancel()

	drivers, err := a.store.ActiveDriverPositions(fetchCtx)
	if err != nil {
		a.logger.Warn(ctx, "driver position sample failed", logger.WithError(err))
		return
	}

	a.cycleMu.Lock()
	changed := make([]entity.DriverPosition, 0, len(drivers))
	for _, driver := range drivers {
		prev, seen := a.snapshots[driver.DriverID]
		if !seen || moved(prev, driver) {
			changed = append(changed, driver)
		}
		a.snapshots[driver.DriverID] = driver
	}
	a.cycleMu.Unlock()

	// a cycle that was cancelled mid-flight is discarded, not delivered
	if ctx.Err() != nil {
		return
	}

	a.notify(changed)
	a.metrics.ObserveTrackingCycle(time.Since(start), len(drivers), len(changed))

	if len(changed) > 0 {
		a.logger.Debug(ctx, "driver positions changed",
			logger.Int("drivers", len(drivers)),
			logger.Int("changed", len(changed)),
		)
	}
}

// notify delivers changed snapshots in fetch order. Each subscriber sees
// events in that order; ordering between subscribers is unspecified.
func (a *Aggregator) notify(changed []entity.DriverPosition) {
	a.subsMu.RLock()
	defer a.subsMu.RUnlock()

	for _, position := range changed {
		for _, fn := range a.subs {
			fn(position)
		}
	}
}

func moved(prev, curr entity.DriverPosition) bool {
	if !prev.HasFix || !curr.HasFix {
		return true
	}
	return math.Abs(curr.Latitude-prev.Latitude) > positionToleranceDeg ||
		math.Abs(curr.Longitude-prev.Longitude) > positionToleranceDeg
}
