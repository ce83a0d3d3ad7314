package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDriverStore struct {
	mu          sync.Mutex
	positions   []entity.DriverPosition
	byID        map[string]*entity.DriverPosition
	fetchErr    error
	fetchCalled int
}

func (m *mockDriverStore) setPositions(positions []entity.DriverPosition) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions = positions
}

func (m *mockDriverStore) ActiveDriverPositions(ctx context.Context) ([]entity.DriverPosition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchCalled++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	out := make([]entity.DriverPosition, len(m.positions))
	copy(out, m.positions)
	return out, nil
}

func (m *mockDriverStore) DriverPosition(ctx context.Context, driverID string) (*entity.DriverPosition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.byID[driverID]; ok {
		return p, nil
	}
	return nil, nil
}

type recorder struct {
	mu     sync.Mutex
	events []entity.DriverPosition
}

func (r *recorder) record(p entity.DriverPosition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, p)
}

func (r *recorder) snapshot() []entity.DriverPosition {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.DriverPosition, len(r.events))
	copy(out, r.events)
	return out
}

func driver(id string, lat, lon float64) entity.DriverPosition {
	return entity.DriverPosition{
		DriverID:  id,
		Name:      "Driver " + id,
		Latitude:  lat,
		Longitude: lon,
		HasFix:    true,
		Available: true,
		Active:    true,
	}
}

func newAggregator(store *mockDriverStore) *Aggregator {
	return NewAggregator(store, logger.NewNop(), metrics.Nop{})
}

func TestSample_FirstSightingNotifies(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.sample(context.Background(), time.Second)

	events := rec.snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, "d1", events[0].DriverID)
}

func TestSample_JitterBelowToleranceIsSuppressed(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.sample(context.Background(), time.Second)

	// 0.00005 degrees per axis: below the 0.0001 threshold
	store.setPositions([]entity.DriverPosition{driver("d1", 5.32+0.00005, -4.01+0.00005)})
	agg.sample(context.Background(), time.Second)

	assert.Len(t, rec.snapshot(), 1, "jitter must not produce a second event")
}

func TestSample_RealMovementNotifiesOnce(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.sample(context.Background(), time.Second)

	store.setPositions([]entity.DriverPosition{driver("d1", 5.32+0.0002, -4.01)})
	agg.sample(context.Background(), time.Second)

	events := rec.snapshot()
	require.Len(t, events, 2)
	assert.InDelta(t, 5.3202, events[1].Latitude, 1e-9)
}

func TestSample_PreservesFetchOrder(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{
		driver("d1", 5.31, -4.01),
		driver("d2", 5.32, -4.02),
		driver("d3", 5.33, -4.03),
	}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.sample(context.Background(), time.Second)

	events := rec.snapshot()
	require.Len(t, events, 3)
	assert.Equal(t, "d1", events[0].DriverID)
	assert.Equal(t, "d2", events[1].DriverID)
	assert.Equal(t, "d3", events[2].DriverID)
}

func TestSample_CacheUpdatedEvenWhenUnchanged(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.sample(context.Background(), time.Second)

	// drift below tolerance twice; the cache must track the latest position
	// so the drift never accumulates into a phantom notification
	store.setPositions([]entity.DriverPosition{driver("d1", 5.32+0.00008, -4.01)})
	agg.sample(context.Background(), time.Second)
	store.setPositions([]entity.DriverPosition{driver("d1", 5.32+0.00016, -4.01)})
	agg.sample(context.Background(), time.Second)

	assert.Len(t, rec.snapshot(), 1)
}

func TestSample_FetchErrorSkipsCycle(t *testing.T) {
	store := &mockDriverStore{fetchErr: errors.New("store down")}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.sample(context.Background(), time.Second)

	assert.Empty(t, rec.snapshot())
}

func TestSample_CancelledCycleIsDiscarded(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	agg.sample(ctx, time.Second)

	assert.Empty(t, rec.snapshot())
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec1 := &recorder{}
	rec2 := &recorder{}
	token := agg.Subscribe(rec1.record)
	agg.Subscribe(rec2.record)

	agg.sample(context.Background(), time.Second)
	agg.Unsubscribe(token)
	store.setPositions([]entity.DriverPosition{driver("d1", 5.33, -4.01)})
	agg.sample(context.Background(), time.Second)

	assert.Len(t, rec1.snapshot(), 1, "unsubscribed callback must not fire again")
	assert.Len(t, rec2.snapshot(), 2, "remaining subscriber keeps receiving")
}

func TestStartStop(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.Start(20 * time.Millisecond)
	assert.True(t, agg.Running())

	// immediate first sample
	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	agg.Stop()
	assert.False(t, agg.Running())

	// no further deliveries after Stop returns
	count := len(rec.snapshot())
	store.setPositions([]entity.DriverPosition{driver("d1", 5.34, -4.01)})
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, rec.snapshot(), count)
}

func TestStart_Idempotent(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	defer agg.Stop()

	agg.Start(time.Hour)
	agg.Start(time.Hour)

	// a second Start must not spawn a second loop; one immediate sample each
	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.fetchCalled == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 1, store.fetchCalled)
}

func TestStop_ClearsSnapshotCache(t *testing.T) {
	store := &mockDriverStore{positions: []entity.DriverPosition{driver("d1", 5.32, -4.01)}}
	agg := newAggregator(store)
	rec := &recorder{}
	agg.Subscribe(rec.record)

	agg.Start(time.Hour)
	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	agg.Stop()

	// after a restart the same position counts as a first sighting again
	agg.Start(time.Hour)
	defer agg.Stop()
	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDriverLocation_BypassesCacheWhileStopped(t *testing.T) {
	pos := driver("d7", 5.35, -3.99)
	store := &mockDriverStore{byID: map[string]*entity.DriverPosition{"d7": &pos}}
	agg := newAggregator(store)

	got := agg.DriverLocation(context.Background(), "d7")

	require.NotNil(t, got)
	assert.Equal(t, "d7", got.DriverID)

	assert.Nil(t, agg.DriverLocation(context.Background(), "unknown"))
}
