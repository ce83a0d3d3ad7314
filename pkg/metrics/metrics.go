package metrics

import "time"

type Metrics interface {
	// Business
	RecordGeocodeRequest(operation, status string)
	RecordFallback(operation string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Live tracking
	ObserveTrackingCycle(duration time.Duration, drivers, changed int)

	// Infrastructure (HTTP)
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)

	// Performance and Resilience
	IncCacheHit(cacheType string)
	IncCacheMiss(cacheType string)
}
