package metrics

import "time"

// Nop discards every measurement. Used by tests and one-off tooling.
type Nop struct{}

func (Nop) RecordGeocodeRequest(string, string)                       {}
func (Nop) RecordFallback(string)                                     {}
func (Nop) RecordUseCaseExecution(string, bool, time.Duration)        {}
func (Nop) ObserveTrackingCycle(time.Duration, int, int)              {}
func (Nop) ObserveHTTPRequestDuration(string, string, string, float64) {}
func (Nop) IncCacheHit(string)                                        {}
func (Nop) IncCacheMiss(string)                                       {}
