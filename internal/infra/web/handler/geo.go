package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DioGolang/GeoCourier/internal/application/usecase/location"
	"github.com/DioGolang/GeoCourier/internal/application/usecase/tracking"
	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

// Geo exposes the resolver and the tracker over HTTP. Invalid or missing
// parameters produce empty results, not errors: the core is a best-effort
// enrichment layer and must never block the caller's flow.
type Geo struct {
	Resolver location.Resolver
	Tracker  *tracking.Aggregator
}

func NewGeoHandler(resolver location.Resolver, tracker *tracking.Aggregator) *Geo {
	return &Geo{Resolver: resolver, Tracker: tracker}
}

func (h *Geo) SmartSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit := intParam(r, "limit", 10)

	writeJSON(w, h.Resolver.SmartSearch(r.Context(), q, limit))
}

func (h *Geo) Nearest(w http.ResponseWriter, r *http.Request) {
	lat := floatParam(r, "lat")
	lon := floatParam(r, "lon")
	radius := floatParamDefault(r, "radius", 10)
	limit := intParam(r, "limit", 5)

	results := h.Resolver.FindNearestLocations(r.Context(), lat, lon, radius, limit)
	if results == nil {
		results = []entity.NearestLocation{}
	}
	writeJSON(w, results)
}

func (h *Geo) Fee(w http.ResponseWriter, r *http.Request) {
	lat := floatParam(r, "lat")
	lon := floatParam(r, "lon")

	writeJSON(w, h.Resolver.DeliveryFee(r.Context(), lat, lon))
}

func (h *Geo) Locations(w http.ResponseWriter, r *http.Request) {
	var results []entity.DeliveryLocation
	query := r.URL.Query()

	switch {
	case query.Get("district") != "":
		results = h.Resolver.LocationsByDistrict(r.Context(), query.Get("district"))
	case query.Get("zone_type") != "":
		results = h.Resolver.LocationsByZoneType(r.Context(), entity.ZoneType(query.Get("zone_type")))
	default:
		results = h.Resolver.SearchLocations(r.Context(), query.Get("q"), intParam(r, "limit", 20))
	}

	if results == nil {
		results = []entity.DeliveryLocation{}
	}
	writeJSON(w, results)
}

func (h *Geo) Landmarks(w http.ResponseWriter, r *http.Request) {
	var results []entity.Landmark

	if landmarkType := r.URL.Query().Get("type"); landmarkType != "" {
		results = h.Resolver.LandmarksByType(r.Context(), entity.LandmarkType(landmarkType))
	} else {
		results = h.Resolver.SearchLandmarks(r.Context(), r.URL.Query().Get("q"), intParam(r, "limit", 20))
	}

	if results == nil {
		results = []entity.Landmark{}
	}
	writeJSON(w, results)
}

func (h *Geo) Reverse(w http.ResponseWriter, r *http.Request) {
	lat := floatParam(r, "lat")
	lon := floatParam(r, "lon")

	place := h.Resolver.ReverseGeocode(r.Context(), lat, lon)
	if place == nil {
		http.Error(w, "no match", http.StatusNotFound)
		return
	}
	writeJSON(w, place)
}

func (h *Geo) Validate(w http.ResponseWriter, r *http.Request) {
	lat := floatParam(r, "lat")
	lon := floatParam(r, "lon")

	writeJSON(w, map[string]bool{"valid": h.Resolver.IsValidGPS(lat, lon)})
}

func (h *Geo) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Resolver.Stats(r.Context()))
}

func (h *Geo) DriverPosition(w http.ResponseWriter, r *http.Request) {
	driverID := chi.URLParam(r, "id")

	position := h.Tracker.DriverLocation(r.Context(), driverID)
	if position == nil {
		http.Error(w, "driver not found", http.StatusNotFound)
		return
	}
	writeJSON(w, position)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func intParam(r *http.Request, name string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func floatParam(r *http.Request, name string) float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return 0
	}
	return v
}

func floatParamDefault(r *http.Request, name string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64); err == nil && v > 0 {
		return v
	}
	return fallback
}
