package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/DioGolang/GeoCourier/configs"
	"github.com/DioGolang/GeoCourier/internal/application/usecase/location"
	"github.com/DioGolang/GeoCourier/internal/application/usecase/tracking"
	"github.com/DioGolang/GeoCourier/internal/infra/database"
	"github.com/DioGolang/GeoCourier/internal/infra/geocoding"
	"github.com/DioGolang/GeoCourier/internal/infra/web/handler"
	webmiddleware "github.com/DioGolang/GeoCourier/internal/infra/web/middleware"
	"github.com/DioGolang/GeoCourier/pkg/geo"
	applogger "github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
	appotel "github.com/DioGolang/GeoCourier/pkg/otel"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

const serviceName = "geocourier-api"

func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	logg := applogger.NewLogger(serviceName, true)

	if config.OtelCollector != "" {
		shutdown, err := appotel.InitProvider(ctx, serviceName, config.OtelCollector)
		if err != nil {
			panic(err)
		}
		defer shutdown()
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := sql.Open(config.DBDriver, dsn)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		panic(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: config.RedisHost + ":" + config.RedisPort,
	})
	defer rdb.Close()

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, serviceName)

	bounds := geo.BoundingBox{
		MinLat: config.RegionMinLat,
		MaxLat: config.RegionMaxLat,
		MinLon: config.RegionMinLon,
		MaxLon: config.RegionMaxLon,
	}

	geocoder := geocoding.NewCachedGeocoder(
		geocoding.NewClient(config.GeocoderBaseURL, config.GeocoderUserAgent, config.GeocoderLanguage, logg, m),
		rdb,
		24*time.Hour,
		logg,
		m,
	)

	locationStore := database.NewLocationRepository(db)
	driverStore := database.NewRedisDriverRepository(rdb, logg)

	var resolver location.Resolver = location.NewResolver(locationStore, geocoder, bounds, config.GeocoderCountry, logg, m)
	resolver = &location.ResolverMetricsDecorator{Next: resolver, Metrics: m}

	tracker := tracking.NewAggregator(driverStore, logg, m)

	geoHandler := handler.NewGeoHandler(resolver, tracker)

	rateLimiter := webmiddleware.NewRateLimiter(webmiddleware.RateLimiterConfig{
		RequestsPerSecond: 20,
		Burst:             40,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(webmiddleware.RequestLogger(logg))
	r.Use(webmiddleware.MetricsWrapper(m))
	r.Use(rateLimiter.Handler(logg))

	r.Route("/api/v1/geo", func(r chi.Router) {
		r.Get("/search", geoHandler.SmartSearch)
		r.Get("/nearest", geoHandler.Nearest)
		r.Get("/fee", geoHandler.Fee)
		r.Get("/locations", geoHandler.Locations)
		r.Get("/landmarks", geoHandler.Landmarks)
		r.Get("/reverse", geoHandler.Reverse)
		r.Get("/validate", geoHandler.Validate)
		r.Get("/stats", geoHandler.Stats)
	})
	r.Get("/api/v1/drivers/{id}/position", geoHandler.DriverPosition)

	r.Handle("/healthz", handler.NewHealthHandler(serviceName,
		handler.WithPostgres(db),
		handler.WithRedis(rdb),
	))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	fmt.Println("Server running on port", config.WebServerPort)

	log.Fatal(http.ListenAndServe(":"+config.WebServerPort, r))
}
