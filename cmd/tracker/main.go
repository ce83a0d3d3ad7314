package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DioGolang/GeoCourier/configs"
	"github.com/DioGolang/GeoCourier/internal/application/usecase/tracking"
	"github.com/DioGolang/GeoCourier/internal/domain/entity"
	"github.com/DioGolang/GeoCourier/internal/infra/database"
	"github.com/DioGolang/GeoCourier/internal/infra/event"
	"github.com/DioGolang/GeoCourier/pkg/events"
	applogger "github.com/DioGolang/GeoCourier/pkg/logger"
	"github.com/DioGolang/GeoCourier/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

const serviceName = "geocourier-tracker"

// The tracker samples driver positions and republishes genuine movement to
// the broker for downstream consumers (dispatch, customer apps).
func main() {
	config, err := configs.LoadConfig(".")
	if err != nil {
		panic(err)
	}

	logg := applogger.NewLogger(serviceName, true)

	rdb := redis.NewClient(&redis.Options{
		Addr: config.RedisHost + ":" + config.RedisPort,
	})
	defer rdb.Close()

	conn, err := amqp.Dial(config.AMQPUrl)
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, serviceName)

	driverStore := database.NewRedisDriverRepository(rdb, logg)
	publisher := event.NewPositionPublisher(ch)

	tracker := tracking.NewAggregator(driverStore, logg, m)

	tracker.Subscribe(func(position entity.DriverPosition) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		evt := events.NewBase("drivers.position.changed")
		evt.SetPayload(position)
		if err := publisher.Dispatch(ctx, evt); err != nil {
			logg.Error(ctx, "position publish failed",
				applogger.String("driver_id", position.DriverID),
				applogger.WithError(err),
			)
		}
	})

	tracker.Start(time.Duration(config.TrackingIntervalMs) * time.Millisecond)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	tracker.Stop()
}
