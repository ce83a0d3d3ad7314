package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DioGolang/GeoCourier/pkg/events"
	carrier "github.com/DioGolang/GeoCourier/pkg/otel"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
)

const positionRoutingKey = "drivers.position.changed"

// PositionPublisher fans driver movement events out to the message broker.
// It is wired as one subscriber of the live tracking aggregator.
type PositionPublisher struct {
	RabbitMQChannel *amqp.Channel
}

func NewPositionPublisher(ch *amqp.Channel) *PositionPublisher {
	return &PositionPublisher{RabbitMQChannel: ch}
}

func (p *PositionPublisher) Dispatch(ctx context.Context, event events.Event) error {
	headers := make(amqp.Table)
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(headers))
	headers["x-event-id"] = uuid.NewString()

	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return err
	}

	return p.RabbitMQChannel.PublishWithContext(
		ctx,
		"amq.topic",
		positionRoutingKey,
		false,
		false,
		amqp.Publishing{
			Headers:     headers,
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		})
}

func (p *PositionPublisher) Register(eventName string, handler events.EventHandler) error { return nil }
func (p *PositionPublisher) Remove(eventName string, handler events.EventHandler) error   { return nil }
func (p *PositionPublisher) Has(eventName string, handler events.EventHandler) bool       { return false }
func (p *PositionPublisher) Clear()                                                       {}
