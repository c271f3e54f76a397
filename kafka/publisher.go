package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	cart "github.com/tair/wastesmart-storefront/internal/cart/domain"
	"github.com/tair/wastesmart-storefront/pkg/logger"
)

// Publisher sends checkout events to Kafka
type Publisher struct {
	client   sarama.Client
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a synchronous producer to brokers
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	client, err := sarama.NewClient(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("topic", topic).
		Msg("Kafka publisher initialized")

	return &Publisher{client: client, producer: producer, topic: topic}, nil
}

// NewPublisherWithProducer uses an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

// PublishCheckoutCompleted publishes a checkout event with the caller's trace
// context in the message headers
func (p *Publisher) PublishCheckoutCompleted(ctx context.Context, checkout cart.CheckoutEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.checkout_completed",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", p.topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", EventTypeCheckoutCompleted),
			attribute.Int64("user.id", checkout.UserID),
			attribute.Int("checkout.orders", len(checkout.OrderIDs)),
		),
	)
	defer span.End()

	event := CheckoutCompletedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeCheckoutCompleted,
		SessionID: checkout.SessionID,
		UserID:    checkout.UserID,
		OrderIDs:  checkout.OrderIDs,
		Lines:     checkout.Lines,
		Total:     checkout.Total,
		Timestamp: time.Now().UTC(),
	}
	span.SetAttributes(attribute.String("event.id", event.EventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(EventTypeCheckoutCompleted)},
		{Key: []byte("event_id"), Value: []byte(event.EventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder("user_" + strconv.FormatInt(checkout.UserID, 10)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", p.topic).
			Int64("user_id", checkout.UserID).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Ints64("order_ids", checkout.OrderIDs).
		Msg("Checkout completed event published")

	return nil
}

// Ping refreshes broker metadata to prove Kafka is reachable
func (p *Publisher) Ping(context.Context) error {
	if p.client == nil {
		return nil
	}
	if len(p.client.Brokers()) == 0 {
		return fmt.Errorf("no Kafka brokers available")
	}
	return p.client.RefreshMetadata(p.topic)
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return err
		}
	}
	if p.client != nil && !p.client.Closed() {
		return p.client.Close()
	}
	return nil
}

// NoopPublisher drops events when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) PublishCheckoutCompleted(ctx context.Context, checkout cart.CheckoutEvent) error {
	logger.Debug(ctx).Ints64("order_ids", checkout.OrderIDs).Msg("Kafka disabled, checkout event dropped")
	return nil
}
