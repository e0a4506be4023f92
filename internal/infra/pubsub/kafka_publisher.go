package pubsub

import (
	"context"
	"log/slog"
	"time"

	"supplyhub/config"
	"supplyhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const defaultKafkaWriteTimeout = 5 * time.Second

// messageWriter is the subset of *kafka.Writer used by the publisher
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Messages are keyed by order ID so events of one order stay on one partition.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to cfg.Topic
func NewKafkaPublisher(cfg *config.KafkaConfig, logger *slog.Logger) service.EventPublisher {
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultKafkaWriteTimeout
	}

	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           writeTimeout,
		MaxAttempts:            3,
		AllowAutoTopicCreation: false,
	}, logger)
}

func newKafkaPublisher(writer messageWriter, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, logger: logger}
}

// PublishOrderPlaced writes the event synchronously
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	om, err := newOrderMessage(event)
	if err != nil {
		return err
	}

	headers := make([]kafka.Header, 0, len(om.attributes))
	for key, value := range om.attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	msg := kafka.Message{
		Key:     []byte(om.key),
		Value:   om.data,
		Headers: headers,
		Time:    event.CreatedAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to write order event to kafka")
	}

	p.logger.Debug("[Kafka] Event published",
		slog.String("order_id", event.OrderID.String()),
	)

	return nil
}

// Close flushes pending writes and closes the writer
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
