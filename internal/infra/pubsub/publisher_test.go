package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"supplyhub/config"
	"supplyhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		RequestID:    "req-1",
		OrderID:      uuid.New(),
		BranchID:     uuid.New(),
		SupplierIDs:  []uuid.UUID{uuid.New(), uuid.New()},
		TotalPrice:   decimal.RequireFromString("36.50"),
		DeliveryDate: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		CreatedAt:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOrderPlaced(t *testing.T) {
	event := newTestEvent()

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.OrderID.String(), received.Message.MessageID)
	assert.Equal(t, "order.placed", received.Message.Attributes["event_type"])

	assert.Equal(t, event.OrderID.String(), received.Message.OrderingKey)

	var decoded service.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(received.Message.Data, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.True(t, event.TotalPrice.Equal(decoded.TotalPrice))
	assert.Equal(t, event.SupplierIDs, decoded.SupplierIDs)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishOrderPlaced(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByOrderID(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishOrderPlaced(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.OrderID.String(), string(msg.Key))
	assert.Equal(t, event.CreatedAt, msg.Time)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-1", headers["request_id"])
	assert.Equal(t, event.BranchID.String(), headers["branch_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: assert.AnError}
	publisher := newKafkaPublisher(writer, newDiscardLogger())

	err := publisher.PublishOrderPlaced(context.Background(), newTestEvent())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
		check   func(t *testing.T, publisher service.EventPublisher)
	}{
		{
			name: "not configured",
			cfg:  nil,
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, publisher)
			},
		},
		{
			name: "local",
			cfg:  &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/events"},
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, publisher)
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: "local"},
			wantErr: true,
		},
		{
			name: "kafka",
			cfg: &config.PubSubConfig{
				Provider: "kafka",
				Kafka:    &config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "order-events"},
			},
			check: func(t *testing.T, publisher service.EventPublisher) {
				assert.IsType(t, &kafkaPublisher{}, publisher)
			},
		},
		{
			name:    "kafka without brokers",
			cfg:     &config.PubSubConfig{Provider: "kafka", Kafka: &config.KafkaConfig{Topic: "order-events"}},
			wantErr: true,
		},
		{
			name:    "google without project",
			cfg:     &config.PubSubConfig{Provider: "google", TopicID: "order-events"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "carrier-pigeon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Config: &config.Config{PubSub: tt.cfg},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
		})
	}
}

func TestNewOrderMessage(t *testing.T) {
	t.Run("nil event", func(t *testing.T) {
		_, err := newOrderMessage(nil)
		require.Error(t, err)
	})

	t.Run("supplier ids are joined in order", func(t *testing.T) {
		event := newTestEvent()
		om, err := newOrderMessage(event)
		require.NoError(t, err)

		assert.Equal(t, event.OrderID.String(), om.key)
		assert.Equal(t,
			event.SupplierIDs[0].String()+","+event.SupplierIDs[1].String(),
			om.attributes["supplier_ids"],
		)
	})

	t.Run("request id is omitted when empty", func(t *testing.T) {
		event := newTestEvent()
		event.RequestID = ""
		om, err := newOrderMessage(event)
		require.NoError(t, err)

		_, ok := om.attributes["request_id"]
		assert.False(t, ok)
	})
}
