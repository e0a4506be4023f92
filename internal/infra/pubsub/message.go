package pubsub

import (
	"encoding/json"
	"strings"

	"supplyhub/internal/domain/service"

	"github.com/pkg/errors"
)

const eventTypeOrderPlaced = "order.placed"

// orderMessage is the provider-neutral encoding of an order event.
// Every publisher ships the same payload, key and attributes.
type orderMessage struct {
	key        string
	data       []byte
	attributes map[string]string
}

func newOrderMessage(event *service.OrderPlacedEvent) (*orderMessage, error) {
	if event == nil {
		return nil, errors.New("nil order event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order event")
	}

	return &orderMessage{
		key:        event.OrderID.String(),
		data:       data,
		attributes: orderAttributes(event),
	}, nil
}

// orderAttributes builds the routing attributes attached to every provider's message
func orderAttributes(event *service.OrderPlacedEvent) map[string]string {
	supplierIDs := make([]string, len(event.SupplierIDs))
	for i, id := range event.SupplierIDs {
		supplierIDs[i] = id.String()
	}

	attributes := map[string]string{
		"event_type":   eventTypeOrderPlaced,
		"order_id":     event.OrderID.String(),
		"branch_id":    event.BranchID.String(),
		"supplier_ids": strings.Join(supplierIDs, ","),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
