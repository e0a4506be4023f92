// Package constants holds configuration values shared across layers.
package constants

// Event publishing providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// OrderEventsSubscription is the subscription name used by the local push publisher.
const OrderEventsSubscription = "projects/local/subscriptions/order-events-sub"
