// Package events describes row change notifications and fans them out to sinks.
package events

import (
	"context"
	"time"

	"bizops-dashboard/pkg/kafka"
	"bizops-dashboard/pkg/log"
)

// Actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event tells clients which cached query keys to invalidate.
type Event struct {
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	ID       uint      `json:"id"`
	Brand    string    `json:"brand"`
	At       time.Time `json:"at"`
}

// Publisher receives change events. Publish must not block on slow consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, e Event)

func (f PublisherFunc) Publish(ctx context.Context, e Event) { f(ctx, e) }

// Multi delivers each event to every publisher in order.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) {
	for _, p := range m {
		if p != nil {
			p.Publish(ctx, e)
		}
	}
}

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) {}

type kafkaPublisher struct {
	producer *kafka.Producer
}

// NewKafkaPublisher forwards events to the change-event topic, keyed by resource.
func NewKafkaPublisher(producer *kafka.Producer) Publisher {
	return &kafkaPublisher{producer: producer}
}

func (k *kafkaPublisher) Publish(ctx context.Context, e Event) {
	if err := k.producer.PublishEvent(ctx, e.Resource, e); err != nil {
		log.Warnf("failed to publish %s %s event for id %d: %v", e.Resource, e.Action, e.ID, err)
	}
}
