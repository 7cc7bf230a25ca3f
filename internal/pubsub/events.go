// Package pubsub fans events out from background producers (the notes
// watcher, the logger) to the Bubble Tea update loop.
package pubsub

import (
	"context"
	"time"
)

// EventType says what happened to the payload.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event is one published value, stamped when the broker accepted it.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

var _ Subscriber[struct{}] = (*Broker[struct{}])(nil)

// Subscriber hands out event channels. Each channel stays open until the
// context passed to Subscribe is done or the source shuts down.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}
