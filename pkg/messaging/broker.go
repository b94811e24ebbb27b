package messaging

import (
	"context"
)

// Publisher delivers change events to subscribers outside the API
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}

// NopPublisher discards every message. It is used when no broker is
// configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, channel string, message interface{}) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
