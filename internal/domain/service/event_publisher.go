package service

import (
	"context"

	"quickdash/internal/domain/entity"
)

// LocationEventBus carries location-changed events between components of one session.
type LocationEventBus interface {
	// Publish delivers the event to every current subscriber.
	Publish(ctx context.Context, event entity.LocationChangedEvent) error

	// Subscribe returns a stream of events published after the call, closed when ctx is done.
	Subscribe(ctx context.Context) (<-chan entity.LocationChangedEvent, error)

	// Close releases any resources held by the bus
	Close() error
}
