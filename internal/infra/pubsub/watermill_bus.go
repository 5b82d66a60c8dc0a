package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"quickdash/internal/domain/entity"
	"quickdash/internal/domain/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TopicLocationChanged is the only topic carried by the bus.
const TopicLocationChanged = "location-changed"

const (
	metadataSource  = "source"
	metadataSession = "session_id"
)

// locationEventBus delivers location-changed events in publish order to every subscriber.
type locationEventBus struct {
	pubSub    *gochannel.GoChannel
	logger    *slog.Logger
	sessionID string
	buffer    int
}

// NewLocationEventBus creates an in-process bus backed by a watermill go channel.
// Events published without a session id are stamped with sessionID.
func NewLocationEventBus(logger *slog.Logger, sessionID string, buffer int) service.LocationEventBus {
	if buffer <= 0 {
		buffer = 64
	}

	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            int64(buffer),
		BlockPublishUntilSubscriberAck: true,
	}, watermill.NewSlogLogger(logger))

	return &locationEventBus{
		pubSub:    pubSub,
		logger:    logger,
		sessionID: sessionID,
		buffer:    buffer,
	}
}

func (b *locationEventBus) Publish(ctx context.Context, event entity.LocationChangedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.SessionID == "" {
		event.SessionID = b.sessionID
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal location event")
	}

	msg := message.NewMessage(event.EventID, payload)
	msg.Metadata.Set(metadataSource, string(event.Source))
	msg.Metadata.Set(metadataSession, event.SessionID)
	msg.SetContext(ctx)

	if err := b.pubSub.Publish(TopicLocationChanged, msg); err != nil {
		return errors.Wrap(err, "failed to publish location event")
	}

	b.logger.Debug("Published location event",
		slog.String("event_id", event.EventID),
		slog.String("source", string(event.Source)),
	)

	return nil
}

func (b *locationEventBus) Subscribe(ctx context.Context) (<-chan entity.LocationChangedEvent, error) {
	messages, err := b.pubSub.Subscribe(ctx, TopicLocationChanged)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to location events")
	}

	out := make(chan entity.LocationChangedEvent, b.buffer)
	go func() {
		defer close(out)

		for msg := range messages {
			var event entity.LocationChangedEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				b.logger.Warn("Dropping malformed location event",
					slog.String("message_uuid", msg.UUID),
					slog.Any("error", err),
				)
				msg.Ack()

				continue
			}
			msg.Ack()

			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (b *locationEventBus) Close() error {
	return errors.WithStack(b.pubSub.Close())
}
