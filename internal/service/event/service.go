package event

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/pkg/messaging"
	"github.com/totallife/clinical-api/pkg/metrics"
)

const (
	DefaultChannel = "clinic.events"
	publishTimeout = 2 * time.Second
)

// Emitter publishes change events after successful writes
type Emitter interface {
	Emit(ctx context.Context, eventType model.EventType, id string, data interface{})
}

type EventService struct {
	publisher messaging.Publisher
	channel   string
	metrics   *metrics.Metrics
}

func NewEventService(publisher messaging.Publisher, channel string, m *metrics.Metrics) *EventService {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	if channel == "" {
		channel = DefaultChannel
	}
	return &EventService{
		publisher: publisher,
		channel:   channel,
		metrics:   m,
	}
}

// Emit publishes the event. Failures are logged and counted, never
// returned: the write they describe has already been committed.
func (s *EventService) Emit(ctx context.Context, eventType model.EventType, id string, data interface{}) {
	event := model.NewChangeEvent(eventType, id, data)

	// The request may be cancelled as soon as the response is written
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.publisher.Publish(pubCtx, s.channel, event)
	s.metrics.ObserveEvent(string(eventType), err)
	if err != nil {
		log.Error().
			Err(err).
			Str("event_type", string(eventType)).
			Str("id", id).
			Msg("Failed to publish change event")
	}
}
