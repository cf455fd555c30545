package builder

import (
	"context"

	"github.com/alexisbeaulieu97/formsmith/internal/ports"
)

// Severity hints how a presentation layer should surface an event.
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
)

type domainEvent struct {
	eventType string
	payload   map[string]interface{}
}

func (e domainEvent) EventType() string {
	return e.eventType
}

func (e domainEvent) Payload() interface{} {
	return e.payload
}

// notification is a pending event, built under the store lock and published
// after it is released.
type notification struct {
	eventType string
	payload   map[string]interface{}
}

func notify(eventType, severity, message string, fields ...interface{}) *notification {
	payload := map[string]interface{}{
		"message":  message,
		"severity": severity,
	}
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			payload[key] = fields[i+1]
		}
	}
	return &notification{eventType: eventType, payload: payload}
}

func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, eventType string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	event := domainEvent{
		eventType: eventType,
		payload:   payload,
	}
	if err := publisher.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn(ctx, "failed to publish domain event", "event_type", eventType, "error", err)
	}
}
