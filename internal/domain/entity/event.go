package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType is the severity class of a device event.
type EventType string

// The closed set of accepted event types. Events submitted with any other
// type are dropped before insert; a row with an out-of-set type must never
// reach storage.
const (
	EventTypeSuccess EventType = "success"
	EventTypeWarning EventType = "warning"
	EventTypeError   EventType = "error"
	EventTypeInfo    EventType = "info"
	EventTypeSystem  EventType = "system"
)

var validEventTypes = map[EventType]struct{}{
	EventTypeSuccess: {},
	EventTypeWarning: {},
	EventTypeError:   {},
	EventTypeInfo:    {},
	EventTypeSystem:  {},
}

// NormalizeEventType lowercases the raw type and tests membership in the
// closed severity set. The second return value reports whether the type is
// accepted. Pure predicate, no side effects.
func NormalizeEventType(raw string) (EventType, bool) {
	normalized := EventType(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := validEventTypes[normalized]

	return normalized, ok
}

// Event is a single device event stored during ingestion. Events are
// immutable after insert.
type Event struct {
	ID        uuid.UUID      `json:"id"`
	DeviceID  string         `json:"device_id"`
	Type      EventType      `json:"type"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
