package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType categorizes events in the local log.
type EventType string

const (
	EventTypeThemeToggled   EventType = "theme.toggled"
	EventTypeEasterEggFound EventType = "easter_egg.found"
	EventTypeNavigated      EventType = "nav.navigated"
	EventTypeLinkOpened     EventType = "link.opened"
	EventTypeSessionStarted EventType = "session.started"
	EventTypeSessionEnded   EventType = "session.ended"
)

// EntityType identifies what an event relates to.
type EntityType string

const (
	EntityTypeTheme   EntityType = "theme"
	EntityTypeSection EntityType = "section"
	EntityTypeSession EntityType = "session"
	EntityTypeLink    EntityType = "link"
)

// Event represents an append-only log entry.
type Event struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	Type       EventType         `json:"type"`
	EntityType EntityType        `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Payload    json.RawMessage   `json:"payload,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Validate checks required fields.
func (e *Event) Validate() error {
	var missing []string
	if strings.TrimSpace(string(e.Type)) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		missing = append(missing, "entity_type")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		missing = append(missing, "entity_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid event: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// ThemeToggledPayload is the payload for theme.toggled events.
type ThemeToggledPayload struct {
	From Theme `json:"from"`
	To   Theme `json:"to"`
}

// EasterEggPayload is the payload for easter_egg.found events.
type EasterEggPayload struct {
	Phrase string `json:"phrase"`
	URL    string `json:"url,omitempty"`
}

// NavigatedPayload is the payload for nav.navigated events.
type NavigatedPayload struct {
	Anchor  string `json:"anchor"`
	Offset  int    `json:"offset_px"`
	WidthPx int    `json:"width_px"`
}

// LinkOpenedPayload is the payload for link.opened events. Target is
// "_self" for downloads and "_blank" otherwise.
type LinkOpenedPayload struct {
	Label  string `json:"label"`
	URL    string `json:"url"`
	Target string `json:"target"`
}
