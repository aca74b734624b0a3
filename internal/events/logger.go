// Package events provides helpers for writing to the local event log.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/folio-tui/folio/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

func write(ctx context.Context, repo Repository, typ models.EventType, entity models.EntityType, id string, payload any) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s payload: %w", typ, err)
		}
		raw = data
	}
	return repo.Create(ctx, &models.Event{
		Type:       typ,
		EntityType: entity,
		EntityID:   id,
		Payload:    raw,
	})
}

// LogThemeToggled records a theme change.
func LogThemeToggled(ctx context.Context, repo Repository, from, to models.Theme) error {
	if !to.Valid() {
		return fmt.Errorf("invalid target theme %q", to)
	}
	return write(ctx, repo, models.EventTypeThemeToggled, models.EntityTypeTheme, "theme",
		models.ThemeToggledPayload{From: from, To: to})
}

// LogEasterEggFound records a completed secret phrase.
func LogEasterEggFound(ctx context.Context, repo Repository, phrase, url string) error {
	if phrase == "" {
		return fmt.Errorf("phrase is required")
	}
	return write(ctx, repo, models.EventTypeEasterEggFound, models.EntityTypeSession, phrase,
		models.EasterEggPayload{Phrase: phrase, URL: url})
}

// LogNavigated records an in-page jump to anchor.
func LogNavigated(ctx context.Context, repo Repository, anchor string, offset, widthPx int) error {
	if anchor == "" {
		return fmt.Errorf("anchor is required")
	}
	return write(ctx, repo, models.EventTypeNavigated, models.EntityTypeSection, anchor,
		models.NavigatedPayload{Anchor: anchor, Offset: offset, WidthPx: widthPx})
}

// LogLinkOpened records an outbound link being followed.
func LogLinkOpened(ctx context.Context, repo Repository, link models.SocialLink) error {
	if link.URL == "" {
		return fmt.Errorf("link url is required")
	}
	return write(ctx, repo, models.EventTypeLinkOpened, models.EntityTypeLink, string(link.Icon),
		models.LinkOpenedPayload{Label: link.Label, URL: link.URL, Target: link.Target()})
}

// LogSession records a session boundary. started selects start or end.
func LogSession(ctx context.Context, repo Repository, sessionID string, started bool) error {
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	typ := models.EventTypeSessionEnded
	if started {
		typ = models.EventTypeSessionStarted
	}
	return write(ctx, repo, typ, models.EntityTypeSession, sessionID, nil)
}
