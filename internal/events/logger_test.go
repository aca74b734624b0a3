package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/folio-tui/folio/internal/models"
)

type fakeRepo struct {
	events []*models.Event
	err    error
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeRepo) last() *models.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func TestLogThemeToggled(t *testing.T) {
	repo := &fakeRepo{}
	if err := LogThemeToggled(context.Background(), repo, models.ThemeDark, models.ThemeLight); err != nil {
		t.Fatalf("LogThemeToggled failed: %v", err)
	}
	ev := repo.last()
	if ev == nil || ev.Type != models.EventTypeThemeToggled {
		t.Fatalf("unexpected event: %+v", ev)
	}
	var p models.ThemeToggledPayload
	if err := json.Unmarshal(ev.Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.From != models.ThemeDark || p.To != models.ThemeLight {
		t.Fatalf("unexpected payload: %+v", p)
	}
	if err := LogThemeToggled(context.Background(), repo, models.ThemeDark, "sepia"); err == nil {
		t.Fatal("expected error for invalid theme")
	}
}

func TestLogEasterEggFound(t *testing.T) {
	repo := &fakeRepo{}
	if err := LogEasterEggFound(context.Background(), repo, "quantum", "https://github.com/x"); err != nil {
		t.Fatalf("LogEasterEggFound failed: %v", err)
	}
	if repo.last().EntityID != "quantum" {
		t.Fatalf("unexpected entity id: %q", repo.last().EntityID)
	}
	if err := LogEasterEggFound(context.Background(), repo, "", ""); err == nil {
		t.Fatal("expected error for empty phrase")
	}
}

func TestLogNavigated(t *testing.T) {
	repo := &fakeRepo{}
	if err := LogNavigated(context.Background(), repo, "projects", -50, 700); err != nil {
		t.Fatalf("LogNavigated failed: %v", err)
	}
	var p models.NavigatedPayload
	if err := json.Unmarshal(repo.last().Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.Offset != -50 || p.WidthPx != 700 || p.Anchor != "projects" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestLogLinkOpened(t *testing.T) {
	repo := &fakeRepo{}
	resume := models.SocialLink{Label: "Resume", URL: "https://example.dev/cv.pdf", Icon: models.IconResume, Download: true}
	if err := LogLinkOpened(context.Background(), repo, resume); err != nil {
		t.Fatalf("LogLinkOpened failed: %v", err)
	}
	ev := repo.last()
	if ev.Type != models.EventTypeLinkOpened || ev.EntityType != models.EntityTypeLink || ev.EntityID != "resume" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	var p models.LinkOpenedPayload
	if err := json.Unmarshal(ev.Payload, &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.Target != "_self" || p.URL != resume.URL {
		t.Fatalf("unexpected payload: %+v", p)
	}
	if err := LogLinkOpened(context.Background(), repo, models.SocialLink{Label: "x"}); err == nil {
		t.Fatal("expected error for empty url")
	}
}

func TestLogRequiresRepository(t *testing.T) {
	if err := LogNavigated(context.Background(), nil, "home", -80, 1024); err == nil {
		t.Fatal("expected error for nil repository")
	}
}

func TestRecorderSwallowsErrors(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk full")}
	rec := NewRecorder(repo)
	rec.ThemeToggled(models.ThemeDark, models.ThemeLight)
	rec.Navigated("about", -80, 1280)
	if len(repo.events) != 0 {
		t.Fatalf("expected no events, got %d", len(repo.events))
	}
}

func TestRecorderSession(t *testing.T) {
	repo := &fakeRepo{}
	rec := NewRecorder(repo)
	rec.SessionStarted()
	rec.EasterEggFound("quantum", "")
	rec.SessionEnded()

	if len(repo.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(repo.events))
	}
	if repo.events[0].Type != models.EventTypeSessionStarted || repo.events[2].Type != models.EventTypeSessionEnded {
		t.Fatalf("unexpected session events: %s, %s", repo.events[0].Type, repo.events[2].Type)
	}
	if repo.events[0].EntityID != rec.SessionID() {
		t.Fatalf("session id mismatch")
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.SessionStarted()
	rec.ThemeToggled(models.ThemeDark, models.ThemeLight)
	if rec.SessionID() != "" {
		t.Fatal("nil recorder has no session")
	}
	NewRecorder(nil).Navigated("home", -80, 1024)
}
