package events

import (
	"context"
	"time"

	"github.com/folio-tui/folio/internal/logging"
	"github.com/folio-tui/folio/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const writeTimeout = 2 * time.Second

// Recorder writes events for interactive callers that must not fail on a
// storage error. Failures are logged and dropped.
type Recorder struct {
	repo      Repository
	sessionID string
	logger    zerolog.Logger
}

// NewRecorder returns a Recorder bound to a fresh session id. A nil repo
// yields a recorder that discards everything.
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{
		repo:      repo,
		sessionID: uuid.New().String(),
		logger:    logging.Component("events"),
	}
}

// SessionID identifies this run.
func (r *Recorder) SessionID() string {
	if r == nil {
		return ""
	}
	return r.sessionID
}

func (r *Recorder) do(name string, fn func(context.Context, Repository) error) {
	if r == nil || r.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := fn(ctx, r.repo); err != nil {
		r.logger.Warn().Err(err).Str("event", name).Msg("failed to record event")
	}
}

// SessionStarted records the start of this run.
func (r *Recorder) SessionStarted() {
	r.do("session.started", func(ctx context.Context, repo Repository) error {
		return LogSession(ctx, repo, r.sessionID, true)
	})
}

// SessionEnded records the end of this run.
func (r *Recorder) SessionEnded() {
	r.do("session.ended", func(ctx context.Context, repo Repository) error {
		return LogSession(ctx, repo, r.sessionID, false)
	})
}

// ThemeToggled records a theme change.
func (r *Recorder) ThemeToggled(from, to models.Theme) {
	r.do("theme.toggled", func(ctx context.Context, repo Repository) error {
		return LogThemeToggled(ctx, repo, from, to)
	})
}

// EasterEggFound records a completed secret phrase.
func (r *Recorder) EasterEggFound(phrase, url string) {
	r.do("easter_egg.found", func(ctx context.Context, repo Repository) error {
		return LogEasterEggFound(ctx, repo, phrase, url)
	})
}

// Navigated records an in-page jump.
func (r *Recorder) Navigated(anchor string, offset, widthPx int) {
	r.do("nav.navigated", func(ctx context.Context, repo Repository) error {
		return LogNavigated(ctx, repo, anchor, offset, widthPx)
	})
}

// LinkOpened records an outbound link being followed.
func (r *Recorder) LinkOpened(link models.SocialLink) {
	r.do("link.opened", func(ctx context.Context, repo Repository) error {
		return LogLinkOpened(ctx, repo, link)
	})
}
