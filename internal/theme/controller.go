// Package theme holds the display theme and persists it on every toggle.
package theme

import (
	"context"
	"sync"
	"time"

	"github.com/folio-tui/folio/internal/logging"
	"github.com/folio-tui/folio/internal/models"
	"github.com/rs/zerolog"
)

// PreferenceKey is the storage key for the theme.
const PreferenceKey = "theme"

const storeTimeout = 2 * time.Second

// Store is a durable key/value store.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ChangeFunc observes a completed toggle.
type ChangeFunc func(from, to models.Theme)

// Controller owns the current theme. Storage failures never surface: reads
// fall back to the default and writes are logged and dropped.
type Controller struct {
	mu       sync.Mutex
	current  models.Theme
	store    Store
	onChange ChangeFunc
	logger   zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers a callback fired after each toggle.
func WithOnChange(fn ChangeFunc) Option {
	return func(c *Controller) { c.onChange = fn }
}

// New reads the stored preference once. A nil store keeps the theme in memory.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		current: models.DefaultTheme,
		store:   store,
		logger:  logging.Component("theme"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.current = c.load()
	return c
}

func (c *Controller) load() models.Theme {
	if c.store == nil {
		return models.DefaultTheme
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, err := c.store.Get(ctx, PreferenceKey)
	if err != nil {
		c.logger.Debug().Err(err).Msg("no stored theme, using default")
		return models.DefaultTheme
	}
	t, err := models.ParseTheme(raw)
	if err != nil {
		c.logger.Warn().Str("value", raw).Msg("ignoring unknown stored theme")
		return models.DefaultTheme
	}
	return t
}

// Get returns the current theme.
func (c *Controller) Get() models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Toggle flips the theme, writes it through, and returns the new value.
func (c *Controller) Toggle() models.Theme {
	c.mu.Lock()
	from := c.current
	to := from.Opposite()
	c.current = to
	c.mu.Unlock()

	c.persist(to)
	if c.onChange != nil {
		c.onChange(from, to)
	}
	return to
}

// Set forces a specific theme. It is a toggle when t differs from the
// current value and a no-op otherwise.
func (c *Controller) Set(t models.Theme) models.Theme {
	if !t.Valid() || t == c.Get() {
		return c.Get()
	}
	return c.Toggle()
}

func (c *Controller) persist(t models.Theme) {
	if c.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := c.store.Set(ctx, PreferenceKey, t.String()); err != nil {
		c.logger.Warn().Err(err).Str("theme", t.String()).Msg("failed to persist theme")
	}
}
