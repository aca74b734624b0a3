package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/folio-tui/folio/internal/db"
	"github.com/folio-tui/folio/internal/models"
)

type memStore struct {
	values map[string]string
	getErr error
	setErr error
	writes int
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (s *memStore) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	v, ok := s.values[key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func (s *memStore) Set(ctx context.Context, key, value string) error {
	s.writes++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func TestDefaultsToDark(t *testing.T) {
	if got := New(newMemStore()).Get(); got != models.ThemeDark {
		t.Fatalf("Get() = %q, want dark", got)
	}
	if got := New(nil).Get(); got != models.ThemeDark {
		t.Fatalf("nil store Get() = %q, want dark", got)
	}
}

func TestToggleTwiceRestoresAndPersistsLast(t *testing.T) {
	store := newMemStore()
	c := New(store)

	if got := c.Toggle(); got != models.ThemeLight {
		t.Fatalf("first toggle = %q", got)
	}
	if store.values[PreferenceKey] != "light" {
		t.Fatalf("stored = %q after first toggle", store.values[PreferenceKey])
	}
	if got := c.Toggle(); got != models.ThemeDark {
		t.Fatalf("second toggle = %q", got)
	}
	if store.values[PreferenceKey] != "dark" {
		t.Fatalf("stored = %q after second toggle", store.values[PreferenceKey])
	}
	if store.writes != 2 {
		t.Fatalf("expected a write per toggle, got %d", store.writes)
	}
}

func TestReadsStoredTheme(t *testing.T) {
	store := newMemStore()
	store.values[PreferenceKey] = "light"
	if got := New(store).Get(); got != models.ThemeLight {
		t.Fatalf("Get() = %q, want light", got)
	}
}

func TestUnknownOrFailedReadFallsBackToDark(t *testing.T) {
	store := newMemStore()
	store.values[PreferenceKey] = "sepia"
	if got := New(store).Get(); got != models.ThemeDark {
		t.Fatalf("unknown value: Get() = %q", got)
	}

	store = newMemStore()
	store.getErr = errors.New("locked")
	if got := New(store).Get(); got != models.ThemeDark {
		t.Fatalf("read failure: Get() = %q", got)
	}
}

func TestWriteFailureStillFlips(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("read-only")
	c := New(store)
	if got := c.Toggle(); got != models.ThemeLight {
		t.Fatalf("Toggle() = %q", got)
	}
	if c.Get() != models.ThemeLight {
		t.Fatal("in-memory theme should flip despite write failure")
	}
}

func TestSetAndOnChange(t *testing.T) {
	var calls [][2]models.Theme
	c := New(newMemStore(), WithOnChange(func(from, to models.Theme) {
		calls = append(calls, [2]models.Theme{from, to})
	}))

	c.Set(models.ThemeDark)
	if len(calls) != 0 {
		t.Fatal("setting the current theme should not toggle")
	}
	c.Set(models.ThemeLight)
	c.Set("bogus")
	if len(calls) != 1 || calls[0] != [2]models.Theme{models.ThemeDark, models.ThemeLight} {
		t.Fatalf("unexpected change calls: %v", calls)
	}
}

func TestPersistsAcrossControllersWithSQLite(t *testing.T) {
	ctx := context.Background()
	database, err := db.OpenInMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer database.Close()
	if _, err := database.MigrateUp(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := db.NewPreferenceRepository(database)

	New(repo).Toggle()
	if got := New(repo).Get(); got != models.ThemeLight {
		t.Fatalf("second controller Get() = %q, want light", got)
	}
}
