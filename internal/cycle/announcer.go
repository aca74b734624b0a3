// Package cycle rotates a headline through a fixed word list on a timer.
package cycle

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the time between words.
const DefaultInterval = 2 * time.Second

var lastID int64

// TickMsg advances an Announcer. Ticks carry the announcer id and the timer
// generation that armed them; anything else is stale and ignored.
type TickMsg struct {
	id  int64
	gen int
}

// Announcer holds the word list and the current index. The index is always
// valid into the word list.
type Announcer struct {
	id       int64
	words    []string
	index    int
	interval time.Duration
	gen      int
	running  bool
}

// New creates an announcer at index 0. An empty list becomes a single empty
// word so Current never panics.
func New(words []string, interval time.Duration) *Announcer {
	if len(words) == 0 {
		words = []string{""}
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := make([]string, len(words))
	copy(w, words)
	return &Announcer{
		id:       atomic.AddInt64(&lastID, 1),
		words:    w,
		interval: interval,
	}
}

// Current returns the word at the current index.
func (a *Announcer) Current() string {
	return a.words[a.index]
}

// Index returns the current index.
func (a *Announcer) Index() int {
	return a.index
}

// Len returns the number of words.
func (a *Announcer) Len() int {
	return len(a.words)
}

// Advance moves to the next word, wrapping at the end.
func (a *Announcer) Advance() int {
	a.index = (a.index + 1) % len(a.words)
	return a.index
}

// Running reports whether a timer is armed.
func (a *Announcer) Running() bool {
	return a.running
}

// Start arms the recurring timer. Calling Start again replaces the previous
// timer rather than adding a second one.
func (a *Announcer) Start() tea.Cmd {
	a.gen++
	a.running = true
	return a.tick()
}

// Stop releases the timer. A tick already in flight is dropped by Update.
func (a *Announcer) Stop() {
	if !a.running {
		return
	}
	a.gen++
	a.running = false
}

// Update advances on a current tick and re-arms. It reports whether the
// word changed.
func (a *Announcer) Update(msg tea.Msg) (tea.Cmd, bool) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.id != a.id || tick.gen != a.gen || !a.running {
		return nil, false
	}
	a.Advance()
	return a.tick(), true
}

func (a *Announcer) tick() tea.Cmd {
	id, gen := a.id, a.gen
	return tea.Tick(a.interval, func(time.Time) tea.Msg {
		return TickMsg{id: id, gen: gen}
	})
}
