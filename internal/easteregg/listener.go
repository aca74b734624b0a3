// Package easteregg watches typed input for a secret phrase.
package easteregg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/folio-tui/folio/internal/logging"
	"github.com/rs/zerolog"
)

const (
	// DefaultPhrase unlocks the easter egg.
	DefaultPhrase = "quantum"
	// BufferSize is how many recent characters are remembered.
	BufferSize = 10
)

// Notifier is told when the phrase is completed.
type Notifier interface {
	EasterEggFound(phrase string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(phrase string)

// EasterEggFound calls f.
func (f NotifierFunc) EasterEggFound(phrase string) { f(phrase) }

// Listener matches the phrase against the last BufferSize lowercase
// characters. It clears after each match, so the phrase can fire again.
type Listener struct {
	phrase   string
	buf      *runeRing
	notifier Notifier
	attached bool
	fired    int
	logger   zerolog.Logger
}

// New creates a detached listener. An empty phrase means DefaultPhrase.
func New(phrase string, notifier Notifier) *Listener {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		phrase = DefaultPhrase
	}
	size := BufferSize
	if n := utf8.RuneCountInString(phrase); n > size {
		size = n
	}
	return &Listener{
		phrase:   phrase,
		buf:      newRuneRing(size),
		notifier: notifier,
		logger:   logging.Component("easteregg"),
	}
}

// Attach starts accepting input.
func (l *Listener) Attach() {
	l.attached = true
}

// Detach stops accepting input and forgets anything buffered.
func (l *Listener) Detach() {
	l.attached = false
	l.buf.reset()
}

// Attached reports whether input is being accepted.
func (l *Listener) Attached() bool {
	return l.attached
}

// Phrase returns the phrase being watched for.
func (l *Listener) Phrase() string {
	return l.phrase
}

// Fired returns how many times the phrase matched.
func (l *Listener) Fired() int {
	return l.fired
}

// Buffer returns the currently remembered characters.
func (l *Listener) Buffer() string {
	return l.buf.String()
}

// Feed records typed text and reports whether the phrase matched. Control
// characters are skipped.
func (l *Listener) Feed(text string) bool {
	if !l.attached {
		return false
	}
	matched := false
	for _, r := range strings.ToLower(text) {
		if !unicode.IsPrint(r) {
			continue
		}
		l.buf.add(r)
		if strings.Contains(l.buf.String(), l.phrase) {
			l.buf.reset()
			l.fired++
			matched = true
			l.logger.Info().Str("phrase", l.phrase).Int("count", l.fired).Msg("easter egg found")
			if l.notifier != nil {
				l.notifier.EasterEggFound(l.phrase)
			}
		}
	}
	return matched
}
