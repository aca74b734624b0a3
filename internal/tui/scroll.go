package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const scrollFrame = time.Second / 60

type scrollTickMsg struct {
	gen int
}

// scroller eases the viewport toward a target line one frame at a time.
type scroller struct {
	target  int
	gen     int
	active  bool
	pending tea.Cmd
}

// SmoothScrollTo starts (or retargets) the animation.
func (s *scroller) SmoothScrollTo(line int) {
	s.target = line
	s.gen++
	s.active = true
	gen := s.gen
	s.pending = tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollTickMsg{gen: gen}
	})
}

// cancel stops the animation. In-flight frames are ignored.
func (s *scroller) cancel() {
	s.gen++
	s.active = false
	s.pending = nil
}

// takePending returns the command armed by the last SmoothScrollTo.
func (s *scroller) takePending() tea.Cmd {
	cmd := s.pending
	s.pending = nil
	return cmd
}

// step returns the next offset moving from current toward the target.
func (s *scroller) step(current, maxOffset int) (int, bool) {
	target := s.target
	if target > maxOffset {
		target = maxOffset
	}
	if target < 0 {
		target = 0
	}
	diff := target - current
	if diff == 0 {
		s.active = false
		return current, true
	}
	delta := diff / 4
	if delta == 0 {
		if diff > 0 {
			delta = 1
		} else {
			delta = -1
		}
	}
	next := current + delta
	if next == target {
		s.active = false
		return next, true
	}
	return next, false
}

func (s *scroller) nextFrame() tea.Cmd {
	gen := s.gen
	return tea.Tick(scrollFrame, func(time.Time) tea.Msg {
		return scrollTickMsg{gen: gen}
	})
}
