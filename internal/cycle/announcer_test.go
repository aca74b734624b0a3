package cycle

import (
	"testing"
	"time"
)

func TestAdvanceWrapsModuloLength(t *testing.T) {
	a := New([]string{"Code", "Develop", "Test", "Deploy"}, 0)
	want := []int{0, 1, 2, 3, 0, 1, 2, 3, 0}
	for i, w := range want {
		if a.Index() != w {
			t.Fatalf("step %d: index = %d, want %d", i, a.Index(), w)
		}
		a.Advance()
	}
}

func TestCurrentWord(t *testing.T) {
	a := New([]string{"Code", "Develop"}, time.Second)
	if a.Current() != "Code" {
		t.Fatalf("Current() = %q", a.Current())
	}
	a.Advance()
	if a.Current() != "Develop" {
		t.Fatalf("Current() = %q", a.Current())
	}
}

func TestEmptyWordsStayValid(t *testing.T) {
	a := New(nil, 0)
	if a.Len() != 1 || a.Current() != "" {
		t.Fatalf("empty announcer: len %d, current %q", a.Len(), a.Current())
	}
	a.Advance()
	if a.Index() != 0 {
		t.Fatalf("index = %d", a.Index())
	}
}

func TestNewCopiesWords(t *testing.T) {
	words := []string{"a", "b"}
	a := New(words, 0)
	words[0] = "z"
	if a.Current() != "a" {
		t.Fatal("announcer should not alias the caller's slice")
	}
}

func TestUpdateAdvancesOnlyForCurrentGeneration(t *testing.T) {
	a := New([]string{"a", "b", "c"}, time.Millisecond)
	if cmd := a.Start(); cmd == nil {
		t.Fatal("Start should return a tick command")
	}
	current := TickMsg{id: a.id, gen: a.gen}

	cmd, changed := a.Update(current)
	if !changed || cmd == nil || a.Index() != 1 {
		t.Fatalf("current tick: changed=%v index=%d", changed, a.Index())
	}

	stale := TickMsg{id: a.id, gen: a.gen - 1}
	if _, changed := a.Update(stale); changed {
		t.Fatal("stale generation should be ignored")
	}

	other := TickMsg{id: a.id + 1000, gen: a.gen}
	if _, changed := a.Update(other); changed {
		t.Fatal("tick for another announcer should be ignored")
	}

	if _, changed := a.Update("not a tick"); changed {
		t.Fatal("unrelated messages should be ignored")
	}
}

func TestStopDropsInFlightTick(t *testing.T) {
	a := New([]string{"a", "b"}, time.Millisecond)
	a.Start()
	inFlight := TickMsg{id: a.id, gen: a.gen}
	a.Stop()
	if a.Running() {
		t.Fatal("expected stopped announcer")
	}
	cmd, changed := a.Update(inFlight)
	if changed || cmd != nil || a.Index() != 0 {
		t.Fatal("tick after Stop must be a no-op")
	}
	a.Stop()
}

func TestTickCommandProducesTaggedMessage(t *testing.T) {
	a := New([]string{"a", "b"}, time.Millisecond)
	msg := a.Start()()
	tick, ok := msg.(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", msg)
	}
	if _, changed := a.Update(tick); !changed {
		t.Fatal("tick from Start should advance")
	}
}

func TestRestartInvalidatesPreviousTimer(t *testing.T) {
	a := New([]string{"a", "b"}, time.Millisecond)
	a.Start()
	first := TickMsg{id: a.id, gen: a.gen}
	a.Start()
	if _, changed := a.Update(first); changed {
		t.Fatal("tick from the replaced timer should be ignored")
	}
}
