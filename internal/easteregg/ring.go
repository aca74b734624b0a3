package easteregg

// runeRing keeps the last size runes typed.
type runeRing struct {
	size  int
	runes []rune
	next  int
	full  bool
}

func newRuneRing(size int) *runeRing {
	if size <= 0 {
		size = 1
	}
	return &runeRing{size: size, runes: make([]rune, size)}
}

func (r *runeRing) add(c rune) {
	r.runes[r.next] = c
	r.next++
	if r.next >= r.size {
		r.next = 0
		r.full = true
	}
}

// String returns the buffered runes oldest first.
func (r *runeRing) String() string {
	if !r.full {
		return string(r.runes[:r.next])
	}
	out := make([]rune, 0, r.size)
	out = append(out, r.runes[r.next:]...)
	out = append(out, r.runes[:r.next]...)
	return string(out)
}

func (r *runeRing) reset() {
	r.next = 0
	r.full = false
}
