package lzss

import "testing"

func pushAll(w *SlidingWindow, data string) {
	for i := 0; i < len(data); i++ {
		w.Push(data[i])
	}
}

func lookaheadOf(data string) *Lookahead {
	l := &Lookahead{}
	for i := 0; i < len(data); i++ {
		l.Push(data[i])
	}

	return l
}

func TestFindMatchPrefersNearestOnTie(t *testing.T) {
	win := NewSlidingWindow(EncodeFiller)
	pushAll(win, "WXYZ----WXYZ++++")

	m := FindMatch(win, lookaheadOf("WXYZ!"))
	if m.Length != 4 {
		t.Fatalf("length = %d, want 4", m.Length)
	}
	// The second copy starts 8 bytes before the head.
	if m.Distance() != 8 {
		t.Fatalf("distance = %d (offset %d), want 8", m.Distance(), m.Offset)
	}
}

func TestFindMatchPrefersLonger(t *testing.T) {
	win := NewSlidingWindow(EncodeFiller)
	pushAll(win, "abcdefg...abc...")

	m := FindMatch(win, lookaheadOf("abcdefgh"))
	if m.Length != 7 || m.Distance() != 16 {
		t.Fatalf("got length %d distance %d, want 7 and 16", m.Length, m.Distance())
	}
}

func TestFindMatchStopsAtNewestByte(t *testing.T) {
	win := NewSlidingWindow(EncodeFiller)
	pushAll(win, "qqq")

	// Only three q's are in the window; the run cannot continue into the lookahead.
	m := FindMatch(win, lookaheadOf("qqqqqqqq"))
	if m.Length != 3 || m.Distance() != 3 {
		t.Fatalf("got length %d distance %d, want 3 and 3", m.Length, m.Distance())
	}
}

func TestFindMatchLimitedByLookahead(t *testing.T) {
	win := NewSlidingWindow(EncodeFiller)
	pushAll(win, "hello world")

	m := FindMatch(win, lookaheadOf("hel"))
	if m.Length != 3 || m.Distance() != 11 {
		t.Fatalf("got length %d distance %d, want 3 and 11", m.Length, m.Distance())
	}
}

func TestFindMatchNone(t *testing.T) {
	win := NewSlidingWindow(EncodeFiller)
	m := FindMatch(win, lookaheadOf("xyz"))
	if m.Length != 0 {
		t.Fatalf("length = %d, want 0", m.Length)
	}
}

func TestFindMatchFullLookahead(t *testing.T) {
	win := NewSlidingWindow('r')
	look := &Lookahead{}
	for !look.Full() {
		look.Push('r')
	}

	// The scan runs up to the lookahead capacity; the encoder clamps to MaxMatch.
	m := FindMatch(win, look)
	if m.Length != MaxCoded {
		t.Fatalf("length = %d, want %d", m.Length, MaxCoded)
	}
	if m.Offset != WindowSize-MaxCoded {
		t.Fatalf("offset = %d, want %d", m.Offset, WindowSize-MaxCoded)
	}
}
