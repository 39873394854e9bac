package lzss

// SlidingWindow is the fixed-size history ring used as the dictionary.
// Positions passed to At are relative to the head, so At(0) is the oldest byte
// and At(WindowSize-1) the newest one.
type SlidingWindow struct {
	data [WindowSize]byte
	head int // next write position, oldest byte
}

// NewSlidingWindow returns a window filled with filler.
func NewSlidingWindow(filler byte) *SlidingWindow {
	w := &SlidingWindow{}
	w.Reset(filler)

	return w
}

// Reset refills the window with filler and rewinds the head.
func (w *SlidingWindow) Reset(filler byte) {
	for i := range w.data {
		w.data[i] = filler
	}
	w.head = 0
}

// Push appends b, overwriting the oldest byte.
func (w *SlidingWindow) Push(b byte) {
	w.data[w.head] = b
	w.head++
	if w.head == WindowSize {
		w.head = 0
	}
}

// At returns the byte i positions after the head (modulo the window size).
func (w *SlidingWindow) At(i int) byte {
	return w.data[(w.head+i)%WindowSize]
}

// Head returns the next write position.
func (w *SlidingWindow) Head() int {
	return w.head
}

// Lookahead holds input bytes not yet moved into the window.
type Lookahead struct {
	data [MaxCoded]byte
	head int // first live byte
	n    int // live bytes
}

// Len returns the number of live bytes.
func (l *Lookahead) Len() int {
	return l.n
}

// Full reports whether no more bytes can be pushed.
func (l *Lookahead) Full() bool {
	return l.n == MaxCoded
}

// Push appends b after the last live byte. It panics when the buffer is full.
func (l *Lookahead) Push(b byte) {
	if l.n == MaxCoded {
		panic("lzss: lookahead overflow")
	}
	l.data[(l.head+l.n)%MaxCoded] = b
	l.n++
}

// Pop removes and returns the first live byte. It panics when the buffer is empty.
func (l *Lookahead) Pop() byte {
	if l.n == 0 {
		panic("lzss: lookahead underflow")
	}
	b := l.data[l.head]
	l.head = (l.head + 1) % MaxCoded
	l.n--

	return b
}

// At returns the i-th live byte.
func (l *Lookahead) At(i int) byte {
	return l.data[(l.head+i)%MaxCoded]
}

// Reset drops all live bytes.
func (l *Lookahead) Reset() {
	l.head = 0
	l.n = 0
}
