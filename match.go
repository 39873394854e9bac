package lzss

// Match is the longest run found in the window for the start of the lookahead.
// Offset is relative to the window head (0 = oldest byte).
type Match struct {
	Offset int
	Length int
}

// Distance returns the backward distance from the write head, as stored in the
// 10-bit field of a back-reference (1..WindowSize).
func (m Match) Distance() int {
	return WindowSize - m.Offset
}

// FindMatch scans every window position, oldest to newest, for the longest
// prefix of look. A candidate replaces the best one when it is at least as
// long, so equal lengths resolve to the candidate nearest to the head.
// A match never runs past the newest window byte.
func FindMatch(win *SlidingWindow, look *Lookahead) Match {
	var m Match

	limit := look.Len()
	if limit > MaxCoded {
		limit = MaxCoded
	}

	for i := 0; i < WindowSize; i++ {
		for j := 0; j < limit && i+j < WindowSize; j++ {
			if win.At(i+j) != look.At(j) {
				break
			}
			if j+1 >= m.Length {
				m.Length = j + 1
				m.Offset = i
			}
		}
	}

	return m
}
