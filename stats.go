package lzss

// Stats counts the work done by a Writer.
type Stats struct {
	Read       int64 // Uncompressed bytes consumed.
	Written    int64 // Compressed bytes written, padding excluded.
	Padding    int64 // Zero bytes appended for alignment.
	Literals   int64 // Literal units emitted.
	References int64 // Back-reference units emitted.
}

// Total returns the compressed size including padding.
func (s Stats) Total() int64 {
	return s.Written + s.Padding
}

// Ratio returns Total/Read, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.Read == 0 {
		return 0
	}

	return float64(s.Total()) / float64(s.Read)
}
