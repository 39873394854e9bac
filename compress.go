package lzss

import (
	"bytes"
	"io"
)

// Writer is a streaming compressor. Input is buffered in the lookahead and
// encoded one unit at a time whenever the lookahead is full; Close encodes the
// rest, flushes the last flag group and pads the output.
//
// A Writer must not be used from more than one goroutine at a time.
type Writer struct {
	w    io.Writer
	opts CompressOptions

	window SlidingWindow
	look   Lookahead

	flags    byte
	flagMask byte
	group    [1 + 2*FlagBits]byte // flag byte placeholder + payload units
	groupLen int

	stats  Stats
	err    error
	closed bool
}

// NewWriter returns a Writer compressing into w. Options nil means DefaultCompressOptions().
func NewWriter(w io.Writer, opts *CompressOptions) *Writer {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	zw := &Writer{w: w, opts: *opts}
	zw.window.Reset(EncodeFiller)
	zw.resetGroup()

	return zw
}

// Write buffers p and encodes every unit whose lookahead is complete.
func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}
	if z.err != nil {
		return 0, z.err
	}

	for i, b := range p {
		z.look.Push(b)
		z.stats.Read++
		if z.look.Full() {
			if err := z.step(); err != nil {
				return i + 1, err
			}
		}
	}

	return len(p), nil
}

// WriteByte provides io.ByteWriter.
func (z *Writer) WriteByte(b byte) error {
	_, err := z.Write([]byte{b})

	return err
}

// Close encodes the remaining lookahead, flushes the last flag group and pads
// the output to PadAlign. It does not close the underlying writer.
// Nothing at all is written for empty input.
func (z *Writer) Close() error {
	if z.closed {
		return z.err
	}
	z.closed = true
	if z.err != nil {
		return z.err
	}

	for z.look.Len() > 0 {
		if err := z.step(); err != nil {
			return err
		}
	}

	if z.groupLen > 1 {
		if err := z.flushGroup(); err != nil {
			return err
		}
	}

	if z.opts.NoPadding || z.stats.Written%PadAlign == 0 {
		return nil
	}

	pad := PadAlign - z.stats.Written%PadAlign
	if _, err := z.w.Write(make([]byte, pad)); err != nil {
		z.err = err

		return err
	}
	z.stats.Padding = pad

	return nil
}

// Stats returns the counters accumulated so far.
func (z *Writer) Stats() Stats {
	return z.stats
}

// step encodes one unit from the head of the lookahead and advances both buffers.
func (z *Writer) step() error {
	m := FindMatch(&z.window, &z.look)
	if m.Length > MaxMatch {
		// filler past the end of the data extended the match
		m.Length = MaxMatch
	}

	if m.Length <= MaxUncoded {
		m.Length = 1
		z.group[z.groupLen] = z.look.At(0)
		z.groupLen++
		z.stats.Literals++
	} else {
		dist := m.Distance()
		z.group[z.groupLen] = byte(dist>>8) | byte(m.Length<<2)
		z.group[z.groupLen+1] = byte(dist & 0xFF)
		z.groupLen += 2
		z.flags |= z.flagMask
		z.stats.References++
	}

	z.flagMask >>= 1
	if z.flagMask == 0 {
		if err := z.flushGroup(); err != nil {
			return err
		}
	}

	for i := 0; i < m.Length; i++ {
		z.window.Push(z.look.Pop())
	}

	return nil
}

// flushGroup writes the flag byte followed by its payload units.
func (z *Writer) flushGroup() error {
	z.group[0] = z.flags
	n, err := z.w.Write(z.group[:z.groupLen])
	z.stats.Written += int64(n)
	if err != nil {
		z.err = err

		return err
	}
	z.resetGroup()

	return nil
}

func (z *Writer) resetGroup() {
	z.flags = 0
	z.flagMask = 0x80
	z.groupLen = 1
}

// Compress compresses src. Options nil means DefaultCompressOptions().
// Empty src yields empty output.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	// Worst case is all literals plus one flag byte per 8 units and padding.
	var buf bytes.Buffer
	buf.Grow(len(src) + (len(src)+7)/FlagBits + PadAlign)

	zw := NewWriter(&buf, opts)
	if _, err := zw.Write(src); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CompressStream compresses everything read from src into dst.
func CompressStream(dst io.Writer, src io.Reader, opts *CompressOptions) (Stats, error) {
	if src == nil {
		return Stats{}, ErrNilReader
	}
	if dst == nil {
		return Stats{}, ErrNilWriter
	}

	zw := NewWriter(dst, opts)
	if _, err := io.Copy(zw, src); err != nil {
		return zw.Stats(), err
	}
	err := zw.Close()

	return zw.Stats(), err
}
