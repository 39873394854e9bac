package bitlzss

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Stats counts the bytes an encoder consumed and produced.
type Stats struct {
	Read    int64
	Written int64
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// Encode compresses src into dst. Params nil means DefaultParams().
func Encode(dst io.Writer, src io.Reader, p *Params) (Stats, error) {
	if p == nil {
		p = DefaultParams()
	}
	if err := p.validate(); err != nil {
		return Stats{}, err
	}

	var in io.ByteReader
	if br, ok := src.(io.ByteReader); ok {
		in = br
	} else {
		in = bufio.NewReader(src)
	}

	cw := &countingWriter{w: dst}
	out := bitio.NewWriter(cw)

	n, f := p.window(), p.maxMatch()
	buf := make([]byte, 2*n)
	for i := 0; i < n-f; i++ {
		buf[i] = p.Filler
	}

	var stats Stats
	end := n - f
	fill := func() error {
		for end < 2*n {
			c, err := in.ReadByte()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			buf[end] = c
			end++
			stats.Read++
		}

		return nil
	}

	if err := fill(); err != nil {
		return stats, err
	}

	// buf[s:r] is the dictionary, buf[r:end] the data left to encode.
	r, s := n-f, 0
	for r < end {
		f1 := f
		if end-r < f1 {
			f1 = end - r
		}

		x, y := 0, 1
		c := buf[r]
		for i := r - 1; i >= s; i-- {
			if buf[i] != c {
				continue
			}
			j := 1
			for j < f1 && buf[i+j] == buf[r+j] {
				j++
			}
			if j > y {
				x, y = i, j
			}
		}

		var err error
		if y <= p.P {
			y = 1
			err = writeLiteral(out, c)
		} else {
			err = writeReference(out, p, x&(n-1), y-2)
		}
		if err != nil {
			return stats, err
		}

		r += y
		s += y
		if r >= 2*n-f {
			copy(buf[:n], buf[n:])
			end -= n
			r -= n
			s -= n
			if err := fill(); err != nil {
				return stats, err
			}
		}
	}

	err := out.Close()
	stats.Written = cw.n

	return stats, err
}

func writeLiteral(w *bitio.Writer, c byte) error {
	if err := w.WriteBool(true); err != nil {
		return err
	}

	return w.WriteBits(uint64(c), 8)
}

func writeReference(w *bitio.Writer, p *Params, pos, length int) error {
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := w.WriteBits(uint64(pos), uint8(p.EI)); err != nil {
		return err
	}

	return w.WriteBits(uint64(length), uint8(p.EJ))
}

// Compress compresses src. Params nil means DefaultParams().
func Compress(src []byte, p *Params) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Encode(&buf, bytes.NewReader(src), p); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
