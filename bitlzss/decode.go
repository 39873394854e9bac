package bitlzss

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Decode decompresses src into dst until src ends and returns the bytes written.
// Running out of input inside a unit ends decoding without error.
func Decode(dst io.Writer, src io.Reader, p *Params) (int64, error) {
	if p == nil {
		p = DefaultParams()
	}
	if err := p.validate(); err != nil {
		return 0, err
	}

	in := bitio.NewReader(src)
	out := bufio.NewWriter(dst)

	n, f := p.window(), p.maxMatch()
	mask := n - 1
	ring := make([]byte, n)
	for i := 0; i < n-f; i++ {
		ring[i] = p.Filler
	}

	var written int64
	r := n - f
	for {
		literal, err := in.ReadBool()
		if err != nil {
			return written, finish(out, err)
		}

		if literal {
			c, err := in.ReadBits(8)
			if err != nil {
				return written, finish(out, err)
			}
			ring[r] = byte(c)
			r = (r + 1) & mask
			written++
			if err := out.WriteByte(byte(c)); err != nil {
				return written, err
			}

			continue
		}

		pos, err := in.ReadBits(uint8(p.EI))
		if err != nil {
			return written, finish(out, err)
		}
		length, err := in.ReadBits(uint8(p.EJ))
		if err != nil {
			return written, finish(out, err)
		}

		// Byte by byte, so a run may read what it has just written.
		for k := 0; k < int(length)+2; k++ {
			c := ring[(int(pos)+k)&mask]
			ring[r] = c
			r = (r + 1) & mask
			written++
			if err := out.WriteByte(c); err != nil {
				return written, err
			}
		}
	}
}

// finish flushes the output when the input simply ran out and reports any other error.
func finish(out *bufio.Writer, err error) error {
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}

	return out.Flush()
}

// Decompress decompresses src. Params nil means DefaultParams().
func Decompress(src []byte, p *Params) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decode(&buf, bytes.NewReader(src), p); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
