package lzss

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Reader is a streaming decompressor.
//
// With a non-negative output length the Reader stops exactly after that many
// bytes and leaves any padding unread. With UntilEOF it decodes until the
// compressed input ends; the end of input is a normal termination at any
// field, and alignment padding decodes as trailing zero bytes.
type Reader struct {
	r      *countingByteReader
	window SlidingWindow

	flags     byte
	flagsUsed int

	stage   [MaxMatch]byte
	pending []byte

	remaining int64 // output bytes left, or UntilEOF
	err       error
}

// NewReader returns a Reader decompressing from r. Options nil means DefaultOptions().
func NewReader(r io.Reader, outLen int64, opts *Options) *Reader {
	return newReader(byteReader(r), outLen, opts)
}

func newReader(r io.ByteReader, outLen int64, opts *Options) *Reader {
	if opts == nil {
		opts = DefaultOptions()
	}

	zr := &Reader{
		r:         &countingByteReader{base: r},
		flagsUsed: FlagBits - 1,
		remaining: outLen,
	}
	zr.window.Reset(opts.filler())
	if outLen < UntilEOF {
		zr.err = ErrNegativeOutLen
	}

	return zr
}

// Read provides io.Reader.
func (z *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(z.pending) == 0 {
			if z.err != nil {
				break
			}
			if z.remaining == 0 {
				z.err = io.EOF

				break
			}
			if err := z.next(); err != nil {
				z.err = err

				break
			}

			continue
		}

		c := copy(p[n:], z.pending)
		z.pending = z.pending[c:]
		n += c
	}

	if n > 0 {
		return n, nil
	}

	return 0, z.err
}

// Consumed returns the number of compressed bytes read so far.
func (z *Reader) Consumed() int64 {
	return z.r.count
}

// next decodes one unit into pending.
func (z *Reader) next() error {
	z.flags <<= 1
	z.flagsUsed++
	if z.flagsUsed == FlagBits {
		b, err := z.readByte()
		if err != nil {
			return err
		}
		z.flags = b
		z.flagsUsed = 0
	}

	if z.flags&0x80 == 0 {
		b, err := z.readByte()
		if err != nil {
			return err
		}
		z.window.Push(b)
		z.stage[0] = b
		z.emit(1)

		return nil
	}

	hi, err := z.readByte()
	if err != nil {
		return err
	}
	lo, err := z.readByte()
	if err != nil {
		return err
	}

	dist := int(lo) | int(hi&0x03)<<8
	if dist == 0 {
		dist = WindowSize
	}
	length := int(hi >> 2)

	// Bytes past the distance come from this run itself, so they are taken
	// from the stage; the window is only written once the run is complete.
	for i := 0; i < length; i++ {
		if i < dist {
			z.stage[i] = z.window.At(WindowSize - dist + i)
		} else {
			z.stage[i] = z.stage[i-dist]
		}
	}
	for i := 0; i < length; i++ {
		z.window.Push(z.stage[i])
	}
	z.emit(length)

	return nil
}

// emit queues the first n staged bytes, trimmed to the remaining output length.
func (z *Reader) emit(n int) {
	if z.remaining != UntilEOF {
		if int64(n) > z.remaining {
			n = int(z.remaining)
		}
		z.remaining -= int64(n)
	}
	z.pending = z.stage[:n]
}

// readByte maps the end of input to io.EOF in unbounded mode and to
// ErrUnexpectedEOF when output is still owed.
func (z *Reader) readByte() (byte, error) {
	b, err := z.r.ReadByte()
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, io.EOF) {
		return 0, err
	}
	if z.remaining > 0 {
		return 0, fmt.Errorf("%w: %d bytes missing", ErrUnexpectedEOF, z.remaining)
	}

	return 0, io.EOF
}

// Decompress decompresses src. outLen is the expected output length or UntilEOF.
// Options nil means DefaultOptions().
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	out, consumed, err := DecompressBlock(src, outLen, opts)
	if err != nil {
		return nil, err
	}

	if opts.Strict && outLen != UntilEOF {
		if err := CheckTrailer(src[consumed:]); err != nil {
			return nil, fmt.Errorf("%w: consumed=%d input=%d", err, consumed, len(src))
		}
	}

	return out, nil
}

// DecompressBlock decompresses one LZSS block from the beginning of src.
// It returns decompressed bytes and the number of consumed bytes.
// Unlike Decompress, this function never inspects bytes after the block.
func DecompressBlock(src []byte, outLen int, opts *Options) ([]byte, int, error) {
	if outLen < UntilEOF {
		return nil, 0, ErrNegativeOutLen
	}

	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader, outLen, len(src), opts)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses one LZSS block from r and returns consumed bytes.
// With outLen >= 0 decoding stops exactly after outLen output bytes, so r can be
// positioned on following data (padding included).
func DecompressFromReader(r io.Reader, outLen int, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if outLen < UntilEOF {
		return nil, 0, ErrNegativeOutLen
	}

	countingReader := &countingByteReader{base: byteReader(r)}
	out, err := decompressFromByteReader(countingReader, outLen, 0, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// DecompressStream decompresses src into dst and returns the number of bytes written.
func DecompressStream(dst io.Writer, src io.Reader, outLen int64, opts *Options) (int64, error) {
	if src == nil {
		return 0, ErrNilReader
	}
	if dst == nil {
		return 0, ErrNilWriter
	}

	return io.Copy(dst, NewReader(src, outLen, opts))
}

// decompressFromByteReader decodes from r; sizeHint presizes the output in unbounded mode.
func decompressFromByteReader(r io.ByteReader, outLen, sizeHint int, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if outLen >= 0 {
		buf.Grow(outLen)
	} else {
		buf.Grow(sizeHint * 2)
	}

	zr := newReader(r, int64(outLen), opts)
	if _, err := buf.ReadFrom(zr); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CheckTrailer reports ErrTrailingData unless rest, the bytes following a
// block, is zero padding shorter than PadAlign.
func CheckTrailer(rest []byte) error {
	if len(rest) >= PadAlign {
		return ErrTrailingData
	}
	for _, b := range rest {
		if b != 0 {
			return ErrTrailingData
		}
	}

	return nil
}
