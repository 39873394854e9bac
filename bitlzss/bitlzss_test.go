package bitlzss

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"testing/iotest"
)

func TestKnownVector(t *testing.T) {
	// literal 'a', then position 959 length 3
	want := []byte{0xB0, 0xBB, 0xF0, 0x40}

	var buf bytes.Buffer
	stats, err := Encode(&buf, bytes.NewReader([]byte("aaaa")), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded % x, want % x", buf.Bytes(), want)
	}
	if stats.Read != 4 || stats.Written != 4 {
		t.Fatalf("stats = %+v", stats)
	}

	dec, err := Decompress(want, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(dec) != "aaaa" {
		t.Fatalf("got %q", dec)
	}
}

func TestEmpty(t *testing.T) {
	enc, err := Compress(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != 0 {
		t.Fatalf("got % x", enc)
	}
	dec, err := Decompress(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != 0 {
		t.Fatalf("got % x", dec)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	random := make([]byte, 5000)
	rng.Read(random)

	text := bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 100)
	mixed := append(append(append([]byte{}, random[:1500]...), text...), random[:1500]...)

	inputs := map[string][]byte{
		"random":  random,
		"text":    text,
		"mixed":   mixed,
		"spaces":  bytes.Repeat([]byte(" "), 3000),
		"zeros":   make([]byte, 2500),
		"single":  {0x7F},
		"pattern": bytes.Repeat([]byte{1, 2, 3}, 1000),
	}
	params := []*Params{
		DefaultParams(),
		{EI: 8, EJ: 4, P: 2, Filler: 0},
		{EI: 12, EJ: 4, P: 1, Filler: 0xFF},
	}

	for name, input := range inputs {
		for _, p := range params {
			enc, err := Compress(input, p)
			if err != nil {
				t.Fatalf("%s %+v: %v", name, p, err)
			}
			dec, err := Decompress(enc, p)
			if err != nil {
				t.Fatalf("%s %+v: %v", name, p, err)
			}
			if !bytes.Equal(dec, input) {
				t.Fatalf("%s %+v: round trip mismatch (in=%d dec=%d)", name, p, len(input), len(dec))
			}
		}
	}
}

func TestCompressesText(t *testing.T) {
	text := bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 100)
	enc, err := Compress(text, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) >= len(text)/4 {
		t.Fatalf("compressed %d bytes to %d", len(text), len(enc))
	}
}

func TestStreamingSources(t *testing.T) {
	text := bytes.Repeat([]byte("streaming source "), 300)

	var enc bytes.Buffer
	if _, err := Encode(&enc, iotest.OneByteReader(bytes.NewReader(text)), nil); err != nil {
		t.Fatal(err)
	}

	var dec bytes.Buffer
	n, err := Decode(&dec, iotest.HalfReader(bytes.NewReader(enc.Bytes())), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(text)) || !bytes.Equal(dec.Bytes(), text) {
		t.Fatalf("round trip mismatch (n=%d)", n)
	}
}

func TestDecodeSourceError(t *testing.T) {
	enc, err := Compress(bytes.Repeat([]byte("x"), 100), nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decode(&bytes.Buffer{}, iotest.TimeoutReader(bytes.NewReader(enc)), nil)
	if !errors.Is(err, iotest.ErrTimeout) {
		t.Fatalf("want ErrTimeout, got %v", err)
	}
}

func TestInvalidParams(t *testing.T) {
	bad := []*Params{
		{EI: 1, EJ: 1, P: 1},
		{EI: 10, EJ: 0, P: 1},
		{EI: 4, EJ: 4, P: 1},
		{EI: 10, EJ: 6, P: 0},
		{EI: 10, EJ: 2, P: 5},
		{EI: 21, EJ: 6, P: 2},
		{EI: 20, EJ: 17, P: 2},
	}
	for _, p := range bad {
		if _, err := Compress([]byte("abc"), p); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("%+v: want ErrInvalidParams, got %v", p, err)
		}
		if _, err := Decompress([]byte{0}, p); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("%+v: want ErrInvalidParams, got %v", p, err)
		}
	}
}

func TestSmallestParams(t *testing.T) {
	// 4-byte window, matches of 2..3 bytes
	p := &Params{EI: 2, EJ: 1, P: 1, Filler: 'x'}
	input := []byte("abcabcabcxxxx")
	enc, err := Compress(input, p)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, p)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, input) {
		t.Fatalf("got %q", dec)
	}
}
