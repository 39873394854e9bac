/*
Package bitlzss implements the bit-packed LZSS variant of Haruhiko Okumura's
lzss.c, with configurable field widths.

Every unit starts with one flag bit: 1 is followed by an 8-bit literal, 0 by an
EI-bit window position and an EJ-bit length (stored minus 2). Bits are packed
MSB first and the last byte is padded with zero bits. The window holds 1<<EI
bytes, starts filled with Params.Filler and the first write goes to position
N-F, where F = (1<<EJ)+1 is the longest match.

	enc, err := bitlzss.Compress(data, nil)
	dec, err := bitlzss.Decompress(enc, nil)
*/
package bitlzss
