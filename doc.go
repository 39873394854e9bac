/*
Package lzss implements the LZSS10 compression format: an LZ77 variant with a
1023-byte sliding window and back-references of 3..63 bytes.

Format: a sequence of groups, each one flag byte followed by up to 8 units read
MSB first; bit 0 = literal (1 byte), bit 1 = back-reference (2 bytes).
Back-reference: byte0 = length<<2 | distance>>8, byte1 = distance&0xFF, where
distance (1..1023) counts backwards from the current window position.
Matches of MaxUncoded bytes or fewer are always emitted as literals.
The encoder window starts filled with EncodeFiller, the decoder window with
DecodeFiller (or LegacyFiller); matches against that initial content are legal.
Compressed output is padded with zeros to a multiple of 16 bytes unless
CompressOptions.NoPadding is set. There is no header, end marker or checksum.

Because padding is indistinguishable from data, decoding with UntilEOF turns
it into trailing zero bytes. Pass the original length to get an exact result.

The match search is exhaustive and favours, among equal lengths, the candidate
closest to the current position; the compressed output is deterministic.

# Examples

Round-trip compress and decompress:

	enc, err := lzss.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzss.Decompress(enc, len(data), nil)
	if err != nil {
		return err
	}
	// dec equals data

Stream a file through the encoder:

	stats, err := lzss.CompressStream(dst, src, nil)
	if err != nil {
		return err
	}
	log.Printf("compressedSize %x", stats.Written)

Decode until the input ends, padding included:

	out, err := lzss.Decompress(enc, lzss.UntilEOF, nil)

Decode one block from a stream and continue from the current stream position:

	out, consumed, err := lzss.DecompressFromReader(r, expectedLen, nil)
	if err != nil {
		return err
	}
	_ = consumed

Compress without alignment padding:

	enc, _ := lzss.Compress(data, &lzss.CompressOptions{NoPadding: true})
*/
package lzss
