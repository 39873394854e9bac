package lzss

// LZSS10 format constants.
const (
	WindowSize   = 1023                // Sliding window size; a distance fits in 10 bits.
	MaxUncoded   = 2                   // Longest match still emitted as a literal.
	MaxCoded     = 61 + MaxUncoded + 1 // Lookahead buffer capacity.
	MaxMatch     = 0x3F                // Longest encodable back-reference (6 bits).
	FlagBits     = 8                   // Decisions per flag byte, MSB first.
	PadAlign     = 16                  // Compressed output is padded with zeros to a multiple of this.
	UntilEOF     = -1                  // outLen value: decode until the compressed input ends.
	EncodeFiller = 0x11                // Initial content of the encoder window.
	DecodeFiller = 0x11                // Initial content of the decoder window.
	LegacyFiller = 0x20                // Decoder window content of older LZSS10 decoders.
)
