package lzss

// CompressOptions configures compression.
type CompressOptions struct {
	// NoPadding disables zero padding of the output to a multiple of PadAlign.
	NoPadding bool
}

// DefaultCompressOptions returns options for default compression (padded to PadAlign).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// Options configures decompression.
type Options struct {
	// LegacyFiller starts the window with LegacyFiller instead of DecodeFiller.
	// Streams that reference the initial window content only decode correctly
	// when both sides agree on the filler.
	LegacyFiller bool
	// Strict: with a known output length, anything after the last unit must be
	// zero padding shorter than PadAlign, otherwise ErrTrailingData is returned.
	Strict bool
}

// DefaultOptions returns options for default behavior: encoder filler, lenient trailer.
func DefaultOptions() *Options {
	return &Options{}
}

// StrictOptions returns options that reject anything but padding after the block.
func StrictOptions() *Options {
	return &Options{Strict: true}
}

func (o *Options) filler() byte {
	if o.LegacyFiller {
		return LegacyFiller
	}

	return DecodeFiller
}
