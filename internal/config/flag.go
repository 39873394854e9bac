package config

import (
	"flag"
	"strconv"
)

func setupFlags(fs *flag.FlagSet, config *Configuration) {
	_ = fs.String("config", "", "The path to a TOML configuration file")

	fs.Var(&modeFlag{mode: &config.Mode, value: ModeCompress}, "c", "Encode input file to output file (default)")
	fs.Var(&modeFlag{mode: &config.Mode, value: ModeDecompress}, "d", "Decode input file to output file")
	fs.StringVar(&config.Input, "i", "", "Name of input file")
	fs.StringVar(&config.Output, "o", "", "Name of output file (compression defaults to <input>.compressed)")
	fs.BoolVar(&config.Stdio, "s", false, "Use STDIN/STDOUT")
	fs.StringVar(&config.Format, "format", config.Format, "Stream format: lzss10 or bit")

	fs.BoolVar(&config.NoPadding, "p", config.NoPadding, "Do not pad compressed output to 16 bytes")
	fs.Int64Var(&config.Size, "n", config.Size, "Decompressed size; -1 decodes until the input ends")
	fs.BoolVar(&config.LegacyFiller, "legacy-filler", config.LegacyFiller, "Start the decoder window with spaces")
	fs.BoolVar(&config.Strict, "strict", config.Strict, "Reject anything but padding after a sized block")
	fs.BoolVar(&config.Verbose, "v", config.Verbose, "Log statistics")

	fs.IntVar(&config.Bit.EI, "bit-ei", config.Bit.EI, "Position bits of the bit format")
	fs.IntVar(&config.Bit.EJ, "bit-ej", config.Bit.EJ, "Length bits of the bit format")
	fs.IntVar(&config.Bit.P, "bit-p", config.Bit.P, "Longest literal run of the bit format")
	fs.IntVar(&config.Bit.Filler, "bit-filler", config.Bit.Filler, "Initial window byte of the bit format")
}

// modeFlag is a boolean flag that selects a mode when set.
type modeFlag struct {
	mode  *string
	value string
}

func (m *modeFlag) String() string {
	if m.mode == nil {
		return "false"
	}

	return strconv.FormatBool(*m.mode == m.value)
}

func (m *modeFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*m.mode = m.value
	}

	return nil
}

func (m *modeFlag) IsBoolFlag() bool {
	return true
}
