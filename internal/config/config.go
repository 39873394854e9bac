// Package config assembles the lzss command configuration.
//
// The precedence is:
//
//	command line flags > environment > configuration file > defaults
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Modes and formats.
const (
	ModeCompress   = "compress"
	ModeDecompress = "decompress"

	FormatLZSS10 = "lzss10"
	FormatBit    = "bit"
)

// EnvPrefix prefixes the environment variable of every flag.
const EnvPrefix = "LZSS_"

// Configuration specifies a complete lzss run.
type Configuration struct {
	Mode   string
	Format string

	Input  string `toml:"-"`
	Output string `toml:"-"`
	Stdio  bool   `toml:"-"`

	NoPadding    bool  `toml:"no_padding"`
	LegacyFiller bool  `toml:"legacy_filler"`
	Strict       bool  `toml:"strict"`
	Size         int64 `toml:"size"`
	Verbose      bool  `toml:"verbose"`

	Bit BitParams `toml:"bit"`
}

// BitParams holds the field widths of the bit-packed format.
type BitParams struct {
	EI     int `toml:"ei"`
	EJ     int `toml:"ej"`
	P      int `toml:"p"`
	Filler int `toml:"filler"`
}

// Default returns the configuration used when nothing else is given.
func Default() Configuration {
	return Configuration{
		Mode:   ModeCompress,
		Format: FormatLZSS10,
		Size:   -1,
		Bit:    BitParams{EI: 10, EJ: 6, P: 2, Filler: ' '},
	}
}

// Parse builds the configuration from args (without the program name).
// It returns flag.ErrHelp when usage was requested.
func Parse(args []string, usage io.Writer) (Configuration, error) {
	config := Default()

	fs := flag.NewFlagSet("lzss", flag.ContinueOnError)
	fs.SetOutput(usage)
	setupFlags(fs, &config)

	// The file is read before the flags are parsed so that they take precedence.
	configFile := findConfigFile(args)
	if configFile == "" {
		configFile = envValueForFlag("config")
	}
	if err := parseConfigFile(configFile, &config); err != nil {
		return config, err
	}

	if err := fs.Parse(args); err != nil {
		return config, err
	}
	if fs.NArg() > 0 {
		return config, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := setUnsetFlagsFromEnv(fs); err != nil {
		return config, err
	}

	if config.Output == "" && config.Input != "" && config.Mode == ModeCompress {
		config.Output = config.Input + ".compressed"
	}

	return config, config.Validate()
}

// Validate checks that the configuration describes a runnable job.
func (c Configuration) Validate() error {
	switch c.Mode {
	case ModeCompress, ModeDecompress:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	switch c.Format {
	case FormatLZSS10, FormatBit:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}

	if c.Bit.Filler < 0 || c.Bit.Filler > 0xFF {
		return fmt.Errorf("bit filler %d out of byte range", c.Bit.Filler)
	}

	if c.Stdio {
		if c.Input != "" || c.Output != "" {
			return errors.New("-s cannot be combined with -i or -o")
		}

		return nil
	}
	if c.Input == "" {
		return errors.New("input file must be provided")
	}
	if c.Output == "" {
		return errors.New("output file must be provided")
	}

	return nil
}

// We want to parse the flags after we've read in the config file so that they
// take precedence, so we're going to extract the config file flag directly.
func findConfigFile(args []string) string {
	configRx := regexp.MustCompile("^--?config(?:=(.*))?$")
	for index, arg := range args {
		match := configRx.FindStringSubmatch(arg)
		if match == nil {
			continue
		}
		if match[1] != "" {
			return match[1]
		}
		if len(args) > (index + 1) {
			return args[index+1]
		}
	}

	return ""
}

func parseConfigFile(configFile string, config *Configuration) error {
	if configFile == "" {
		return nil
	}

	_, err := toml.DecodeFile(configFile, config)
	if err != nil {
		return fmt.Errorf("config file %s: %w", configFile, err)
	}

	return nil
}

// flagGroups lists flags that write the same setting; setting one on the
// command line counts as setting all of them.
var flagGroups = [][]string{
	{"c", "d"},
}

func setUnsetFlagsFromEnv(fs *flag.FlagSet) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	for _, group := range flagGroups {
		for _, name := range group {
			if !set[name] {
				continue
			}
			for _, other := range group {
				set[other] = true
			}

			break
		}
	}

	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] || err != nil {
			return
		}
		if val := envValueForFlag(f.Name); val != "" {
			if setErr := fs.Set(f.Name, val); setErr != nil {
				err = fmt.Errorf("environment %s: %w", envKey(f.Name), setErr)
			}
		}
	})

	return err
}

func envKey(name string) string {
	return EnvPrefix + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}

func envValueForFlag(name string) string {
	return os.Getenv(envKey(name))
}
