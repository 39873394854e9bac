// Command lzss compresses and decompresses LZSS10 streams.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bri3d/lzss"
	"github.com/bri3d/lzss/bitlzss"
	"github.com/bri3d/lzss/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lzss: ")

	conf, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Printf("%v", err)
		log.Fatal(`Enter "lzss -h" for help.`)
	}

	if err := run(conf, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run executes one job; stdin and stdout are used when conf.Stdio is set.
func run(conf config.Configuration, stdin io.Reader, stdout io.Writer) (err error) {
	in, out := stdin, stdout
	if !conf.Stdio {
		inFile, openErr := os.Open(conf.Input)
		if openErr != nil {
			return fmt.Errorf("opening input: %w", openErr)
		}
		defer inFile.Close()
		in = inFile

		outFile, createErr := os.Create(conf.Output)
		if createErr != nil {
			return fmt.Errorf("opening output: %w", createErr)
		}
		defer func() {
			if cerr := outFile.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = outFile
	}

	bw := bufio.NewWriter(out)
	if err := process(conf, bufio.NewReader(in), bw); err != nil {
		return err
	}

	return bw.Flush()
}

func process(conf config.Configuration, in io.Reader, out io.Writer) error {
	if conf.Format == config.FormatBit {
		return processBit(conf, in, out)
	}

	if conf.Mode == config.ModeCompress {
		stats, err := lzss.CompressStream(out, in, &lzss.CompressOptions{NoPadding: conf.NoPadding})
		if err != nil {
			return fmt.Errorf("compress: %w", err)
		}
		log.Printf("compressedSize %x", stats.Written)
		if conf.Verbose {
			log.Printf("read=%d written=%d padding=%d literals=%d references=%d ratio=%.3f",
				stats.Read, stats.Written, stats.Padding, stats.Literals, stats.References, stats.Ratio())
		}

		return nil
	}

	opts := &lzss.Options{LegacyFiller: conf.LegacyFiller}
	zr := lzss.NewReader(in, conf.Size, opts)
	n, err := io.Copy(out, zr)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if conf.Strict && conf.Size >= 0 {
		if err := checkTrailer(in); err != nil {
			return err
		}
	}
	if conf.Verbose {
		log.Printf("read=%d written=%d", zr.Consumed(), n)
	}

	return nil
}

// checkTrailer reads what follows a sized block; lzss.CheckTrailer judges it.
func checkTrailer(in io.Reader) error {
	rest, err := io.ReadAll(io.LimitReader(in, lzss.PadAlign))
	if err != nil {
		return fmt.Errorf("reading trailer: %w", err)
	}

	return lzss.CheckTrailer(rest)
}

func processBit(conf config.Configuration, in io.Reader, out io.Writer) error {
	p := &bitlzss.Params{
		EI:     conf.Bit.EI,
		EJ:     conf.Bit.EJ,
		P:      conf.Bit.P,
		Filler: byte(conf.Bit.Filler),
	}

	if conf.Mode == config.ModeCompress {
		stats, err := bitlzss.Encode(out, in, p)
		if err != nil {
			return fmt.Errorf("compress: %w", err)
		}
		if conf.Verbose {
			log.Printf("read=%d written=%d", stats.Read, stats.Written)
		}

		return nil
	}

	n, err := bitlzss.Decode(out, in, p)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if conf.Verbose {
		log.Printf("written=%d", n)
	}

	return nil
}
