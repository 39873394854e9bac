package bitlzss

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned for field widths that cannot describe a window.
var ErrInvalidParams = errors.New("invalid lzss parameters")

// Params sets the field widths of the format.
type Params struct {
	EI     int  // Bits of a window position; the window holds 1<<EI bytes.
	EJ     int  // Bits of a match length; matches are 3..(1<<EJ)+1 bytes.
	P      int  // Longest match still emitted as literals.
	Filler byte // Initial window content.
}

// DefaultParams returns the widths used by the flashing tools: 1 KiB window, 65-byte matches.
func DefaultParams() *Params {
	return &Params{EI: 10, EJ: 6, P: 2, Filler: ' '}
}

func (p *Params) window() int {
	return 1 << p.EI
}

func (p *Params) maxMatch() int {
	return 1<<p.EJ + 1
}

func (p *Params) validate() error {
	switch {
	case p.EI < 2 || p.EI > 20:
		return fmt.Errorf("%w: EI=%d", ErrInvalidParams, p.EI)
	case p.EJ < 1 || p.EJ > 16:
		return fmt.Errorf("%w: EJ=%d", ErrInvalidParams, p.EJ)
	case p.maxMatch() >= p.window():
		return fmt.Errorf("%w: match length %d does not fit window %d", ErrInvalidParams, p.maxMatch(), p.window())
	case p.P < 1 || p.P >= p.maxMatch():
		return fmt.Errorf("%w: P=%d", ErrInvalidParams, p.P)
	}

	return nil
}
