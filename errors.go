// SPDX-License-Identifier: MIT
// Source: github.com/bri3d/lzss

package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrUnexpectedEOF  = errors.New("unexpected end of input before expected output length")
	ErrTrailingData   = errors.New("trailing bytes after lzss block")
	ErrNilReader      = errors.New("reader is nil")
	ErrNilWriter      = errors.New("writer is nil")
	ErrNegativeOutLen = errors.New("output length must be non-negative or UntilEOF")
	ErrClosed         = errors.New("write to closed lzss writer")
)
