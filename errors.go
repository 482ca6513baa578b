package lz11

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrUnrecognizedFormat   = errors.New("input does not start with the 0x11 marker")
	ErrInputTooShort        = errors.New("not enough data for header")
	ErrTruncatedInput       = errors.New("input ended before output was complete")
	ErrInvalidBackReference = errors.New("back-reference points before start of output")
	ErrOutputTooLarge       = errors.New("declared output size exceeds allocation limit")
	ErrNilReader            = errors.New("reader is nil")
)
