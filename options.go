package lz11

// Options configures Decompress behavior.
type Options struct {
	// MaxOutputSize caps the allocation implied by the stream header.
	// Zero means DefaultMaxOutputSize; negative means no limit.
	MaxOutputSize int
	// AllowTruncated: if true, input that runs out before the declared output
	// size is filled yields the partial (zero-padded) buffer with no error.
	// If false, the same partial buffer is returned alongside ErrTruncatedInput.
	AllowTruncated bool
}

// DefaultOptions returns options for default behavior: default allocation
// limit, truncated input reported as an error.
func DefaultOptions() *Options {
	return &Options{
		MaxOutputSize:  DefaultMaxOutputSize,
		AllowTruncated: false,
	}
}

// LenientOptions returns options that accept truncated input silently, for
// asset archives that pad or cut streams short.
func LenientOptions() *Options {
	return &Options{
		MaxOutputSize:  DefaultMaxOutputSize,
		AllowTruncated: true,
	}
}

// maxOutput resolves the effective allocation limit.
func (o *Options) maxOutput() int {
	if o.MaxOutputSize == 0 {
		return DefaultMaxOutputSize
	}

	return o.MaxOutputSize
}
