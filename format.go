package lz11

// LZ11 format constants.
const (
	Marker     = 0x11 // First byte of every LZ11 stream.
	WindowSize = 4096 // Maximum backward distance of a back-reference.
	FlagBits   = 8    // Bits per flag byte (MSB first; 0 = literal, 1 = back-reference).

	HeaderSize    = 4 // Marker + 24-bit little-endian output size.
	ExtHeaderSize = 8 // Header with the 32-bit extended size escape appended.

	// Back-reference length bases for the three token widths.
	// A 2-byte token carries a 4-bit length field, a 3-byte token 8 bits,
	// a 4-byte token 16 bits.
	ShortLengthBase  = 1   // 2-byte token: lengths 1..16 (in practice 3..16).
	MediumLengthBase = 17  // 3-byte token: lengths 17..272.
	LongLengthBase   = 273 // 4-byte token: lengths 273..65808.
)

// DefaultMaxOutputSize caps the output allocation implied by a stream header.
// A declared size beyond it is reported as ErrOutputTooLarge instead of being
// allocated; override with Options.MaxOutputSize.
const DefaultMaxOutputSize = 256 << 20
