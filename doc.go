/*
Package lz11 decompresses the LZ11 variant of LZ77/LZSS used by handheld
asset pipelines (streams starting with the 0x11 marker byte).

Format: header of marker byte 0x11 plus 24-bit little-endian output size;
a size field of zero selects a 32-bit little-endian size in the next 4 bytes.
Then one flag byte per 8 tokens, bits consumed MSB first: bit 0 = literal
(1 byte), bit 1 = back-reference. Back-references come in three widths keyed
on the high nibble of their first byte: 2 bytes (length 1..16), 3 bytes
(length 17..272), 4 bytes (length 273..65808); distance is always 1..4096.
A back-reference may overlap its own output (distance < length), which
expands a short repeating pattern byte by byte. Input that ends early yields
a partial, zero-padded buffer.

Use Decompress(src, opts) with nil for default (strict: truncated input is
an error).
Use DecompressBlock(src, opts) to decode from the beginning of src and get
consumed bytes, for concatenated streams.
Use DecompressFromReader(r, opts) to decode one stream without reading to EOF.
Use DecompressedSize(src) to read the header only.
Use LenientOptions() to accept truncated streams silently.

# Examples

Decompress with default options:

	out, err := lz11.Decompress(encoded, nil)
	if err != nil {
		return err
	}

Inspect the header before deciding to decode:

	size, headerSize, err := lz11.DecompressedSize(encoded)
	if err != nil {
		return err
	}
	_ = headerSize

Decompress one stream from a byte stream and continue from the position
after it:

	out, consumed, err := lz11.DecompressFromReader(r, nil)
	if err != nil {
		return err
	}
	_ = consumed

Accept a truncated stream and keep the partial buffer:

	out, err := lz11.Decompress(encoded, lz11.LenientOptions())

Distinguish a short stream from a complete one while keeping its bytes:

	out, err := lz11.Decompress(encoded, nil)
	if errors.Is(err, lz11.ErrTruncatedInput) {
		// out holds everything the stream produced, zero-padded.
	}
*/
package lz11
