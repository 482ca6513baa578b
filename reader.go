package lz11

import "io"

// countingByteReader wraps an io.ByteReader and counts the bytes consumed, so
// DecompressBlock and DecompressFromReader can report where one stream ends
// inside a larger input.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

// ReadByte reads a byte from the wrapped reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}
