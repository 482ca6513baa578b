package lz11

import (
	"bytes"
	"errors"
	"io"
)

// DecompressedSize reads the LZ11 header of src and returns the declared
// output size and the header size in bytes (HeaderSize, or ExtHeaderSize when
// the 24-bit size field is zero and the 32-bit extended size escape is used).
// The token stream begins immediately after the header.
func DecompressedSize(src []byte) (size int, headerSize int, err error) {
	return readHeader(bytes.NewReader(src))
}

// readHeader consumes the header from r. The reader is left positioned at the
// first flag byte.
func readHeader(r io.ByteReader) (size int, headerSize int, err error) {
	marker, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, 0, ErrInputTooShort
		}

		return 0, 0, err
	}

	if marker != Marker {
		return 0, 0, ErrUnrecognizedFormat
	}

	var buf [4]byte
	if err := readFull(r, buf[:3]); err != nil {
		return 0, 0, err
	}

	size = int(buf[0]) | int(buf[1])<<8 | int(buf[2])<<16
	headerSize = HeaderSize

	// 24-bit field of zero selects the 32-bit extended size escape.
	if size == 0 {
		if err := readFull(r, buf[:4]); err != nil {
			return 0, 0, err
		}

		size = int(buf[0]) | int(buf[1])<<8 | int(buf[2])<<16 | int(buf[3])<<24
		headerSize = ExtHeaderSize
	}

	return size, headerSize, nil
}

// readFull fills buf from r, mapping EOF to ErrInputTooShort.
func readFull(r io.ByteReader, buf []byte) error {
	for i := range buf {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrInputTooShort
			}

			return err
		}

		buf[i] = b
	}

	return nil
}
