package lz11

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses one LZ11 stream from src into a new buffer of the
// size declared by the header. Options nil means DefaultOptions (strict
// truncation handling, default allocation limit).
//
// Bytes remaining after the output is complete are ignored; the format has no
// explicit terminator.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out, _, err := DecompressBlock(src, opts)

	return out, err
}

// DecompressBlock decompresses one LZ11 stream from the beginning of src and
// additionally reports the number of input bytes consumed (header + token
// stream), for callers unpacking concatenated streams.
func DecompressBlock(src []byte, opts *Options) ([]byte, int, error) {
	reader := &countingByteReader{base: bytes.NewReader(src)}
	out, err := decompressFromByteReader(reader, opts)

	return out, int(reader.count), err
}

// DecompressFromReader decompresses one LZ11 stream from r and returns the
// number of bytes consumed. Decoding stops as soon as the declared output
// size is reached; r is left positioned after the last token byte read.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	out, err := decompressFromByteReader(countingReader, opts)

	return out, countingReader.count, err
}

// decompressFromByteReader decodes header and token stream from a byte reader.
func decompressFromByteReader(r io.ByteReader, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	outLen, _, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	// outLen < 0 can only happen on 32-bit ints with the extended size escape.
	if limit := opts.maxOutput(); outLen < 0 || (limit >= 0 && outLen > limit) {
		return nil, fmt.Errorf("%w: declared=%d limit=%d", ErrOutputTooLarge, outLen, limit)
	}

	out := make([]byte, outLen)
	pos := 0

	// Read a token-stream byte. EOF here means the input ended before the
	// declared output size was filled, which the format treats as a valid
	// (truncated) stream rather than corruption.
	readByte := func() (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrTruncatedInput
			}

			return 0, err
		}

		return b, nil
	}

	// On truncation return the partial buffer: bytes past pos keep their
	// zero initialization. Strict mode pairs it with the sentinel so the
	// caller can tell a short stream from a complete one.
	finish := func(err error) ([]byte, error) {
		if !errors.Is(err, ErrTruncatedInput) {
			return nil, err
		}

		if opts.AllowTruncated {
			return out, nil
		}

		return out, fmt.Errorf("%w: produced=%d declared=%d", ErrTruncatedInput, pos, outLen)
	}

	for pos < outLen {
		flagByte, err := readByte()
		if err != nil {
			return finish(err)
		}

		// One flag bit per token, most significant bit first. Trailing bits
		// of the last flag byte go unused once the output is complete.
		for bit := FlagBits - 1; bit >= 0 && pos < outLen; bit-- {
			if (flagByte>>bit)&1 == 0 {
				b, err := readByte()
				if err != nil {
					return finish(err)
				}

				out[pos] = b
				pos++

				continue
			}

			first, err := readByte()
			if err != nil {
				return finish(err)
			}
			second, err := readByte()
			if err != nil {
				return finish(err)
			}

			var distance, length int

			// The high nibble of the first token byte selects the width:
			// 0 -> 3-byte token (8-bit length field), 1 -> 4-byte token
			// (16-bit length field), 2..15 -> 2-byte token with the nibble
			// itself as the length field.
			switch first >> 4 {
			case 0:
				third, err := readByte()
				if err != nil {
					return finish(err)
				}

				distance = (int(second&0xF)<<8 | int(third)) + 1
				length = (int(first&0xF)<<4 | int(second)>>4) + MediumLengthBase
			case 1:
				third, err := readByte()
				if err != nil {
					return finish(err)
				}
				fourth, err := readByte()
				if err != nil {
					return finish(err)
				}

				distance = (int(third&0xF)<<8 | int(fourth)) + 1
				length = (int(first&0xF)<<12 | int(second)<<4 | int(third)>>4) + LongLengthBase
			default:
				distance = (int(first&0xF)<<8 | int(second)) + 1
				length = int(first>>4) + ShortLengthBase
			}

			if distance > pos {
				return nil, fmt.Errorf("%w: distance=%d position=%d", ErrInvalidBackReference, distance, pos)
			}

			// A token may declare more bytes than the output has room for;
			// cap at the declared size like the format's reference decoders.
			if pos+length > outLen {
				length = outLen - pos
			}

			rpos := pos - distance

			// Overlapping back-reference (distance < length): must copy byte
			// by byte so each written byte is visible as the source of a
			// later one in the same token (RLE-like expansion). copy(dst, src)
			// does not handle overlap.
			if distance < length {
				for y := 0; y < length; y++ {
					out[pos+y] = out[rpos+y]
				}
			} else {
				copy(out[pos:pos+length], out[rpos:rpos+length])
			}
			pos += length
		}
	}

	return out, nil
}
