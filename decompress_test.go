package lz11

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// literalStream builds a stream that encodes data with literals only:
// header plus one zero flag byte per group of up to 8 bytes.
func literalStream(data []byte) []byte {
	src := []byte{Marker, byte(len(data)), byte(len(data) >> 8), byte(len(data) >> 16)}
	for len(data) > 0 {
		n := len(data)
		if n > FlagBits {
			n = FlagBits
		}
		src = append(src, 0x00)
		src = append(src, data[:n]...)
		data = data[n:]
	}

	return src
}

func TestLiteralOnlyRoundTrip(t *testing.T) {
	want := []byte("literal!")
	src := literalStream(want)
	got, err := Decompress(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOverlappingBackReference(t *testing.T) {
	// Four literal 'A's, then a 2-byte token with distance 1 and length 4:
	// each copied byte re-reads the byte written just before it.
	src := []byte{0x11, 0x08, 0x00, 0x00, 0x08, 0x41, 0x41, 0x41, 0x41, 0x30, 0x00}
	got, err := Decompress(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, bytes.Repeat([]byte{0x41}, 8)) {
		t.Fatalf("got %q", got)
	}
}

func TestMediumToken(t *testing.T) {
	// "ab" then a 3-byte token: distance 2, length 18 -> "ab" repeated 10x.
	src := []byte{0x11, 20, 0, 0, 0x20, 'a', 'b', 0x00, 0x10, 0x01}
	got, err := Decompress(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, bytes.Repeat([]byte("ab"), 10)) {
		t.Fatalf("got %q", got)
	}
}

func TestLongToken(t *testing.T) {
	// One literal then a 4-byte token: distance 1, length 273.
	src := []byte{0x11, 0x12, 0x01, 0x00, 0x40, 'x', 0x10, 0x00, 0x00, 0x00}
	got, err := Decompress(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, bytes.Repeat([]byte("x"), 274)) {
		t.Fatalf("got %d bytes, first=%q", len(got), got[:1])
	}
}

func TestExtendedSizeDecode(t *testing.T) {
	want := bytes.Repeat([]byte("deadbeef"), 2)
	src := []byte{0x11, 0, 0, 0, 16, 0, 0, 0}
	src = append(src, 0x00)
	src = append(src, want[:8]...)
	src = append(src, 0x00)
	src = append(src, want[8:]...)

	got, err := Decompress(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestZeroOutputSize(t *testing.T) {
	// 24-bit zero escapes to the 32-bit field, itself zero: empty output.
	got, err := Decompress([]byte{0x11, 0, 0, 0, 0, 0, 0, 0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d bytes, want 0", len(got))
	}
}

func TestTruncatedInputStrict(t *testing.T) {
	// Declares 16 bytes but supplies only 4 literals.
	src := []byte{0x11, 16, 0, 0, 0x00, 'a', 'b', 'c', 'd'}
	got, err := Decompress(src, nil)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("want ErrTruncatedInput, got %v", err)
	}
	want := append([]byte("abcd"), make([]byte, 12)...)
	if !bytes.Equal(got, want) {
		t.Fatalf("partial buffer: got %q, want %q", got, want)
	}
}

func TestTruncatedInputLenient(t *testing.T) {
	src := []byte{0x11, 16, 0, 0, 0x00, 'a', 'b', 'c', 'd'}
	got, err := Decompress(src, LenientOptions())
	if err != nil {
		t.Fatalf("lenient should not error: %v", err)
	}
	if len(got) != 16 || !bytes.Equal(got[:4], []byte("abcd")) {
		t.Fatalf("got %q", got)
	}
}

func TestTruncatedMidToken(t *testing.T) {
	// Input ends inside a 2-byte token; the partial output keeps the literal.
	src := []byte{0x11, 8, 0, 0, 0x40, 'q', 0x30}
	got, err := Decompress(src, nil)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("want ErrTruncatedInput, got %v", err)
	}
	if got[0] != 'q' {
		t.Fatalf("got %q", got)
	}
}

func TestBackReferenceBeforeStart(t *testing.T) {
	// First token is a back-reference with distance 1 at output position 0.
	src := []byte{0x11, 4, 0, 0, 0x80, 0x30, 0x00}
	_, err := Decompress(src, nil)
	if !errors.Is(err, ErrInvalidBackReference) {
		t.Fatalf("want ErrInvalidBackReference, got %v", err)
	}
}

func TestCopyClampedToDeclaredSize(t *testing.T) {
	// Token asks for 16 bytes but only 3 fit in the declared size.
	src := []byte{0x11, 4, 0, 0, 0x40, 'z', 0xF0, 0x00}
	got, err := Decompress(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("zzzz")) {
		t.Fatalf("got %q", got)
	}
}

func TestUnrecognizedFormat(t *testing.T) {
	input := []byte("PK\x03\x04 not lz11")
	_, err := Decompress(input, nil)
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("want ErrUnrecognizedFormat, got %v", err)
	}
}

func TestUnrecognizedFormatShortInput(t *testing.T) {
	// The marker check comes before any size check: input with a wrong first
	// byte is unrecognized however short it is, so callers can pass even
	// tiny uncompressed files through.
	for _, src := range [][]byte{{'P'}, {'P', 'K'}, {'a', 'b', 'c'}} {
		_, err := Decompress(src, nil)
		if !errors.Is(err, ErrUnrecognizedFormat) {
			t.Fatalf("src=%q: want ErrUnrecognizedFormat, got %v", src, err)
		}
	}
}

func TestInputTooShort(t *testing.T) {
	// With the marker present, a header cut short is ErrInputTooShort.
	for _, src := range [][]byte{nil, {}, {0x11}, {0x11, 2}} {
		_, err := Decompress(src, nil)
		if !errors.Is(err, ErrInputTooShort) {
			t.Fatalf("src=%x: want ErrInputTooShort, got %v", src, err)
		}
	}
}

func TestOutputTooLarge(t *testing.T) {
	src := literalStream(bytes.Repeat([]byte("a"), 16))
	_, err := Decompress(src, &Options{MaxOutputSize: 8})
	if !errors.Is(err, ErrOutputTooLarge) {
		t.Fatalf("want ErrOutputTooLarge, got %v", err)
	}
}

func TestDecompressBlockConsumed(t *testing.T) {
	src := literalStream([]byte("payload"))
	want := len(src)
	src = append(src, "trailing garbage"...)

	out, consumed, err := DecompressBlock(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != want {
		t.Fatalf("consumed: got %d, want %d", consumed, want)
	}
	if !bytes.Equal(out, []byte("payload")) {
		t.Fatalf("got %q", out)
	}
}

func TestDecompressFromReader(t *testing.T) {
	src := literalStream([]byte("streamed"))
	src = append(src, 0xEE) // next stream's byte, must not be consumed

	r := bytes.NewReader(src)
	out, consumed, err := DecompressFromReader(r, nil)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != int64(len(src)-1) {
		t.Fatalf("consumed: got %d, want %d", consumed, len(src)-1)
	}
	if !bytes.Equal(out, []byte("streamed")) {
		t.Fatalf("got %q", out)
	}

	next, err := r.ReadByte()
	if err != nil || next != 0xEE {
		t.Fatalf("reader position: got %#x, %v", next, err)
	}
}

func TestDecompressFromPlainReader(t *testing.T) {
	// A reader without ReadByte goes through the bufio path.
	src := literalStream([]byte("buffered"))
	out, _, err := DecompressFromReader(struct{ io.Reader }{bytes.NewReader(src)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte("buffered")) {
		t.Fatalf("got %q", out)
	}
}

func TestDecompressFromNilReader(t *testing.T) {
	_, _, err := DecompressFromReader(nil, nil)
	if !errors.Is(err, ErrNilReader) {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
}
