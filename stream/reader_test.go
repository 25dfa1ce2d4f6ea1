package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lz4jb/lz4jb/block"
	"github.com/lz4jb/lz4jb/lz4raw"
)

// validData is the §6 interop vector: a stored block carrying "...".
var validData = []byte{
	0x4C, 0x5A, 0x34, 0x42, 0x6C, 0x6F, 0x63, 0x6B,
	0x10,
	0x03, 0x00, 0x00, 0x00,
	0x03, 0x00, 0x00, 0x00,
	0x52, 0xE4, 0x77, 0x06,
	0x2E, 0x2E, 0x2E,
}

// validEmpty is the §6 interop vector: the empty terminator block.
var validEmpty = []byte{
	0x4C, 0x5A, 0x34, 0x42, 0x6C, 0x6F, 0x63, 0x6B,
	0x10,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// S1: encode "Hello World!" at block size 64, decode, and expect an exact
// round trip.
func TestRoundTripHelloWorld(t *testing.T) {
	const msg = "Hello World!"
	native := lz4raw.NewNative()

	var buf bytes.Buffer
	w, err := NewWriter(&buf, 64, native)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := io.WriteString(w, msg); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewReader(&buf, native)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != msg {
		t.Fatalf("round trip = %q, want %q", got, msg)
	}
}

// S2: decode the 24-byte stored literal, expect the 3-byte payload and a
// clean stream end.
func TestDecodeStoredLiteral(t *testing.T) {
	r := NewReader(bytes.NewReader(validData), lz4raw.NewNative())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "..." {
		t.Fatalf("got %q, want %q", got, "...")
	}
}

// S3: decode the 21-byte empty-terminator literal, expect an empty result
// and no error.
func TestDecodeEmptyTerminator(t *testing.T) {
	r := NewReader(bytes.NewReader(validEmpty), lz4raw.NewNative())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %q, want empty", got)
	}
}

// S4: mutate the checksum's low byte and expect a CorruptedStream error.
func TestDecodeTamperedChecksumFails(t *testing.T) {
	tampered := append([]byte(nil), validData...)
	tampered[17] = 0x53 // was 0x52

	r := NewReader(bytes.NewReader(tampered), lz4raw.NewNative())
	_, err := io.ReadAll(r)
	var corrupted *block.ErrCorruptedStream
	if !errors.As(err, &corrupted) {
		t.Fatalf("err = %v, want *block.ErrCorruptedStream", err)
	}
}

// S5: a 1MB stream at block size 128 produces ceil(1048576/128) blocks,
// plus one terminator, each introduced by the 8-byte magic.
func TestBlockCountMatchesSizing(t *testing.T) {
	native := lz4raw.NewNative()
	payload := []byte(strings.Repeat(".", 1048576))

	var buf bytes.Buffer
	w, err := NewWriter(&buf, 128, native)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	magic := []byte{0x4C, 0x5A, 0x34, 0x42, 0x6C, 0x6F, 0x63, 0x6B}
	count := bytes.Count(buf.Bytes(), magic)
	want := (1048576+127)/128 + 1 // +1 for the terminator block
	if count != want {
		t.Fatalf("found %d block headers, want %d", count, want)
	}

	r := NewReader(&buf, native)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("round trip mismatch over 1MB payload")
	}
}

// Truncation mid-payload must surface as CorruptedStream, never a silent
// short read or a raw io.ErrUnexpectedEOF.
func TestTruncatedStreamFails(t *testing.T) {
	r := NewReader(bytes.NewReader(validData[:len(validData)-1]), lz4raw.NewNative())
	_, err := io.ReadAll(r)
	var corrupted *block.ErrCorruptedStream
	if !errors.As(err, &corrupted) {
		t.Fatalf("err = %v, want *block.ErrCorruptedStream", err)
	}
}

// A crafted lz4 block whose compressedLen passes every block.ReadHeader
// invariant but exceeds what the level's max decompressed size could ever
// compress to must be rejected as CorruptedStream, not panic on a
// buffer slice.
func TestDecodeOversizedCompressedLenFails(t *testing.T) {
	h := []byte{
		0x4C, 0x5A, 0x34, 0x42, 0x6C, 0x6F, 0x63, 0x6B,
		0x20, // method=lz4, level=0
	}
	var lenBuf [8]byte
	binary.LittleEndian.PutUint32(lenBuf[0:4], 0x7fffffff) // compressedLen
	binary.LittleEndian.PutUint32(lenBuf[4:8], 8)           // decompressedLen
	h = append(h, lenBuf[:]...)
	h = append(h, 0, 0, 0, 0) // checksum, irrelevant: rejected before use

	r := NewReader(bytes.NewReader(h), lz4raw.NewNative())
	_, err := io.ReadAll(r)
	var corrupted *block.ErrCorruptedStream
	if !errors.As(err, &corrupted) {
		t.Fatalf("err = %v, want *block.ErrCorruptedStream", err)
	}
}

// Under the run-to-EOF policy an empty block is just another block, not a
// terminator; only the underlying reader's own EOF ends the stream.
func TestRunToEOFIgnoresEmptyBlock(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(validEmpty)
	buf.Write(validData)

	r := NewReader(&buf, lz4raw.NewNative(), WithRunToEOF())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "..." {
		t.Fatalf("got %q, want %q", got, "...")
	}
}

// Under the default stop-on-empty policy, an empty block ends the stream
// even if more bytes follow it.
func TestStopOnEmptyEndsStream(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(validEmpty)
	buf.Write(validData)

	r := NewReader(&buf, lz4raw.NewNative())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %q, want empty", got)
	}
}

// A caller-supplied checksum function replaces the wire format default;
// decoding validData against a checksum that always disagrees with the
// recorded value must fail.
func TestWithChecksumOverrideRejectsMismatch(t *testing.T) {
	alwaysWrong := func([]byte) uint32 { return 0x12345678 }
	r := NewReader(bytes.NewReader(validData), lz4raw.NewNative(), WithChecksum(alwaysWrong))
	if _, err := io.ReadAll(r); err == nil {
		t.Fatal("expected a checksum mismatch error, got nil")
	}
}
