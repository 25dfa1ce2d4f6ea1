// Package block implements the lz4-java block-framed wire format: the
// fixed 21-byte block header, the compression-level/method token
// mappings, and the default checksum contract. It has no notion of
// streaming — see the stream package for the io.Reader/io.Writer
// adapters built on top of it.
package block

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lz4jb/lz4jb/checksum"
)

// Magic is the literal 8-byte sequence every block header begins with.
var Magic = [8]byte{'L', 'Z', '4', 'B', 'l', 'o', 'c', 'k'}

// HeaderLength is the fixed size in bytes of a serialized Header.
const HeaderLength = 8 + 1 + 4 + 4 + 4

// ErrCorruptedStream reports that a header or the data it describes
// violates one of the wire format's invariants.
type ErrCorruptedStream struct {
	Reason string
}

func (e *ErrCorruptedStream) Error() string {
	if e.Reason == "" {
		return "block: corrupted stream"
	}
	return fmt.Sprintf("block: corrupted stream: %s", e.Reason)
}

func corrupted(reason string) error {
	return &ErrCorruptedStream{Reason: reason}
}

// Header is one block's framing metadata.
type Header struct {
	Method          Method
	Level           Level
	CompressedLen   uint32
	DecompressedLen uint32
	Checksum        uint32
}

// DefaultChecksum is the wire format's default checksum function: XXH32
// seeded with 0x9747b28c, masked to 28 bits. The seed and mask are part of
// the compatibility contract and must not change.
func DefaultChecksum(buf []byte) uint32 {
	return checksum.Default(buf)
}

// ReadHeader attempts to read one 21-byte header from r.
//
// If r is cleanly exhausted before any byte of the header is read, this
// returns (nil, nil): that is a normal end of stream, not an error. Any
// other read failure — including a short read partway through the header —
// propagates as an error. A fully-read header is validated against every
// invariant in the wire format; a violation yields an *ErrCorruptedStream
// with no partial Header returned.
func ReadHeader(r io.Reader) (*Header, error) {
	var buf [HeaderLength]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		if n == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
			return nil, nil
		}
		return nil, err
	}

	if [8]byte(buf[0:8]) != Magic {
		return nil, corrupted("bad magic")
	}

	token := buf[8]
	method, err := MethodFromToken(token)
	if err != nil {
		return nil, corrupted(err.Error())
	}
	level := LevelFromToken(token)

	compressedLen := binary.LittleEndian.Uint32(buf[9:13])
	decompressedLen := binary.LittleEndian.Uint32(buf[13:17])
	chk := binary.LittleEndian.Uint32(buf[17:21])

	if decompressedLen > uint32(level.MaxDecompressedLen()) {
		return nil, corrupted("decompressed length exceeds level's maximum")
	}
	if compressedLen > uint32(1<<31-1) {
		return nil, corrupted("compressed length exceeds signed 32-bit range")
	}
	if (compressedLen == 0) != (decompressedLen == 0) {
		return nil, corrupted("compressed/decompressed length zero mismatch")
	}
	if method == MethodStored && compressedLen != decompressedLen {
		return nil, corrupted("stored block with compressed != decompressed length")
	}
	if compressedLen == 0 && decompressedLen == 0 && chk != 0 {
		return nil, corrupted("empty block with non-zero checksum")
	}

	return &Header{
		Method:          method,
		Level:           level,
		CompressedLen:   compressedLen,
		DecompressedLen: decompressedLen,
		Checksum:        chk,
	}, nil
}

// WriteHeader serializes h as 21 little-endian bytes to w, returning the
// number of bytes written.
func WriteHeader(w io.Writer, h Header) (int, error) {
	var buf [HeaderLength]byte
	copy(buf[0:8], Magic[:])
	buf[8] = h.Method.Token() | h.Level.Token()
	binary.LittleEndian.PutUint32(buf[9:13], h.CompressedLen)
	binary.LittleEndian.PutUint32(buf[13:17], h.DecompressedLen)
	binary.LittleEndian.PutUint32(buf[17:21], h.Checksum)
	return w.Write(buf[:])
}
