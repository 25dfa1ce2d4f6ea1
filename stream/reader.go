// Package stream implements the framing codec: Reader decompresses a
// sequence of block.Header-prefixed blocks back into their original byte
// stream, and Writer does the reverse. This is the part of the system that
// must be bit-exact against a foreign reference implementation.
package stream

import (
	"io"

	"github.com/lz4jb/lz4jb/block"
	"github.com/lz4jb/lz4jb/lz4raw"
)

// ReaderOption configures a Reader at construction time.
type ReaderOption func(*Reader)

// WithChecksum overrides the block checksum function. Defaults to
// block.DefaultChecksum (XXH32, matching the wire format).
func WithChecksum(f func([]byte) uint32) ReaderOption {
	return func(r *Reader) { r.checksum = f }
}

// WithRunToEOF switches the Reader from the default stop-on-empty
// termination policy to run-to-EOF: an empty block no longer ends the
// stream, and only the underlying reader's own EOF does.
func WithRunToEOF() ReaderOption {
	return func(r *Reader) { r.stopOnEmpty = false }
}

// Reader decompresses a block-framed LZ4 stream, implementing io.Reader.
// It reuses its internal buffers across blocks; their capacity only grows.
type Reader struct {
	src         io.Reader
	capability  lz4raw.Capability
	checksum    func([]byte) uint32
	stopOnEmpty bool

	compressedBuf   []byte
	decompressedBuf []byte
	readPos         int
	finished        bool
}

// NewReader returns a Reader pulling block-framed data from r and decoding
// blocks with capability.
func NewReader(r io.Reader, capability lz4raw.Capability, opts ...ReaderOption) *Reader {
	rd := &Reader{
		src:         r,
		capability:  capability,
		checksum:    block.DefaultChecksum,
		stopOnEmpty: true,
	}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Read implements io.Reader. Each call fills the next decompressed block
// into its internal buffer (if the previous one has been fully consumed)
// and copies as much of it as fits into p.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.finished {
		return 0, io.EOF
	}
	if r.readPos == len(r.decompressedBuf) {
		if err := r.fillBlock(); err != nil {
			if err == io.EOF {
				r.finished = true
			}
			return 0, err
		}
	}
	n := copy(p, r.decompressedBuf[r.readPos:])
	r.readPos += n
	return n, nil
}

// fillBlock reads and decodes the next block, skipping empty blocks when
// the run-to-EOF policy is active. Returns io.EOF at clean stream end.
func (r *Reader) fillBlock() error {
	for {
		h, err := block.ReadHeader(r.src)
		if err != nil {
			return err
		}
		if h == nil {
			return io.EOF
		}
		if h.DecompressedLen == 0 {
			if r.stopOnEmpty {
				return io.EOF
			}
			continue
		}
		return r.decodeBlock(h)
	}
}

func (r *Reader) decodeBlock(h *block.Header) error {
	decompressedLen := int(h.DecompressedLen)
	r.decompressedBuf = growBuf(r.decompressedBuf, h.Level.MaxDecompressedLen(), decompressedLen)

	switch h.Method {
	case block.MethodStored:
		if err := readPayload(r.src, r.decompressedBuf); err != nil {
			return err
		}
	case block.MethodLZ4:
		compressedLen := int(h.CompressedLen)
		maxCompressedLen := r.capability.CompressBound(h.Level.MaxDecompressedLen())
		if compressedLen > maxCompressedLen {
			return &block.ErrCorruptedStream{Reason: "compressed length exceeds the level's maximum"}
		}
		r.compressedBuf = growBuf(r.compressedBuf, maxCompressedLen, compressedLen)
		if err := readPayload(r.src, r.compressedBuf); err != nil {
			return err
		}
		n, err := r.capability.Decompress(r.decompressedBuf, r.compressedBuf)
		if err != nil {
			return &ErrRawLZ4Failure{Cause: err}
		}
		if n != decompressedLen {
			return &block.ErrCorruptedStream{Reason: "decompressed length does not match block header"}
		}
	default:
		return &ErrInternal{Reason: "unreachable block method after header validation"}
	}

	if got := r.checksum(r.decompressedBuf); got != h.Checksum {
		return &block.ErrCorruptedStream{Reason: "block checksum mismatch"}
	}
	r.readPos = 0
	return nil
}

// readPayload fills buf entirely from r, reporting any short read — clean
// or not — as a corrupted stream: once a header has been read, the
// payload it promises is no longer optional, so an EOF partway through it
// is a framing violation rather than a normal stream end.
func readPayload(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return &block.ErrCorruptedStream{Reason: "short read in payload"}
		}
		return err
	}
	return nil
}

// growBuf returns buf resized to length, reusing its backing array when
// its capacity already covers it and reallocating (growing only)
// otherwise. The allocated capacity is at least capHint, the typical
// block size, so repeated calls at steady-state don't reallocate; it is
// at least length regardless of capHint, so a length in excess of
// capHint — which callers are expected to reject before calling this —
// still never panics on the final slice.
func growBuf(buf []byte, capHint, length int) []byte {
	need := capHint
	if length > need {
		need = length
	}
	if cap(buf) < need {
		buf = make([]byte, need)
	}
	return buf[:length]
}
