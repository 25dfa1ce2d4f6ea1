package stream

import (
	"io"

	"github.com/lz4jb/lz4jb/block"
	"github.com/lz4jb/lz4jb/lz4raw"
)

// WriterOption configures a Writer at construction time.
type WriterOption func(*Writer)

// WithWriterChecksum overrides the block checksum function. Defaults to
// block.DefaultChecksum (XXH32, matching the wire format).
func WithWriterChecksum(f func([]byte) uint32) WriterOption {
	return func(w *Writer) { w.checksum = f }
}

// Writer compresses a byte stream into block-framed LZ4, implementing
// io.Writer. Bytes passed to Write accumulate into a block-sized buffer
// and are flushed as one block once it fills; Flush forces a partial block
// out early, and Close flushes and then appends the empty terminator
// block that marks a clean end of stream.
//
// Go has no destructor, so unlike the reference codec's Drop-based
// auto-finalization, callers that need a terminator must Close explicitly.
type Writer struct {
	dst        io.Writer
	capability lz4raw.Capability
	checksum   func([]byte) uint32
	level      block.Level

	pending       []byte
	pendingLen    int
	compressedBuf []byte
	closed        bool
}

// NewWriter returns a Writer that groups written bytes into blocks of at
// most blockSize bytes, compressing each with capability. blockSize must
// be within [block.MinBlockSize, block.MaxBlockSize].
func NewWriter(w io.Writer, blockSize int, capability lz4raw.Capability, opts ...WriterOption) (*Writer, error) {
	level, err := block.LevelFromBlockSize(blockSize)
	if err != nil {
		return nil, err
	}
	wr := &Writer{
		dst:        w,
		capability: capability,
		checksum:   block.DefaultChecksum,
		level:      level,
		pending:    make([]byte, blockSize),
	}
	for _, opt := range opts {
		opt(wr)
	}
	return wr, nil
}

// Write implements io.Writer. Full blocks are flushed to the destination
// as they accumulate; data short of a full block is buffered until the
// next Write, Flush, or Close.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, &ErrInternal{Reason: "write after close"}
	}
	total := 0
	for len(p) > 0 {
		n := copy(w.pending[w.pendingLen:], p)
		w.pendingLen += n
		p = p[n:]
		total += n
		if w.pendingLen == len(w.pending) {
			if err := w.flushBlock(); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Flush emits any buffered, not-yet-full block to the destination. It does
// not write the empty terminator block — that happens only on Close.
func (w *Writer) Flush() error {
	if w.pendingLen == 0 {
		return nil
	}
	return w.flushBlock()
}

// Close flushes any pending data and writes the empty terminator block
// that marks a clean, unambiguous end of stream.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	w.closed = true
	return w.writeTerminator()
}

// WriteTerminator writes the 21-byte empty block that ends a stream,
// without marking the Writer closed. Exposed so callers that manage their
// own lifecycle can emit it on demand.
func (w *Writer) WriteTerminator() error {
	return w.writeTerminator()
}

func (w *Writer) writeTerminator() error {
	h := block.Header{
		Method: block.MethodStored,
		Level:  w.level,
	}
	_, err := block.WriteHeader(w.dst, h)
	return err
}

func (w *Writer) flushBlock() error {
	src := w.pending[:w.pendingLen]

	w.compressedBuf = growBuf(w.compressedBuf, w.capability.CompressBound(len(w.pending)), w.capability.CompressBound(len(src)))
	written, err := w.capability.Compress(w.compressedBuf, src)
	if err != nil {
		return &ErrRawLZ4Failure{Cause: err}
	}

	method := block.MethodLZ4
	payload := w.compressedBuf[:written]
	if written >= len(src) {
		method = block.MethodStored
		payload = src
	}

	h := block.Header{
		Method:          method,
		Level:           w.level,
		CompressedLen:   uint32(len(payload)),
		DecompressedLen: uint32(len(src)),
		Checksum:        w.checksum(src),
	}
	if _, err := block.WriteHeader(w.dst, h); err != nil {
		return err
	}
	if _, err := w.dst.Write(payload); err != nil {
		return err
	}

	w.pendingLen = 0
	return nil
}
