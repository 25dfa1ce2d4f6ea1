package lz4raw

import (
	"fmt"

	lz4 "github.com/pierrec/lz4/v4"
)

// Native is a pure-Go Capability built on github.com/pierrec/lz4/v4's
// block API. It requires no cgo and is the CLI's default backend.
type Native struct {
	compressor lz4.Compressor
}

// NewNative returns a ready-to-use pure-Go Capability.
func NewNative() *Native {
	return &Native{}
}

// Compress implements Capability.
func (n *Native) Compress(dst, src []byte) (int, error) {
	written, err := n.compressor.CompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4raw: native compress: %w", err)
	}
	if written == 0 && len(src) != 0 {
		// CompressBlock returns 0 with no error when it judges the input
		// incompressible into the given dst. Report a length that is not
		// shorter than the input so the caller falls back to storing the
		// block uncompressed, rather than mistaking this for an empty
		// compressed payload.
		written = len(src)
	}
	return written, nil
}

// Decompress implements Capability.
func (n *Native) Decompress(dst, src []byte) (int, error) {
	written, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4raw: native decompress: %w", err)
	}
	return written, nil
}

// CompressBound implements Capability.
func (n *Native) CompressBound(size int) int {
	return lz4.CompressBlockBound(size)
}
