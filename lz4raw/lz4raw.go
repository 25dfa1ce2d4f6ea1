// Package lz4raw defines the raw LZ4 block compression capability the
// stream package is parameterized over, and two concrete implementations
// of it.
package lz4raw

// Capability is the raw, block-level LZ4 primitive the stream adapters
// are built on. It is the only coupling point between this repo's framing
// logic and whatever LZ4 implementation actually runs the bytes.
type Capability interface {
	// Compress writes the LZ4-compressed form of src into dst and returns
	// the number of bytes written. dst must have at least
	// CompressBound(len(src)) bytes of capacity.
	Compress(dst, src []byte) (int, error)

	// Decompress writes the decompressed form of src into dst and returns
	// the number of bytes written. dst must have exactly the expected
	// decompressed length of capacity.
	Decompress(dst, src []byte) (int, error)

	// CompressBound returns the worst-case compressed length for an input
	// of n bytes.
	CompressBound(n int) int
}
