//go:build cgo

package lz4raw

// #cgo pkg-config: liblz4
// #include <lz4.h>
import "C"

import (
	"errors"
	"unsafe"
)

// CGO is a Capability backed by the system liblz4, via cgo. Adapted
// directly from the teacher codec's Compress/Uncompress/CompressBound
// cgo bindings, repurposed here as one of two pluggable raw LZ4 backends
// instead of the only one.
type CGO struct{}

// NewCGO returns a Capability backed by liblz4. Always succeeds when built
// with the cgo tag; see cgo_unavailable.go for the non-cgo stub.
func NewCGO() (*CGO, error) {
	return &CGO{}, nil
}

func ptr(b []byte) *C.char {
	if len(b) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}

// Compress implements Capability.
func (CGO) Compress(dst, src []byte) (int, error) {
	n := int(C.LZ4_compress_default(ptr(src), ptr(dst), C.int(len(src)), C.int(len(dst))))
	if n <= 0 && len(src) != 0 {
		return 0, errors.New("lz4raw: cgo compress: insufficient destination buffer")
	}
	return n, nil
}

// Decompress implements Capability.
func (CGO) Decompress(dst, src []byte) (int, error) {
	n := int(C.LZ4_decompress_safe(ptr(src), ptr(dst), C.int(len(src)), C.int(len(dst))))
	if n < 0 {
		return 0, errors.New("lz4raw: cgo decompress: malformed input")
	}
	return n, nil
}

// CompressBound implements Capability.
func (CGO) CompressBound(n int) int {
	return int(C.LZ4_compressBound(C.int(n)))
}
