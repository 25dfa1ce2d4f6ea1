//go:build !cgo

package lz4raw

import "errors"

// CGO is the cgo-backed Capability's placeholder on builds without cgo.
type CGO struct{}

// ErrCGOUnavailable is returned by NewCGO when this binary was built
// without cgo support.
var ErrCGOUnavailable = errors.New("lz4raw: cgo backend unavailable in this build")

// NewCGO always fails on a non-cgo build.
func NewCGO() (*CGO, error) {
	return nil, ErrCGOUnavailable
}

func (CGO) Compress(dst, src []byte) (int, error)   { return 0, ErrCGOUnavailable }
func (CGO) Decompress(dst, src []byte) (int, error) { return 0, ErrCGOUnavailable }
func (CGO) CompressBound(n int) int                 { return 0 }
