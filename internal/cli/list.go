package cli

import (
	"fmt"
	"io"

	"github.com/lz4jb/lz4jb/lz4raw"
	"github.com/lz4jb/lz4jb/stream"
)

// listHeader is printed once before any per-file list rows.
const listHeader = "         compressed        decompressed  ratio filename"

func runList(capability lz4raw.Capability, in io.Reader, name string, out io.Writer) error {
	counter := newReadCounter(in)
	r := stream.NewReader(counter, capability)
	decompressedSize, err := io.Copy(io.Discard, r)
	if err != nil {
		return fmt.Errorf("cli: list: %w", err)
	}

	compressedSize := counter.sum
	var ratio float64
	if decompressedSize > 0 {
		ratio = 100 * float64(compressedSize) / float64(decompressedSize)
	}
	_, err = fmt.Fprintf(out, "%19d %19d %4.1f%% %s\n", compressedSize, decompressedSize, ratio, name)
	return err
}
