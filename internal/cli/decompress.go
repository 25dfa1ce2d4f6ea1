package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lz4jb/lz4jb/lz4raw"
	"github.com/lz4jb/lz4jb/stream"
)

func runDecompress(logger *slog.Logger, capability lz4raw.Capability, in io.Reader, out io.Writer) error {
	r := stream.NewReader(in, capability)
	n, err := io.Copy(out, r)
	if err != nil {
		return fmt.Errorf("cli: decompress: %w", err)
	}
	logger.Debug("decompressed", "bytes_out", n)
	return nil
}

func runTest(capability lz4raw.Capability, in io.Reader) error {
	r := stream.NewReader(in, capability)
	if _, err := io.Copy(io.Discard, r); err != nil {
		return fmt.Errorf("cli: test: %w", err)
	}
	return nil
}
