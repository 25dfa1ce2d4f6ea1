package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lz4jb/lz4jb/lz4raw"
	"github.com/lz4jb/lz4jb/stream"
)

func runCompress(logger *slog.Logger, capability lz4raw.Capability, blockSize int, in io.Reader, out io.Writer) error {
	w, err := stream.NewWriter(out, blockSize, capability)
	if err != nil {
		return err
	}
	n, err := io.Copy(w, in)
	if err != nil {
		return fmt.Errorf("cli: compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("cli: compress: close: %w", err)
	}
	logger.Debug("compressed", "bytes_in", n)
	return nil
}

// openCompressDestination opens the output for compression, refusing to
// clobber an existing file or write compressed bytes to an interactive
// terminal unless force is set.
func openCompressDestination(path string, toStdout, force bool, term terminalChecker) (io.WriteCloser, error) {
	if toStdout {
		if !force && term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, fmt.Errorf("cli: stdout is a terminal, use --force to compress to it anyway")
		}
		return nopCloser{os.Stdout}, nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		return nil, fmt.Errorf("cli: open output %q: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
