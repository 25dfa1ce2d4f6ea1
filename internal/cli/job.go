package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lz4jb/lz4jb/lz4raw"
)

func runOne(logger *slog.Logger, opts Options, m mode, capability lz4raw.Capability, path string) error {
	switch m {
	case modeList:
		in, closeIn, err := openInput(path)
		if err != nil {
			return err
		}
		defer closeIn()
		return runList(capability, in, displayName(path), os.Stdout)
	case modeTest:
		in, closeIn, err := openInput(path)
		if err != nil {
			return err
		}
		defer closeIn()
		return runTest(capability, in)
	default:
		return runFileJob(logger, opts, m, capability, path)
	}
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: open input %q: %w", path, err)
	}
	return f, f.Close, nil
}

// runFileJob handles compress/decompress: it resolves source and
// destination (file or stdio), runs the transform, then copies the
// source's permission bits onto the destination and removes the source
// unless --keep was given.
func runFileJob(logger *slog.Logger, opts Options, m mode, capability lz4raw.Capability, path string) error {
	toStdout := opts.Stdout || path == ""

	var in io.Reader
	var inFile *os.File
	if path == "" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cli: open input %q: %w", path, err)
		}
		inFile = f
		in = f
		defer f.Close()
	}

	var outPath string
	if !toStdout {
		p, isStdout, err := outputPath(m == modeCompress, path, opts.Suffix, false)
		if err != nil {
			return err
		}
		outPath, toStdout = p, isStdout
	}

	out, err := openDestination(m, outPath, toStdout, opts.Force)
	if err != nil {
		return err
	}
	defer out.Close()

	if m == modeCompress {
		err = runCompress(logger, capability, opts.BlockSize, in, out)
	} else {
		err = runDecompress(logger, capability, in, out)
	}
	if err != nil {
		return err
	}

	if outFile, ok := out.(*os.File); ok && inFile != nil {
		if info, statErr := inFile.Stat(); statErr == nil {
			_ = outFile.Chmod(info.Mode())
		}
	}

	if !opts.Keep && inFile != nil && outPath != "" {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("cli: remove input %q: %w", path, err)
		}
	}
	return nil
}

func openDestination(m mode, outPath string, toStdout, force bool) (io.WriteCloser, error) {
	if m == modeCompress {
		return openCompressDestination(outPath, toStdout, force, realTerminalChecker{})
	}
	if toStdout {
		return nopCloser{os.Stdout}, nil
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(outPath, flags, 0o666)
	if err != nil {
		return nil, fmt.Errorf("cli: open output %q: %w", outPath, err)
	}
	return f, nil
}
