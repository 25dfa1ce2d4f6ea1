// Package cli implements the lz4jb command-line front end: flag parsing,
// mode dispatch (compress/decompress/list/test), and the file-handling
// policy (suffix derivation, stdout redirection, permission preservation,
// input removal) around the stream package's adapters.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lz4jb/lz4jb/lz4raw"
)

// Options is the complete CLI flag surface.
type Options struct {
	Compress   bool `short:"z" long:"compress" description:"Compress. This is the default operation mode."`
	Decompress bool `short:"d" long:"decompress" description:"Decompress."`
	Uncompress bool `long:"uncompress" description:"Alias for --decompress." hidden:"yes"`
	List       bool `short:"l" long:"list" description:"List compressed file contents."`
	Test       bool `short:"t" long:"test" description:"Test the integrity of compressed files."`

	Stdout bool `short:"c" long:"stdout" description:"Write output on standard output."`
	Keep   bool `short:"k" long:"keep" description:"Keep (don't delete) input files."`
	Force  bool `short:"f" long:"force" description:"Overwrite existing output; allow compressed bytes to a terminal."`

	Suffix    string `short:"S" long:"suffix" description:"Output suffix for compression; input suffix stripped on decompression." default:".lz4"`
	BlockSize int    `short:"b" long:"blocksize" description:"Bytes per block (64..=33554432)." default:"4194304"`
	Library   string `short:"L" long:"library" description:"Raw LZ4 implementation to use." default:"native" choice:"native" choice:"cgo"`
	Verbose   bool   `short:"v" long:"verbose" description:"Raise log verbosity to debug."`

	Args struct {
		Files []string `positional-arg-name:"file" description:"Input files. Zero means stdin/stdout."`
	} `positional-args:"yes"`
}

// Exit codes, per spec: 0 success, 1 a per-file operation failed, 2
// argument parsing (or equivalent programming-error class) failed.
const (
	ExitOK            = 0
	ExitOperationFail = 1
	ExitArgumentFail  = 2
)

type mode int

const (
	modeCompress mode = iota
	modeDecompress
	modeList
	modeTest
)

// Run parses args and executes the selected mode, returning a process
// exit code. It never panics outward: an unexpected failure is caught and
// reported as an argument-class error, matching the teacher's logged
// error-then-exit-code CLI idiom.
func Run(args []string) (code int) {
	logger := newLogger(os.Stderr, false)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("internal error", "panic", r)
			code = ExitArgumentFail
		}
	}()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "lz4jb"
	if _, err := parser.ParseArgs(args); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return ExitOK
		}
		return ExitArgumentFail
	}

	logger = newLogger(os.Stderr, opts.Verbose)

	m, err := resolveMode(opts)
	if err != nil {
		logger.Error(err.Error())
		return ExitArgumentFail
	}

	capability, err := resolveCapability(opts.Library)
	if err != nil {
		logger.Error(err.Error())
		return ExitArgumentFail
	}

	jobs := opts.Args.Files
	if len(jobs) == 0 {
		jobs = []string{""}
	}

	if m == modeList {
		fmt.Fprintln(os.Stdout, listHeader)
	}

	worst := ExitOK
	for _, path := range jobs {
		if err := runOne(logger, opts, m, capability, path); err != nil {
			logger.Error("operation failed", "file", displayName(path), "err", err)
			worst = ExitOperationFail
		}
	}
	return worst
}

func resolveMode(opts Options) (mode, error) {
	decompress := opts.Decompress || opts.Uncompress
	selected := 0
	for _, b := range []bool{opts.Compress, decompress, opts.List, opts.Test} {
		if b {
			selected++
		}
	}
	if selected > 1 {
		return 0, errors.New("cli: at most one of --compress, --decompress, --list, --test may be given")
	}
	switch {
	case decompress:
		return modeDecompress, nil
	case opts.List:
		return modeList, nil
	case opts.Test:
		return modeTest, nil
	default:
		return modeCompress, nil
	}
}

func resolveCapability(name string) (lz4raw.Capability, error) {
	switch name {
	case "native", "":
		return lz4raw.NewNative(), nil
	case "cgo":
		c, err := lz4raw.NewCGO()
		if err != nil {
			return nil, fmt.Errorf("cli: library cgo: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("cli: unknown library %q", name)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func displayName(path string) string {
	if path == "" {
		return "<stdio>"
	}
	return path
}
