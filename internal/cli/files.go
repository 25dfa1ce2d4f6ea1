package cli

import (
	"fmt"
	"strings"
)

// outputPath derives the destination path for one input file, following
// the same naming rule as the reference CLI: compression appends suffix,
// decompression strips it, and either side can be redirected to stdout.
//
// Returns ("", true, nil) when the destination is stdout.
func outputPath(compress bool, inputPath, suffix string, toStdout bool) (string, bool, error) {
	if toStdout {
		return "", true, nil
	}
	if compress {
		return inputPath + suffix, false, nil
	}
	if !strings.HasSuffix(inputPath, suffix) {
		return "", false, fmt.Errorf("cli: could not guess the output filename for %q: missing suffix %q", inputPath, suffix)
	}
	return inputPath[:len(inputPath)-len(suffix)], false, nil
}
