// Command lz4jb compresses, decompresses, lists, and tests files in the
// lz4-java block-framed container format.
package main

import (
	"os"

	"github.com/lz4jb/lz4jb/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
