package cli

import "io"

// readCounter wraps an io.Reader, tallying the number of bytes read
// through it. Used by list mode to report a compressed-file's on-disk
// size without a separate os.Stat call on non-seekable inputs.
type readCounter struct {
	r   io.Reader
	sum int64
}

func newReadCounter(r io.Reader) *readCounter {
	return &readCounter{r: r}
}

func (c *readCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.sum += int64(n)
	return n, err
}
