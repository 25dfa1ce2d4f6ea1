package block

import "fmt"

const levelBase = 10

// MinBlockSize and MaxBlockSize bound the block sizes a Level can
// represent: MinBlockSize maps to level 0, MaxBlockSize to level 15.
const (
	MinBlockSize = 64
	MaxBlockSize = 1 << (levelBase + 0x0f) // 33554432
)

// Level is the 4-bit compression level carried in a header token's low
// nibble. It commits the writer to a maximum decompressed block size of
// 1<<(10+Level).
type Level uint8

// ErrWrongBlockSize reports a requested block size outside [MinBlockSize,
// MaxBlockSize].
type ErrWrongBlockSize struct {
	Size     int
	Min, Max int
}

func (e *ErrWrongBlockSize) Error() string {
	return fmt.Sprintf("block: wrong block size %d, must be between %d and %d", e.Size, e.Min, e.Max)
}

// blockSizeTable[i] is the largest block size that level i can represent,
// for i in 0..=15; i.e. 1<<(10+i).
var blockSizeTable = func() [16]int {
	var t [16]int
	for i := range t {
		t[i] = 1 << (levelBase + i)
	}
	return t
}()

// LevelFromBlockSize returns the smallest level L such that
// 1<<(10+L) >= size, for size in [MinBlockSize, MaxBlockSize].
func LevelFromBlockSize(size int) (Level, error) {
	if size < MinBlockSize || size > MaxBlockSize {
		return 0, &ErrWrongBlockSize{Size: size, Min: MinBlockSize, Max: MaxBlockSize}
	}
	for i, cap := range blockSizeTable {
		if cap >= size {
			return Level(i), nil
		}
	}
	// Unreachable: MaxBlockSize == blockSizeTable[15].
	return 0, &ErrWrongBlockSize{Size: size, Min: MinBlockSize, Max: MaxBlockSize}
}

// LevelFromToken extracts the compression level from a header token's low
// nibble. Every nibble value is a valid level, so this never fails.
func LevelFromToken(token byte) Level {
	return Level(token & 0x0f)
}

// Token returns the level as a header token's low nibble.
func (l Level) Token() byte {
	return byte(l) & 0x0f
}

// MaxDecompressedLen returns the maximum decompressed block size this
// level legitimizes: 1<<(10+level).
func (l Level) MaxDecompressedLen() int {
	return 1 << (levelBase + int(l))
}
