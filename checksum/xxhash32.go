// Package checksum implements the 32-bit XXH32 hash used by the default
// block checksum, and the seed/mask contract the lz4-java wire format
// expects from it.
package checksum

import "encoding/binary"

// DefaultSeed is the seed net.jpountz.lz4's StreamingXXHash32 uses, and the
// one the wire format's default checksum is built on. Part of the
// compatibility contract: do not change.
const DefaultSeed uint32 = 0x9747b28c

const (
	prime32_1 uint32 = 2654435761
	prime32_2 uint32 = 2246822519
	prime32_3 uint32 = 3266489917
	prime32_4 uint32 = 668265263
	prime32_5 uint32 = 374761393
)

// XXH32 computes the 32-bit xxHash of buf with the given seed.
func XXH32(buf []byte, seed uint32) uint32 {
	n := len(buf)
	p := 0
	var h32 uint32

	if n >= 16 {
		v1 := seed + prime32_1 + prime32_2
		v2 := seed + prime32_2
		v3 := seed
		v4 := seed - prime32_1

		limit := n - 16
		for p <= limit {
			v1 = round32(v1, binary.LittleEndian.Uint32(buf[p:]))
			p += 4
			v2 = round32(v2, binary.LittleEndian.Uint32(buf[p:]))
			p += 4
			v3 = round32(v3, binary.LittleEndian.Uint32(buf[p:]))
			p += 4
			v4 = round32(v4, binary.LittleEndian.Uint32(buf[p:]))
			p += 4
		}
		h32 = rotl32(v1, 1) + rotl32(v2, 7) + rotl32(v3, 12) + rotl32(v4, 18)
	} else {
		h32 = seed + prime32_5
	}

	h32 += uint32(n)

	for p+4 <= n {
		h32 += binary.LittleEndian.Uint32(buf[p:]) * prime32_3
		h32 = rotl32(h32, 17) * prime32_4
		p += 4
	}
	for p < n {
		h32 += uint32(buf[p]) * prime32_5
		h32 = rotl32(h32, 11) * prime32_1
		p++
	}

	h32 ^= h32 >> 15
	h32 *= prime32_2
	h32 ^= h32 >> 13
	h32 *= prime32_3
	h32 ^= h32 >> 16

	return h32
}

func round32(acc, input uint32) uint32 {
	acc += input * prime32_2
	acc = rotl32(acc, 13)
	acc *= prime32_1
	return acc
}

func rotl32(x uint32, r uint) uint32 {
	return (x << r) | (x >> (32 - r))
}

// Default computes the wire format's default block checksum: XXH32 seeded
// with DefaultSeed, masked to 28 bits. Dropping the top nibble matches
// net.jpountz.xxhash.StreamingXXHash32's behavior, which lz4-java's writer
// relies on; producers that leave the top nibble non-zero will fail the
// equality check against this masked value on read.
func Default(buf []byte) uint32 {
	return XXH32(buf, DefaultSeed) & 0x0fffffff
}
