package chash

import (
	"encoding/binary"
	"math/bits"
)

const (
	// BlockSize is the number of bytes consumed by one mixing round.
	BlockSize = 12
	initValue = 0xdeadbeef
)

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= bits.RotateLeft32(c, 4)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 6)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 8)
	b += a
	a -= c
	a ^= bits.RotateLeft32(c, 16)
	c += b
	b -= a
	b ^= bits.RotateLeft32(a, 19)
	a += c
	c -= b
	c ^= bits.RotateLeft32(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)
	return a, b, c
}

// HashLittle2 is Bob Jenkins' lookup3 hashlittle2. pc and pb seed the two
// outputs; the returned c is the primary 32-bit hash and b the secondary one.
//
// Bytes are always read little-endian, so the result does not depend on the
// host byte order.
func HashLittle2(key []byte, pc uint32, pb uint32) (c uint32, b uint32) {
	a := uint32(initValue) + uint32(len(key)) + pc
	b = a
	c = a + pb

	for len(key) > BlockSize {
		a += binary.LittleEndian.Uint32(key[0:4])
		b += binary.LittleEndian.Uint32(key[4:8])
		c += binary.LittleEndian.Uint32(key[8:12])
		a, b, c = mix(a, b, c)
		key = key[BlockSize:]
	}

	// zero length tail needs no mixing
	if len(key) == 0 {
		return c, b
	}

	tail := make([]byte, BlockSize)
	copy(tail, key)
	a += binary.LittleEndian.Uint32(tail[0:4])
	b += binary.LittleEndian.Uint32(tail[4:8])
	c += binary.LittleEndian.Uint32(tail[8:12])
	_, b, c = final(a, b, c)

	return c, b
}

// Hash64 combines both lookup3 outputs into the 64-bit value stored in root
// files: the secondary hash in the low half, the primary one in the high half.
func Hash64(key []byte) uint64 {
	high, low := HashLittle2(key, 0, 0)
	return uint64(low) | uint64(high)<<32
}
