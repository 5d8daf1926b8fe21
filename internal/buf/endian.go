// Package buf contains bounds-checked byte access and in-place byte swapping
// used by the record decoders and the byte-order normalizer.
package buf

import (
	"encoding/binary"
	"math/bits"
)

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// U32Order reads a uint32 in the requested order.
func U32Order(b []byte, bigEndian bool) uint32 {
	if bigEndian {
		return U32BE(b)
	}
	return U32LE(b)
}

// U16Order reads a uint16 in the requested order.
func U16Order(b []byte, bigEndian bool) uint16 {
	if bigEndian {
		return U16BE(b)
	}
	return U16LE(b)
}

// Swap16 reverses the two bytes at the start of b in place.
func Swap16(b []byte) {
	if len(b) < 2 {
		return
	}
	binary.LittleEndian.PutUint16(b, bits.ReverseBytes16(binary.LittleEndian.Uint16(b)))
}

// Swap32 reverses the four bytes at the start of b in place.
func Swap32(b []byte) {
	if len(b) < 4 {
		return
	}
	binary.LittleEndian.PutUint32(b, bits.ReverseBytes32(binary.LittleEndian.Uint32(b)))
}

// Swap16N swaps n consecutive 16-bit words starting at b[0].
func Swap16N(b []byte, n int) {
	for i := 0; i < n && 2*i+2 <= len(b); i++ {
		Swap16(b[2*i:])
	}
}

// Swap32N swaps n consecutive 32-bit words starting at b[0].
func Swap32N(b []byte, n int) {
	for i := 0; i < n && 4*i+4 <= len(b); i++ {
		Swap32(b[4*i:])
	}
}
