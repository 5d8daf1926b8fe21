package format

import "encoding/binary"

// Field accessors for the native (little-endian) stream. Offsets are
// relative to b and must already be bounds-checked; big-endian access is
// only needed by the normalizer and lives in internal/buf.

var le = binary.LittleEndian

func PutU16(b []byte, off int, v uint16) { le.PutUint16(b[off:], v) }
func PutI16(b []byte, off int, v int16)  { le.PutUint16(b[off:], uint16(v)) }
func PutU32(b []byte, off int, v uint32) { le.PutUint32(b[off:], v) }
func PutI32(b []byte, off int, v int32)  { le.PutUint32(b[off:], uint32(v)) }

func ReadU16(b []byte, off int) uint16 { return le.Uint16(b[off:]) }
func ReadI16(b []byte, off int) int16  { return int16(le.Uint16(b[off:])) }
func ReadU32(b []byte, off int) uint32 { return le.Uint32(b[off:]) }
func ReadI32(b []byte, off int) int32  { return int32(le.Uint32(b[off:])) }
