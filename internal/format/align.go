package format

// Align4 returns n aligned up to the next 4-byte boundary.
// Every record size and every variable-length tail is padded this way.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + RecordAlignmentMask) & ^RecordAlignmentMask
}

// Align4U32 is the uint32 form of Align4, used when filling nSize fields.
func Align4U32(n uint32) uint32 {
	return (n + RecordAlignmentMask) & ^uint32(RecordAlignmentMask)
}

// IsAligned4 reports whether n is a multiple of four.
func IsAligned4(n int) bool {
	return n&RecordAlignmentMask == 0
}
