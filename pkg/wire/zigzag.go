package wire

// ZigZag folds signed integers into unsigned ones so that small magnitudes
// of either sign encode as short varints:
//
//	0 → 0, -1 → 1, 1 → 2, -2 → 3, 2 → 4, ...
//
// The fold is (v << 1) ^ (v >> bits-1) with an arithmetic right shift, so
// the minimum representable value maps cleanly without overflow.

// AppendZigzag32 appends v as a zigzag-folded varint.
func AppendZigzag32(buf []byte, v int32) []byte {
	return AppendVarint(buf, uint64(uint32((v<<1)^(v>>31))))
}

// DecodeZigzag32 decodes a zigzag-folded varint as an int32.
func DecodeZigzag32(data []byte, pos int) (int32, int, error) {
	raw, pos, err := DecodeVarint(data, pos)
	if err != nil {
		return 0, 0, err
	}
	n := uint32(raw)
	return int32(n>>1) ^ -int32(n&1), pos, nil
}

// AppendZigzag64 appends v as a zigzag-folded varint.
func AppendZigzag64(buf []byte, v int64) []byte {
	return AppendVarint(buf, uint64((v<<1)^(v>>63)))
}

// DecodeZigzag64 decodes a zigzag-folded varint as an int64.
func DecodeZigzag64(data []byte, pos int) (int64, int, error) {
	raw, pos, err := DecodeVarint(data, pos)
	if err != nil {
		return 0, 0, err
	}
	return int64(raw>>1) ^ -int64(raw&1), pos, nil
}

// Zigzag64Len returns the number of bytes AppendZigzag64 writes for v.
func Zigzag64Len(v int64) int {
	return VarintLen(uint64((v << 1) ^ (v >> 63)))
}
