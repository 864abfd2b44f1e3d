package wire

import "encoding/binary"

// AppendFixed64 appends v as 8 little-endian bytes, no framing.
func AppendFixed64(buf []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(buf, v)
}

// DecodeFixed64 decodes 8 little-endian bytes as a uint64.
func DecodeFixed64(data []byte, pos int) (uint64, int, error) {
	if pos+8 > len(data) {
		return 0, 0, ErrBufferOverflow
	}
	return binary.LittleEndian.Uint64(data[pos:]), pos + 8, nil
}

// AppendSfixed64 appends v as 8 little-endian bytes, bit pattern intact.
func AppendSfixed64(buf []byte, v int64) []byte {
	return AppendFixed64(buf, uint64(v))
}

// DecodeSfixed64 decodes 8 little-endian bytes as an int64. The cast
// preserves the bit pattern, not the magnitude.
func DecodeSfixed64(data []byte, pos int) (int64, int, error) {
	raw, pos, err := DecodeFixed64(data, pos)
	if err != nil {
		return 0, 0, err
	}
	return int64(raw), pos, nil
}

// AppendFixed32 appends v as 4 little-endian bytes, no framing.
func AppendFixed32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

// DecodeFixed32 decodes 4 little-endian bytes as a uint32.
func DecodeFixed32(data []byte, pos int) (uint32, int, error) {
	if pos+4 > len(data) {
		return 0, 0, ErrBufferOverflow
	}
	return binary.LittleEndian.Uint32(data[pos:]), pos + 4, nil
}

// AppendSfixed32 appends v as 4 little-endian bytes, bit pattern intact.
func AppendSfixed32(buf []byte, v int32) []byte {
	return AppendFixed32(buf, uint32(v))
}

// DecodeSfixed32 decodes 4 little-endian bytes as an int32. The cast
// preserves the bit pattern, not the magnitude.
func DecodeSfixed32(data []byte, pos int) (int32, int, error) {
	raw, pos, err := DecodeFixed32(data, pos)
	if err != nil {
		return 0, 0, err
	}
	return int32(raw), pos, nil
}
