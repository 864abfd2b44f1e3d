package wire

// MaxVarintLen is the maximum number of bytes a varint can occupy.
// A uint64 requires at most 10 bytes in varint encoding.
const MaxVarintLen = 10

// AppendVarint appends v to buf as a base-128 varint and returns the
// extended buffer. Seven bits of data per byte, MSB marks continuation;
// at least one byte is always written, even for zero.
func AppendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// DecodeVarint decodes a varint from data starting at pos, returning the
// value and the position of the first byte past it.
//
// Fails with ErrBufferOverflow if data runs out before a terminating byte,
// and with ErrInvalidVarint if the continuation chain runs past the 10
// bytes a uint64 can need.
func DecodeVarint(data []byte, pos int) (uint64, int, error) {
	var v uint64
	var shift uint

	for {
		if pos >= len(data) {
			return 0, 0, ErrBufferOverflow
		}
		b := data[pos]
		pos++
		v |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return v, pos, nil
		}
		shift += 7
		if shift > 63 {
			return 0, 0, ErrInvalidVarint
		}
	}
}

// VarintLen returns the number of bytes AppendVarint writes for v.
func VarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		n++
		v >>= 7
	}
	return n
}

// AppendKey appends a field key (the combined field-number/wire-type tag)
// as a varint. Composing the tag from field number and wire type is the
// caller's job; this layer only guarantees varint framing.
func AppendKey(buf []byte, tag uint64) []byte {
	return AppendVarint(buf, tag)
}

// DecodeKey decodes a field key. Like AppendKey, it does not split the tag
// into field number and wire type; that decomposition (tag>>3, tag&7)
// belongs at the call site.
func DecodeKey(data []byte, pos int) (uint64, int, error) {
	return DecodeVarint(data, pos)
}

// AppendBool appends v as a single-byte varint, 0 or 1.
func AppendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}
	return append(buf, 0)
}

// DecodeBool decodes a bool. Any nonzero varint decodes as true, per the
// lenient wire-format convention.
func DecodeBool(data []byte, pos int) (bool, int, error) {
	v, pos, err := DecodeVarint(data, pos)
	if err != nil {
		return false, 0, err
	}
	return v != 0, pos, nil
}
