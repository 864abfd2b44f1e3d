package wire

// SkipField advances pos past one encoded value of the given wire type
// without materializing it. This is how higher-level decoders tolerate
// unknown fields during forward-compatible schema evolution.
//
// Wire types outside {0, 1, 2, 5} fail with UnknownWireTypeError carrying
// the offending value.
func SkipField(data []byte, pos int, wt Type) (int, error) {
	switch wt {
	case TypeVarint:
		_, end, err := DecodeVarint(data, pos)
		if err != nil {
			return 0, err
		}
		return end, nil
	case TypeFixed64:
		if pos+8 > len(data) {
			return 0, ErrBufferOverflow
		}
		return pos + 8, nil
	case TypeBytes:
		length, pos, err := DecodeVarint(data, pos)
		if err != nil {
			return 0, err
		}
		if length > uint64(len(data)-pos) {
			return 0, ErrBufferOverflow
		}
		return pos + int(length), nil
	case TypeFixed32:
		if pos+4 > len(data) {
			return 0, ErrBufferOverflow
		}
		return pos + 4, nil
	default:
		return 0, &UnknownWireTypeError{WireType: uint64(wt)}
	}
}
