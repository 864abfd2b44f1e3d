package wire

import "unicode/utf8"

// AppendBytes appends a length-delimited blob: a varint length prefix
// followed by the raw bytes. No padding, no terminator.
func AppendBytes(buf, value []byte) []byte {
	buf = AppendVarint(buf, uint64(len(value)))
	return append(buf, value...)
}

// DecodeBytes decodes a length-delimited blob, returning an owned copy
// that is safe to retain after the input buffer is reused.
func DecodeBytes(data []byte, pos int) ([]byte, int, error) {
	length, pos, err := DecodeVarint(data, pos)
	if err != nil {
		return nil, 0, err
	}
	if length > uint64(len(data)-pos) {
		return nil, 0, ErrBufferOverflow
	}
	n := int(length)
	b := make([]byte, n)
	copy(b, data[pos:pos+n])
	return b, pos + n, nil
}

// AppendString appends s as a length-delimited blob of its UTF-8 bytes.
func AppendString(buf []byte, s string) []byte {
	buf = AppendVarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// DecodeString decodes a length-delimited blob as a UTF-8 string. Invalid
// UTF-8 fails with InvalidDataError and no partial value.
func DecodeString(data []byte, pos int) (string, int, error) {
	length, pos, err := DecodeVarint(data, pos)
	if err != nil {
		return "", 0, err
	}
	if length > uint64(len(data)-pos) {
		return "", 0, ErrBufferOverflow
	}
	n := int(length)
	raw := data[pos : pos+n]
	if !utf8.Valid(raw) {
		return "", 0, &InvalidDataError{Reason: "invalid UTF-8 in string field"}
	}
	return string(raw), pos + n, nil
}
