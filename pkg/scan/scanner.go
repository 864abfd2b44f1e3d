package scan

import (
	"fmt"

	"github.com/pbwire-dev/pbwire/pkg/wire"
)

// Field is one field of a wire-format message: its number, wire type, and
// the encoded payload. The payload references the scanned buffer; accessors
// that hand out bytes return owned copies.
type Field struct {
	Number uint64
	Type   wire.Type

	// Offset is the byte offset of the field's key within the scanned
	// message, for diagnostics.
	Offset int

	raw []byte // encoded payload, everything after the key
}

// Raw returns the field's encoded payload. The slice references the
// scanned buffer; do not modify.
func (f Field) Raw() []byte { return f.raw }

// Varint returns the payload as an unsigned varint value.
func (f Field) Varint() (uint64, error) {
	if err := f.check(wire.TypeVarint); err != nil {
		return 0, err
	}
	v, _, err := wire.DecodeVarint(f.raw, 0)
	return v, err
}

// Bool returns the payload as a bool, treating any nonzero varint as true.
func (f Field) Bool() (bool, error) {
	v, err := f.Varint()
	return v != 0, err
}

// Zigzag64 returns the payload as a zigzag-folded signed varint.
func (f Field) Zigzag64() (int64, error) {
	if err := f.check(wire.TypeVarint); err != nil {
		return 0, err
	}
	v, _, err := wire.DecodeZigzag64(f.raw, 0)
	return v, err
}

// Fixed32 returns the payload as a little-endian uint32.
func (f Field) Fixed32() (uint32, error) {
	if err := f.check(wire.TypeFixed32); err != nil {
		return 0, err
	}
	v, _, err := wire.DecodeFixed32(f.raw, 0)
	return v, err
}

// Fixed64 returns the payload as a little-endian uint64.
func (f Field) Fixed64() (uint64, error) {
	if err := f.check(wire.TypeFixed64); err != nil {
		return 0, err
	}
	v, _, err := wire.DecodeFixed64(f.raw, 0)
	return v, err
}

// Bytes returns an owned copy of a length-delimited payload.
func (f Field) Bytes() ([]byte, error) {
	if err := f.check(wire.TypeBytes); err != nil {
		return nil, err
	}
	v, _, err := wire.DecodeBytes(f.raw, 0)
	return v, err
}

// Text returns a length-delimited payload as a UTF-8 string.
func (f Field) Text() (string, error) {
	if err := f.check(wire.TypeBytes); err != nil {
		return "", err
	}
	v, _, err := wire.DecodeString(f.raw, 0)
	return v, err
}

// Message re-scans a length-delimited payload as a nested message.
func (f Field) Message() (*Scanner, error) {
	b, err := f.Bytes()
	if err != nil {
		return nil, err
	}
	return New(b), nil
}

func (f Field) check(want wire.Type) error {
	if f.Type != want {
		return fmt.Errorf("scan: field %d has wire type %s, want %s", f.Number, f.Type, want)
	}
	return nil
}

// Scanner iterates over the fields of a wire-format message. It does not
// mutate the input and holds no state beyond the cursor, so distinct
// Scanners over the same buffer are independent.
type Scanner struct {
	data  []byte
	pos   int
	field Field
	err   error
}

// New returns a Scanner over data. The Scanner borrows data; the caller
// must not mutate it while scanning.
func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Scan advances to the next field. It returns false when the input is
// exhausted or malformed; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.pos >= len(s.data) {
		return false
	}

	offset := s.pos
	tag, pos, err := wire.DecodeKey(s.data, s.pos)
	if err != nil {
		s.err = err
		return false
	}

	num, wt := tag>>3, wire.Type(tag&0x7)
	if num == 0 {
		s.err = fmt.Errorf("scan: field number 0 at offset %d", offset)
		return false
	}

	end, err := wire.SkipField(s.data, pos, wt)
	if err != nil {
		s.err = err
		return false
	}

	s.field = Field{Number: num, Type: wt, Offset: offset, raw: s.data[pos:end]}
	s.pos = end
	return true
}

// Field returns the field read by the last successful Scan.
func (s *Scanner) Field() Field {
	return s.field
}

// Err returns the first error encountered. It is nil after a scan that
// stopped at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

// Pos returns the current cursor position within the message.
func (s *Scanner) Pos() int {
	return s.pos
}
