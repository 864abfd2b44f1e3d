package wire

// Type identifies how a field's bytes are framed on the wire.
type Type uint64

const (
	TypeVarint  Type = 0 // base-128 varint
	TypeFixed64 Type = 1 // 8 bytes, little-endian
	TypeBytes   Type = 2 // varint length prefix + raw bytes
	TypeFixed32 Type = 5 // 4 bytes, little-endian
)

// Valid reports whether t is one of the four supported framings.
func (t Type) Valid() bool {
	switch t {
	case TypeVarint, TypeFixed64, TypeBytes, TypeFixed32:
		return true
	default:
		return false
	}
}

// String returns the string representation of the wire type.
func (t Type) String() string {
	switch t {
	case TypeVarint:
		return "Varint"
	case TypeFixed64:
		return "Fixed64"
	case TypeBytes:
		return "Bytes"
	case TypeFixed32:
		return "Fixed32"
	default:
		return "Unknown"
	}
}
