// Package wire implements the primitive protobuf wire-format codecs that
// generated message code composes into full messages.
//
// The package carries no schema knowledge: field numbering, tag semantics,
// and message structure belong to the code generator that emits calls into
// this layer. What lives here is the byte-level vocabulary everything else
// is spelled in.
//
// # Wire Types
//
// Every encoded field value uses one of four framings:
//
//	Type         Tag  Framing
//	──────────────────────────────────────────────────
//	Varint       0    base-128, continuation bit 0x80
//	Fixed64      1    8 bytes, little-endian
//	Bytes        2    varint length prefix + raw bytes
//	Fixed32      5    4 bytes, little-endian
//
// Tags 3 and 4 (the legacy group delimiters) are not supported; SkipField
// rejects them with UnknownWireTypeError.
//
// # Encoding
//
// Encode functions are append-style: they take the output buffer, append
// the encoded bytes, and return the extended buffer, exactly like the
// append builtin:
//
//	buf := make([]byte, 0, 64)
//	buf = wire.AppendKey(buf, tag)
//	buf = wire.AppendString(buf, "hello")
//
// Encoding never fails and never reads the buffer contents.
//
// # Decoding
//
// Decode functions take the input buffer and a cursor position and return
// the value together with the position of the first unread byte:
//
//	v, pos, err := wire.DecodeVarint(data, pos)
//
// The input is never mutated; the caller threads pos through successive
// calls. Every failure is one of the closed error set in error.go, returned
// immediately with no partial result.
//
// # Concurrency
//
// All functions are pure transforms over their arguments. There is no
// package-level state, so any number of goroutines may call them
// concurrently on buffers they own.
package wire
