package wire

import (
	"errors"
	"fmt"
)

// Decode failures form a closed set. Every error returned by this package
// unwraps to one of the four sentinels below, so callers can classify with
// errors.Is regardless of whether the error carries a diagnostic payload.
var (
	// ErrBufferOverflow indicates a decode needed more bytes than remain
	// in the input.
	ErrBufferOverflow = errors.New("wire: buffer overflow")

	// ErrInvalidVarint indicates a varint whose continuation chain runs
	// past the width a uint64 can represent.
	ErrInvalidVarint = errors.New("wire: invalid varint")

	// ErrUnknownWireType indicates a wire type outside {0, 1, 2, 5}.
	ErrUnknownWireType = errors.New("wire: unknown wire type")

	// ErrInvalidData indicates a decoded value that failed a semantic
	// check, such as a string field holding invalid UTF-8.
	ErrInvalidData = errors.New("wire: invalid data")
)

// UnknownWireTypeError is returned by SkipField for a wire type outside
// {0, 1, 2, 5}. It carries the offending value for diagnostics.
type UnknownWireTypeError struct {
	WireType uint64
}

func (e *UnknownWireTypeError) Error() string {
	return fmt.Sprintf("wire: unknown wire type %d", e.WireType)
}

func (e *UnknownWireTypeError) Unwrap() error { return ErrUnknownWireType }

// InvalidDataError reports a decoded value that failed a post-hoc semantic
// check. Reason describes the check that failed.
type InvalidDataError struct {
	Reason string
}

func (e *InvalidDataError) Error() string { return "wire: " + e.Reason }

func (e *InvalidDataError) Unwrap() error { return ErrInvalidData }
