package wire

import (
	"errors"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"unknown_wire_type", &UnknownWireTypeError{WireType: 7}, ErrUnknownWireType},
		{"invalid_data", &InvalidDataError{Reason: "invalid UTF-8 in string field"}, ErrInvalidData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tc.err, tc.sentinel)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrBufferOverflow, "wire: buffer overflow"},
		{ErrInvalidVarint, "wire: invalid varint"},
		{&UnknownWireTypeError{WireType: 7}, "wire: unknown wire type 7"},
		{&InvalidDataError{Reason: "invalid UTF-8 in string field"}, "wire: invalid UTF-8 in string field"},
	}

	for _, tc := range tests {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	// The taxonomy is closed; no kind may match another.
	sentinels := []error{ErrBufferOverflow, ErrInvalidVarint, ErrUnknownWireType, ErrInvalidData}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
