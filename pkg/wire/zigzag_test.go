package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestZigzag32RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value int32
	}{
		{"zero", 0},
		{"one", 1},
		{"neg_one", -1},
		{"two", 2},
		{"neg_two", -2},
		{"small_pos", 100},
		{"small_neg", -100},
		{"medium", 1000000},
		{"max_int32", math.MaxInt32},
		{"min_int32", math.MinInt32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := AppendZigzag32(nil, tc.value)
			decoded, pos, err := DecodeZigzag32(buf, 0)
			if err != nil {
				t.Fatalf("DecodeZigzag32() error = %v", err)
			}
			if decoded != tc.value {
				t.Errorf("DecodeZigzag32() = %d, want %d", decoded, tc.value)
			}
			if pos != len(buf) {
				t.Errorf("DecodeZigzag32() pos = %d, want %d", pos, len(buf))
			}
		})
	}
}

func TestZigzag64RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value int64
	}{
		{"zero", 0},
		{"one", 1},
		{"neg_one", -1},
		{"small_pos", 100},
		{"small_neg", -100},
		{"medium_neg", -1000000},
		{"max_int64", math.MaxInt64},
		{"min_int64", math.MinInt64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := AppendZigzag64(nil, tc.value)
			decoded, pos, err := DecodeZigzag64(buf, 0)
			if err != nil {
				t.Fatalf("DecodeZigzag64() error = %v", err)
			}
			if decoded != tc.value {
				t.Errorf("DecodeZigzag64() = %d, want %d", decoded, tc.value)
			}
			if pos != len(buf) {
				t.Errorf("DecodeZigzag64() pos = %d, want %d", pos, len(buf))
			}
		})
	}
}

func TestZigzagMapping(t *testing.T) {
	// The fold alternates signs: 0→0, -1→1, 1→2, -2→3, 2→4.
	tests := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0x01}},
		{1, []byte{0x02}},
		{-2, []byte{0x03}},
		{2, []byte{0x04}},
		{63, []byte{0x7E}},
		{-64, []byte{0x7F}},
		{64, []byte{0x80, 0x01}},
	}

	for _, tc := range tests {
		got := AppendZigzag64(nil, tc.value)
		if !bytes.Equal(got, tc.want) {
			t.Errorf("AppendZigzag64(%d) = %x, want %x", tc.value, got, tc.want)
		}
		got32 := AppendZigzag32(nil, int32(tc.value))
		if !bytes.Equal(got32, tc.want) {
			t.Errorf("AppendZigzag32(%d) = %x, want %x", tc.value, got32, tc.want)
		}
	}
}

func TestZigzag64Len(t *testing.T) {
	for _, v := range []int64{0, -1, 1, -64, 63, -65, 64, math.MinInt64, math.MaxInt64} {
		want := len(AppendZigzag64(nil, v))
		if got := Zigzag64Len(v); got != want {
			t.Errorf("Zigzag64Len(%d) = %d, but AppendZigzag64 wrote %d bytes", v, got, want)
		}
	}
}

func TestZigzagDecodeErrors(t *testing.T) {
	if _, _, err := DecodeZigzag32(nil, 0); !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("DecodeZigzag32(empty) error = %v, want ErrBufferOverflow", err)
	}
	if _, _, err := DecodeZigzag64([]byte{0x80}, 0); !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("DecodeZigzag64(truncated) error = %v, want ErrBufferOverflow", err)
	}
}
