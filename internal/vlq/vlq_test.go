package vlq

import (
	"errors"
	"io"
	"slices"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		want    int
		wantErr error
	}{
		"SingleByte":    {[]byte{0x05}, 1, nil},
		"MultiByte":     {[]byte{0x85, 0x01}, 2, nil},
		"ExtraBytes":    {[]byte{0x85, 0x01, 0x7f}, 2, nil},
		"Empty":         {nil, 0, io.ErrUnexpectedEOF},
		"UnexpectedEOF": {[]byte{0x81, 0x80}, 0, io.ErrUnexpectedEOF},
		"NonMinimal":    {[]byte{0x80, 0x85, 0x01}, 0, ErrNotMinimal},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.data)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Parse(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%# x) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}

func TestUint(t *testing.T) {
	tests := map[string]struct {
		data []byte
		want uint
		ok   bool
	}{
		"SingleByte": {[]byte{0x05}, 5, true},
		"MultiByte":  {[]byte{0x85, 0x01}, 641, true},
		"Overflow":   {[]byte{0x81, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 0, false}, // assumes uint size of 8 bytes (64 bit architecture)
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Uint[uint](tc.data)
			if ok != tc.ok {
				t.Fatalf("Uint(%# x) ok = %t, want %t", tc.data, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("Uint(%# x) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}

func TestUint8(t *testing.T) {
	if _, ok := Uint[uint8]([]byte{0x85, 0x01}); ok {
		t.Errorf("Uint[uint8](0x85 0x01) ok = true, want false")
	}
	if got, ok := Uint[uint16]([]byte{0x85, 0x01}); !ok || got != 641 {
		t.Errorf("Uint[uint16](0x85 0x01) = %d, %t, want 641, true", got, ok)
	}
}

func TestPut(t *testing.T) {
	tests := []struct {
		value uint
		want  []byte
	}{
		{0, []byte{0x00}},
		{25, []byte{25}},
		{641, []byte{0x85, 0x01}},
		{0x12482, []byte{0x84, 0xc9, 0x02}},
	}
	for _, tc := range tests {
		t.Run(strconv.FormatUint(uint64(tc.value), 10), func(t *testing.T) {
			if l := Size(tc.value); l != len(tc.want) {
				t.Errorf("Size(%d) = %d, want %d", tc.value, l, len(tc.want))
			}
			buf := make([]byte, 8)
			n := Put(buf, tc.value)
			if n != len(tc.want) {
				t.Errorf("Put(%d) = %d, want %d", tc.value, n, len(tc.want))
			}
			if got := buf[:n]; !slices.Equal(got, tc.want) {
				t.Errorf("Put(%d) = %# x, want %# x", tc.value, got, tc.want)
			}
		})
	}
}
