package beint

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		wantErr error
	}{
		"SingleByte":  {[]byte{0x01}, nil},
		"MultiByte":   {[]byte{0x01, 0x00}, nil},
		"Empty":       {nil, ErrNotCanonical},
		"LeadingZero": {[]byte{0x00, 0x01}, ErrNotCanonical},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if err := Check(tc.data); !errors.Is(err, tc.wantErr) {
				t.Errorf("Check(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
		})
	}
}

func TestUint(t *testing.T) {
	tests := map[string]struct {
		data []byte
		want uint64
		ok   bool
	}{
		"SingleByte": {[]byte{0x01}, 1, true},
		"MultiByte":  {[]byte{0x03, 0x48}, 840, true},
		"MaxUint64":  {[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1<<64 - 1, true},
		"Overflow":   {[]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, 0, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Uint[uint64](tc.data)
			if ok != tc.ok {
				t.Fatalf("Uint(%# x) ok = %t, want %t", tc.data, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("Uint(%# x) = %d, want %d", tc.data, got, tc.want)
			}
		})
	}
}

func TestUintNarrow(t *testing.T) {
	if _, ok := Uint[uint8]([]byte{0x01, 0x00}); ok {
		t.Errorf("Uint[uint8](0x01 0x00) ok = true, want false")
	}
	if got, ok := Uint[uint16]([]byte{0x01, 0x00}); !ok || got != 256 {
		t.Errorf("Uint[uint16](0x01 0x00) = %d, %t, want 256, true", got, ok)
	}
}
