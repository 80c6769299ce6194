package routeros

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeLengthRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, 0x1FFFFF, 0x200000, maxLength - 1}

	for _, n := range cases {
		enc, err := EncodeLength(n)
		if err != nil {
			t.Fatalf("EncodeLength(%d) error: %v", n, err)
		}
		dec, err := DecodeLength(enc)
		if err != nil {
			t.Fatalf("DecodeLength(%x) error: %v", enc, err)
		}
		if dec != n {
			t.Errorf("round trip for %d: got %d, encoded as %x", n, dec, enc)
		}
	}
}

func TestEncodeLengthClasses(t *testing.T) {
	tests := []struct {
		name    string
		n       uint32
		wantLen int
	}{
		{"1 byte", 0x7F, 1},
		{"2 byte", 0x80, 2},
		{"3 byte", 0x4000, 3},
		{"4 byte", 0x200000, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := EncodeLength(tt.n)
			if err != nil {
				t.Fatalf("EncodeLength error: %v", err)
			}
			if len(enc) != tt.wantLen {
				t.Errorf("EncodeLength(%d) = %d bytes, want %d", tt.n, len(enc), tt.wantLen)
			}
		})
	}
}

func TestEncodeLengthTooLarge(t *testing.T) {
	if _, err := EncodeLength(maxLength); err == nil {
		t.Fatal("EncodeLength(maxLength) expected error, got nil")
	}
}

func TestDecodeLengthSizeMismatch(t *testing.T) {
	// 0x80 claims the 2-byte class but is handed alone, without its second byte.
	if _, err := DecodeLength([]byte{0x80}); err == nil {
		t.Fatal("expected error for truncated length field")
	}
}

func TestDecodeLengthUnknownControlByte(t *testing.T) {
	if _, err := DecodeLength([]byte{0xFF}); err == nil {
		t.Fatal("expected error for unknown control byte")
	}
}

func TestEncodeSentenceTerminator(t *testing.T) {
	enc, err := encodeSentence("/login", "=name=admin")
	if err != nil {
		t.Fatalf("encodeSentence error: %v", err)
	}
	if len(enc) == 0 || enc[len(enc)-1] != 0x00 {
		t.Fatalf("encodeSentence did not end with a zero-length terminator: %x", enc)
	}
	if !bytes.Contains(enc, []byte("/login")) || !bytes.Contains(enc, []byte("=name=admin")) {
		t.Fatalf("encodeSentence missing expected words: %x", enc)
	}
}
