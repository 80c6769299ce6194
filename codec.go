package routeros

import "fmt"

// maxLength is the first value that can no longer be encoded in 4 bytes:
// 0x10000000.
const maxLength = 0x10000000

// EncodeLength encodes n as 1, 2, 3, or 4 bytes using RouterOS's
// variable-length big-endian control-byte scheme.
func EncodeLength(n uint32) ([]byte, error) {
	switch {
	case n < 0x80:
		return []byte{byte(n)}, nil
	case n < 0x4000:
		n |= 0x8000
		return []byte{byte(n >> 8), byte(n)}, nil
	case n < 0x200000:
		n |= 0xC00000
		return []byte{byte(n >> 16), byte(n >> 8), byte(n)}, nil
	case n < maxLength:
		n |= 0xE0000000
		return []byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}, nil
	default:
		return nil, &ProtocolError{Msg: fmt.Sprintf("length %d too large to encode", n)}
	}
}

// determineLength returns how many additional bytes must be read to
// complete a length field, given its first byte.
func determineLength(first byte) (int, error) {
	switch {
	case first < 0x80:
		return 0, nil
	case first < 0xC0:
		return 1, nil
	case first < 0xE0:
		return 2, nil
	case first < 0xF0:
		return 3, nil
	default:
		return 0, &ProtocolError{Msg: fmt.Sprintf("unknown control byte 0x%02x", first)}
	}
}

// DecodeLength decodes a length field previously produced by EncodeLength.
// b must contain exactly 1-4 bytes, the same count determineLength(b[0])+1
// would report.
func DecodeLength(b []byte) (uint32, error) {
	if len(b) == 0 || len(b) > 4 {
		return 0, &ProtocolError{Msg: fmt.Sprintf("invalid length field of %d bytes", len(b))}
	}
	ctl := b[0]
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	switch {
	case ctl < 0x80:
		return v, nil
	case ctl < 0xC0:
		if len(b) != 2 {
			return 0, &ProtocolError{Msg: "length field size mismatch for 2-byte control prefix"}
		}
		return v ^ 0x8000, nil
	case ctl < 0xE0:
		if len(b) != 3 {
			return 0, &ProtocolError{Msg: "length field size mismatch for 3-byte control prefix"}
		}
		return v ^ 0xC00000, nil
	case ctl < 0xF0:
		if len(b) != 4 {
			return 0, &ProtocolError{Msg: "length field size mismatch for 4-byte control prefix"}
		}
		return v ^ 0xE0000000, nil
	default:
		return 0, &ProtocolError{Msg: fmt.Sprintf("unknown control byte 0x%02x", ctl)}
	}
}

// encodeWord encodes a single word as length-prefix || payload.
func encodeWord(w string) ([]byte, error) {
	payload := []byte(w)
	if len(payload) >= maxLength {
		return nil, &ProtocolError{Msg: fmt.Sprintf("word of %d bytes exceeds maximum length", len(payload))}
	}
	prefix, err := EncodeLength(uint32(len(payload)))
	if err != nil {
		return nil, err
	}
	return append(prefix, payload...), nil
}

// encodeSentence encodes cmd followed by words, terminated with the
// zero-length end-of-sentence byte.
func encodeSentence(cmd string, words ...string) ([]byte, error) {
	var out []byte
	allWords := append([]string{cmd}, words...)
	for _, w := range allWords {
		enc, err := encodeWord(w)
		if err != nil {
			return nil, err
		}
		out = append(out, enc...)
	}
	return append(out, 0x00), nil
}
