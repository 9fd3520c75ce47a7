// Package hexutil decodes and encodes ASCII hexadecimal text.
package hexutil

import (
	"github.com/joshuapare/pqwire/internal/buf"
	"github.com/joshuapare/pqwire/internal/logger"
)

const lowerDigits = "0123456789abcdef"

// reverse maps an ASCII character to its nibble value, or 0xFF when the
// character is not a hex digit.
var reverse = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xFF
	}
	for i := byte(0); i < 10; i++ {
		t['0'+i] = i
	}
	for i := byte(0); i < 6; i++ {
		t['a'+i] = 10 + i
		t['A'+i] = 10 + i
	}
	return t
}()

// Digit returns the value of a single hex digit. Both cases are accepted.
func Digit(c byte) (byte, bool) {
	v := reverse[c]
	return v, v != 0xFF
}

// Decode writes nbytes bytes to dst, decoded from the first 2*nbytes
// characters of src. The first character of each pair is the high nibble.
//
// It returns false if any of those characters is not a hex digit, or if dst
// or src is too short for nbytes. On failure dst may hold a partial result.
// Decode with nbytes == 0 always succeeds and reads nothing.
func Decode(dst []byte, src string, nbytes int) bool {
	if nbytes == 0 {
		return true
	}
	nchars, ok := buf.MulOverflowSafe(nbytes, 2)
	if !ok || len(dst) < nbytes || len(src) < nchars {
		logger.Debug("hex decode: short input", "nbytes", nbytes, "dst", len(dst), "src", len(src))
		return false
	}

	for i := 0; i < nbytes; i++ {
		hi, ok := Digit(src[2*i])
		if !ok {
			logger.Debug("hex decode: invalid digit", "offset", 2*i)
			return false
		}
		lo, ok := Digit(src[2*i+1])
		if !ok {
			logger.Debug("hex decode: invalid digit", "offset", 2*i+1)
			return false
		}
		dst[i] = hi<<4 | lo
	}
	return true
}

// DecodeString returns the bytes represented by the hex string s.
// Unlike Decode it reports why decoding failed.
func DecodeString(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ErrOddLength
	}
	for i := 0; i < len(s); i++ {
		if _, ok := Digit(s[i]); !ok {
			return nil, InvalidByteError{Byte: s[i], Offset: i}
		}
	}
	out := make([]byte, len(s)/2)
	// every digit was validated above
	Decode(out, s, len(out))
	return out, nil
}

// AppendEncode appends the lowercase hex form of b to dst.
func AppendEncode(dst, b []byte) []byte {
	for _, c := range b {
		dst = append(dst, lowerDigits[c>>4], lowerDigits[c&0x0F])
	}
	return dst
}

// EncodeToString returns the lowercase hex form of b.
func EncodeToString(b []byte) string {
	return string(AppendEncode(make([]byte, 0, len(b)*2), b))
}
