// Package encoding detects the character encoding of a raw YAML input and
// decodes it to text.
//
// YAML requires the first character of a stream to be ASCII, which makes the
// encoding recognizable from the leading bytes alone: explicit byte order
// marks are checked first, then the position of zero bytes around the first
// character. Four-byte patterns are tested before two-byte patterns, so a
// UTF-32 stream is never misread as UTF-16.
package encoding

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Decoding errors. Each one corresponds to the encoding the detector chose
// for the input.
var (
	ErrInvalidUTF8  = errors.New("source file was not valid utf-8")
	ErrInvalidUTF16 = errors.New("source file was not valid utf-16")
	ErrInvalidUTF32 = errors.New("source file was not valid utf-32")
)

// Decode sniffs the encoding of data and decodes it eagerly into a string.
// A byte order mark, if present, is decoded like any other character and
// appears at the start of the result.
func Decode(data []byte) (string, error) {
	switch {
	// Explicit BOM
	case hasPrefix(data, 0x00, 0x00, 0xfe, 0xff):
		return decodeUTF32(data, bigEndian)
	// ASCII first character
	case len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0x00:
		return decodeUTF32(data, bigEndian)
	// Explicit BOM
	case hasPrefix(data, 0xff, 0xfe, 0x00, 0x00):
		return decodeUTF32(data, littleEndian)
	// ASCII first character
	case len(data) >= 4 && data[1] == 0x00 && data[2] == 0x00 && data[3] == 0x00:
		return decodeUTF32(data, littleEndian)
	// Explicit BOM
	case hasPrefix(data, 0xfe, 0xff):
		return decodeUTF16(data, bigEndian)
	// ASCII first character
	case len(data) >= 2 && data[0] == 0x00:
		return decodeUTF16(data, bigEndian)
	// Explicit BOM
	case hasPrefix(data, 0xff, 0xfe):
		return decodeUTF16(data, littleEndian)
	// ASCII first character
	case len(data) >= 2 && data[1] == 0x00:
		return decodeUTF16(data, littleEndian)
	// Explicit BOM or default
	default:
		return decodeUTF8(data)
	}
}

type byteOrder int

const (
	bigEndian byteOrder = iota
	littleEndian
)

func hasPrefix(data []byte, prefix ...byte) bool {
	if len(data) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if data[i] != b {
			return false
		}
	}
	return true
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

func decodeUTF16(data []byte, order byteOrder) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrInvalidUTF16
	}
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		var u uint16
		if order == bigEndian {
			u = uint16(data[i])<<8 | uint16(data[i+1])
		} else {
			u = uint16(data[i]) | uint16(data[i+1])<<8
		}
		units = append(units, u)
	}

	var sb strings.Builder
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case utf16.IsSurrogate(rune(u)):
			// A high surrogate must be followed by a low surrogate.
			if i+1 >= len(units) {
				return "", ErrInvalidUTF16
			}
			r := utf16.DecodeRune(rune(u), rune(units[i+1]))
			if r == utf8.RuneError {
				return "", ErrInvalidUTF16
			}
			sb.WriteRune(r)
			i++
		default:
			sb.WriteRune(rune(u))
		}
	}
	return sb.String(), nil
}

func decodeUTF32(data []byte, order byteOrder) (string, error) {
	if len(data)%4 != 0 {
		return "", ErrInvalidUTF32
	}
	var sb strings.Builder
	for i := 0; i < len(data); i += 4 {
		var u uint32
		if order == bigEndian {
			u = uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
		} else {
			u = uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
		}
		if !validScalar(rune(u)) {
			return "", ErrInvalidUTF32
		}
		sb.WriteRune(rune(u))
	}
	return sb.String(), nil
}

// validScalar reports whether r is a Unicode scalar value: in range and not
// a surrogate code point.
func validScalar(r rune) bool {
	return r >= 0 && r <= utf8.MaxRune && !utf16.IsSurrogate(r)
}
