// Package textenc converts between UTF-8 and the encodings carried by
// text-bearing records: UTF-16LE (the W records, descriptions, face names),
// UTF-32LE and the Windows-1252 code page used by the A records.
//
// Every function returns a newly allocated result. Decoders stop at the first
// NUL code unit, which is how a caller asks for "compute the length".
package textenc

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

var (
	// ErrOddLength indicates UTF-16 input with an odd number of bytes.
	ErrOddLength = errors.New("textenc: utf-16 input has odd length")
	// ErrPartialUnit indicates UTF-32 input whose length is not a multiple of four.
	ErrPartialUnit = errors.New("textenc: utf-32 input has partial code unit")
)

var (
	utf16le encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf32le encoding.Encoding = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// UTF16Units returns the number of UTF-16 code units before the first NUL,
// or len(b)/2 when there is none.
func UTF16Units(b []byte) int {
	n := len(b) / 2
	for i := 0; i < n; i++ {
		if b[2*i] == 0 && b[2*i+1] == 0 {
			return i
		}
	}
	return n
}

// UTF32Units is the UTF-32 counterpart of UTF16Units.
func UTF32Units(b []byte) int {
	n := len(b) / 4
	for i := 0; i < n; i++ {
		if b[4*i] == 0 && b[4*i+1] == 0 && b[4*i+2] == 0 && b[4*i+3] == 0 {
			return i
		}
	}
	return n
}

// EncodeUTF16 converts s to UTF-16LE without a terminator.
func EncodeUTF16(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	out, _, err := transform.Bytes(utf16le.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode utf-16: %w", err)
	}
	return out, nil
}

// EncodeUTF16Z converts s to UTF-16LE and appends a NUL code unit.
func EncodeUTF16Z(s string) ([]byte, error) {
	out, err := EncodeUTF16(s)
	if err != nil {
		return nil, err
	}
	return append(out, 0, 0), nil
}

// DecodeUTF16 converts UTF-16LE to UTF-8, stopping at the first NUL.
func DecodeUTF16(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	b = b[:2*UTF16Units(b)]
	if len(b) == 0 {
		return "", nil
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textenc: decode utf-16: %w", err)
	}
	return string(out), nil
}

// EncodeUTF32 converts s to UTF-32LE without a terminator.
func EncodeUTF32(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	out, err := utf32le.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("textenc: encode utf-32: %w", err)
	}
	return []byte(out), nil
}

// DecodeUTF32 converts UTF-32LE to UTF-8, stopping at the first NUL.
func DecodeUTF32(b []byte) (string, error) {
	if len(b)%4 != 0 {
		return "", ErrPartialUnit
	}
	b = b[:4*UTF32Units(b)]
	if len(b) == 0 {
		return "", nil
	}
	out, err := utf32le.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textenc: decode utf-32: %w", err)
	}
	return string(out), nil
}

// UTF16ToUTF32 converts UTF-16LE to UTF-32LE, stopping at the first NUL.
func UTF16ToUTF32(b []byte) ([]byte, error) {
	s, err := DecodeUTF16(b)
	if err != nil {
		return nil, err
	}
	return EncodeUTF32(s)
}

// UTF32ToUTF16 converts UTF-32LE to UTF-16LE, stopping at the first NUL.
func UTF32ToUTF16(b []byte) ([]byte, error) {
	s, err := DecodeUTF32(b)
	if err != nil {
		return nil, err
	}
	return EncodeUTF16(s)
}

// EncodeANSI converts s to Windows-1252. Runes outside the code page are an error.
func EncodeANSI(s string) ([]byte, error) {
	if isASCII(s) {
		return []byte(s), nil
	}
	out, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode windows-1252: %w", err)
	}
	return out, nil
}

// DecodeANSI converts Windows-1252 bytes to UTF-8, stopping at the first NUL.
func DecodeANSI(b []byte) (string, error) {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	if isASCII(string(b)) {
		return string(b), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textenc: decode windows-1252: %w", err)
	}
	return string(out), nil
}

// isASCII reports whether s needs no code page translation.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
