// Package textenc turns raw file bytes into UTF-8 text, silently dropping
// byte sequences that do not decode.
package textenc

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// dropInvalid copies well-formed runes and skips ill-formed bytes. A literal
// U+FFFD in the input is well-formed and kept.
type dropInvalid struct{ transform.NopResetter }

func (dropInvalid) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// Decode returns b as a string with undecodable bytes removed.
func Decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, _, err := transform.Bytes(dropInvalid{}, b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
