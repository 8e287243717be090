// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package fold implements the simple case folding used by cistring.
//
// Every rune is mapped to a canonical rune: the smallest member of its
// simple case folding orbit (see [unicode.SimpleFold]), with ASCII upper-case
// letters mapped to lower case. Two strings are equal under folding if and
// only if their canonical runes are equal, and they are ordered by comparing
// canonical runes. Invalid UTF-8 is mapped to [utf8.RuneError].
//
// Folding is not locale aware: 'İ' (U+0130) and 'ı' (U+0131) only fold to
// themselves.
package fold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

func clamp(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

// Rune returns the canonical fold of r.
func Rune(r rune) rune {
	if uint32(r) < utf8.RuneSelf {
		return rune(_lower[r])
	}
	if !utf8.ValidRune(r) {
		return utf8.RuneError
	}
	// Orbits are at most four runes long.
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	// The Kelvin sign and long s fold with ASCII letters.
	if m < utf8.RuneSelf {
		return rune(_lower[m])
	}
	return m
}

// String returns the folded form of s. The result is always valid UTF-8 and
// s is returned unchanged if it is already folded ASCII.
func String(s string) string {
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || isUpper(c) {
			break
		}
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		if r < utf8.RuneSelf {
			b.WriteByte(_lower[r])
		} else {
			b.WriteRune(Rune(r))
		}
	}
	return b.String()
}

// Compare returns an integer comparing s and t lexicographically by their
// folded runes. The result is 0 if s == t, -1 if s < t, and +1 if s > t.
// It agrees with strings.Compare(String(s), String(t)) but does not allocate.
func Compare(s, t string) int {
	// ASCII fast path
	i := 0
	for ; i < len(s) && i < len(t); i++ {
		sc := s[i]
		tc := t[i]
		if sc|tc >= utf8.RuneSelf {
			goto hasUnicode
		}
		if sc == tc {
			continue
		}
		if sl, tl := _lower[sc], _lower[tc]; sl != tl {
			return clamp(int(sl) - int(tl))
		}
	}
	return clamp(len(s) - len(t))

hasUnicode:
	s = s[i:]
	t = t[i:]
	for len(s) > 0 && len(t) > 0 {
		var sr, tr rune
		if s[0] < utf8.RuneSelf {
			sr, s = rune(s[0]), s[1:]
		} else {
			r, size := utf8.DecodeRuneInString(s)
			sr, s = r, s[size:]
		}
		if t[0] < utf8.RuneSelf {
			tr, t = rune(t[0]), t[1:]
		} else {
			r, size := utf8.DecodeRuneInString(t)
			tr, t = r, t[size:]
		}

		// Easy case.
		if sr == tr {
			continue
		}
		if sf, tf := Rune(sr), Rune(tr); sf != tf {
			return clamp(int(sf) - int(tf))
		}
	}
	return clamp(len(s) - len(t))
}

// Equal reports whether s and t are equal under simple case folding.
func Equal(s, t string) bool {
	return Compare(s, t) == 0
}

// Hash returns the 64-bit xxHash of the folded form of s. It is equal to
// xxhash.Sum64String(String(s)).
func Hash(s string) uint64 {
	d := xxhash.New()
	var buf [64]byte
	n := 0
	for _, r := range s {
		if n > len(buf)-utf8.UTFMax {
			d.Write(buf[:n])
			n = 0
		}
		if r < utf8.RuneSelf {
			buf[n] = _lower[r]
			n++
		} else {
			n += utf8.EncodeRune(buf[n:], Rune(r))
		}
	}
	d.Write(buf[:n])
	return d.Sum64()
}

var _lower = [256]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, ' ', '!', '"', '#', '$', '%',
	'&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4',
	'5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@', 'a', 'b', 'c',
	'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r',
	's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '[', '\\', ']', '^', '_', '`', 'a',
	'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
	'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', 127,
	128, 129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142,
	143, 144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157,
	158, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172,
	173, 174, 175, 176, 177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187,
	188, 189, 190, 191, 192, 193, 194, 195, 196, 197, 198, 199, 200, 201, 202,
	203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 217,
	218, 219, 220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232,
	233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 245, 246, 247,
	248, 249, 250, 251, 252, 253, 254, 255,
}
