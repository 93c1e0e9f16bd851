package util

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsSpace reports whether r is whitespace in the ECMAScript sense:
// Unicode White_Space plus BOM, without NEL.
func IsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Lower applies full Unicode lowercasing (multi-rune mappings included).
// A Caser is stateful, so one is built per call.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Length counts UTF-16 code units, the unit displayed text lengths are measured in.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16Len(r)
	}
	return n
}

// Prefix returns the longest prefix of s spanning at most n UTF-16 code units
// without splitting a character.
func Prefix(s string, n int) string {
	used := 0
	for i, r := range s {
		w := utf16Len(r)
		if used+w > n {
			return s[:i]
		}
		used += w
	}
	return s
}

func utf16Len(r rune) int {
	if utf16.IsSurrogate(r) || r < 0x10000 {
		return 1
	}
	return 2
}

// Round rounds half up, so 23.5 -> 24 and -0.5 -> 0.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NonEmptyLines splits on runs of '\n' and drops empty pieces.
func NonEmptyLines(s string) []string {
	parts := strings.Split(s, "\n")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Interpolate substitutes every {topic} placeholder in tmpl.
func Interpolate(tmpl, topic string) string {
	return strings.ReplaceAll(tmpl, "{topic}", topic)
}

// OrDefault returns the trimmed s, or def when s is blank.
func OrDefault(s, def string) string {
	if t := Trim(s); t != "" {
		return t
	}
	return def
}
