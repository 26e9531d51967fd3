package handlers

import (
	"strings"
	"unicode"
)

// Input shaping for the bilingual name fields. These mirror what the form
// applies as the user types: they drop the wrong alphabet but never block
// digits or punctuation (shaping, not validation).

// StripCyrillic removes Cyrillic letters, keeping everything else
func StripCyrillic(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Cyrillic, r) {
			return -1
		}
		return r
	}, s)
}

// KeepCyrillic keeps only Cyrillic letters and whitespace
func KeepCyrillic(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Cyrillic, r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}
