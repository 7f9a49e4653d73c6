package service

import "unicode/utf8"

// UTF16Len returns the length of text in UTF-16 code units.
// Runes above U+FFFF need a surrogate pair and count twice.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		count += utf16Units(r)
	}
	return count
}

// MapOffset translates a UTF-16 offset into a byte index of text.
//
// Runes are consumed until the running UTF-16 count reaches or passes
// utf16Offset; the index just after that rune is returned. Offsets at or
// below zero map to 0 and offsets past the end clamp to len(text).
// Always call it with the original body, never a partially rendered one.
func MapOffset(text string, utf16Offset int) int {
	if utf16Offset <= 0 {
		return 0
	}

	units := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		units += utf16Units(r)
		i += size
		if units >= utf16Offset {
			return i
		}
	}
	return len(text)
}

func utf16Units(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
