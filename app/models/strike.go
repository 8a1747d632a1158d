package models

import "strings"

// StrikeMark is the combining long stroke overlay used to strike text.
const StrikeMark = '\u0336'

// Strikethrough overlays every rune of text, spaces included, with StrikeMark.
// Text that is already struck is returned unchanged.
func Strikethrough(text string) string {
	if IsStruck(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 3)
	for _, r := range text {
		if r == StrikeMark {
			continue
		}
		b.WriteRune(r)
		b.WriteRune(StrikeMark)
	}
	return b.String()
}

// IsStruck reports whether no un-struck rune remains in text.
// The empty string counts as struck.
func IsStruck(text string) bool {
	pending := false
	for _, r := range text {
		if r == StrikeMark {
			pending = false
			continue
		}
		if pending {
			return false
		}
		pending = true
	}
	return !pending
}
