package repository

import "unicode"

// runeEqual compares two runes, folding both to upper case unless exactCase.
func runeEqual(a, b rune, exactCase bool) bool {
	if exactCase {
		return a == b
	}
	return unicode.ToUpper(a) == unicode.ToUpper(b)
}

// matchesAt reports whether query occurs in text at offset start.
// The caller guarantees start+len(query) <= len(text).
func matchesAt(text, query []rune, start int, exactCase bool) bool {
	for i, q := range query {
		if !runeEqual(text[start+i], q, exactCase) {
			return false
		}
	}
	return true
}

// containsText reports whether query is a contiguous run of text.
func containsText(text, query string, exactCase bool) bool {
	t, q := []rune(text), []rune(query)
	if len(q) == 0 || len(q) > len(t) {
		return false
	}
	for start := 0; start+len(q) <= len(t); start++ {
		if matchesAt(t, q, start, exactCase) {
			return true
		}
	}
	return false
}

// containsWholeWord reports whether query occurs in text followed by
// whitespace or the end of the text. The rune before the match is not
// checked, so "Magician" matches the tail of "BlackMagician".
func containsWholeWord(text, query string, exactCase bool) bool {
	t, q := []rune(text), []rune(query)
	if len(q) == 0 || len(q) > len(t) {
		return false
	}
	for start := 0; start+len(q) <= len(t); start++ {
		next := start + len(q)
		if !matchesAt(t, q, start, exactCase) {
			continue
		}
		if next == len(t) || unicode.IsSpace(t[next]) {
			return true
		}
	}
	return false
}
