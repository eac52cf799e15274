package extract

import "unicode/utf8"

// truncateBytes returns a prefix of s whose byte length is <= maxBytes, never
// splitting a UTF-8 rune. If maxBytes >= len(s) it returns s unchanged.
func truncateBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	if maxBytes <= 0 {
		return ""
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
