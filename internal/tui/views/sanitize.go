package views

import "strings"

// sanitizeForTerminal drops the code points tcell cannot lay out as part of
// a single cell cluster: skin tone modifiers, zero width joiners and
// variation selectors. A thumbs-up with a skin tone renders as a plain one.
func sanitizeForTerminal(s string) string {
	return strings.Map(func(r rune) rune {
		if isProblematicRune(r) {
			return -1
		}
		return r
	}, s)
}

func isProblematicRune(r rune) bool {
	switch {
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r == 0x200D:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0100 && r <= 0xE01EF:
		return true
	}
	return false
}
