package parser

// Character classes from the YAML 1.2 specification. Every predicate returns
// false for the eof sentinel because eof is outside all the listed ranges.

// c-printable
func isPrintable(r rune) bool {
	switch {
	case r == '\t' || r == '\n':
		return true
	case r >= 0x20 && r <= 0x7e:
		return true
	case r == 0x85:
		return true
	case r >= 0xa0 && r <= 0xd7ff:
		return true
	case r >= 0xe000 && r <= 0xfffd:
		return true
	case r >= 0x010000 && r <= 0x10ffff:
		return true
	default:
		return false
	}
}

// b-char
func isBreak(r rune) bool {
	return r == '\r' || r == '\n'
}

// c-byte-order-mark
func isByteOrderMark(r rune) bool {
	return r == '\ufeff'
}

// s-white
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t'
}

// nb-char
func isNonBreak(r rune) bool {
	return isPrintable(r) && !isBreak(r) && !isByteOrderMark(r)
}

// ns-char
func isNonWhitespace(r rune) bool {
	return isNonBreak(r) && !isWhitespace(r)
}

// ns-dec-digit
func isDecDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ns-hex-digit
func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ns-word-char
func isWordChar(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-'
}

// c-indicator
func isIndicator(r rune) bool {
	switch r {
	case '-', '?', ':', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return true
	}
	return isFlowIndicator(r)
}

// c-flow-indicator
func isFlowIndicator(r rune) bool {
	switch r {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

// ns-anchor-char
func isAnchorChar(r rune) bool {
	return isNonWhitespace(r) && !isFlowIndicator(r)
}

// ns-tag-char
func isTagChar(r rune) bool {
	return isURIChar(r) && !isFlowIndicator(r) && r != '!'
}

// ns-uri-char
func isURIChar(r rune) bool {
	if isWordChar(r) {
		return true
	}
	switch r {
	case '%', '#', ';', '/', '?', ':', '@', '&', '=', '+', '$', ',',
		'_', '.', '!', '~', '*', '\'', '(', ')', '[', ']':
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	return isBreak(r) || isWhitespace(r)
}

func isFlowIndicatorOrSeparator(r rune) bool {
	return isSeparator(r) || isFlowIndicator(r)
}
