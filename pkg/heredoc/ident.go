package heredoc

// The scanner treats identifier bytes as ASCII letters, underscore, and
// digits (continuation only) without decoding UTF-8. This matches
// historical Hack/PHP lexer behavior and keeps the scanner free of
// multi-byte decoding state. A Lexer's Peek therefore returns single byte
// values as runes, not decoded Unicode code points.
//
// Bytes 0x80-0xFF are only accepted in the first position of a delimiter
// identifier, never in continuation position.

func isIdentStart(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0x80 && r <= 0xFF)
}

func isIdentCont(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9')
}
