package heredoc

import "github.com/krizos/hack-heredoc-scanner/pkg/token"

// scanStart recognizes the heredoc/nowdoc opener:
//
//	[ \t]*  ( '\'' ident '\'' | '"' ident '"' | ident )  '\n'
//
// The caller (host grammar) supplies the "<<<" prefix; HEREDOC_START
// starts after it and after any skipped blanks, and includes everything
// through the newline that follows the delimiter.
func (s *Scanner) scanStart(lx Lexer) (token.Token, bool) {
	for lx.Peek() == ' ' || lx.Peek() == '\t' {
		lx.Advance(true)
	}
	start := lx.Position()

	var quote rune
	switch lx.Peek() {
	case '\'':
		quote = '\''
		s.state.isNowdoc = true
		lx.Advance(false)
	case '"':
		quote = '"'
		lx.Advance(false)
	}

	s.state.delimiter.Reset()
	if !isIdentStart(lx.Peek()) {
		return token.Token{}, false
	}
	s.state.delimiter.AppendByte(byte(lx.Peek()))
	lx.Advance(false)
	for isIdentCont(lx.Peek()) {
		if s.state.delimiter.Len() >= maxDelimiterLen {
			return token.Token{}, false
		}
		s.state.delimiter.AppendByte(byte(lx.Peek()))
		lx.Advance(false)
	}

	if quote != 0 {
		if lx.Peek() != quote {
			return token.Token{}, false
		}
		lx.Advance(false)
	}

	if lx.Peek() != '\n' {
		return token.Token{}, false
	}
	lx.Advance(false) // the newline belongs to HEREDOC_START
	lx.MarkEnd()
	end := lx.Position()

	// Optimistic close: a one-line empty heredoc like "<<<EOF\nEOF;\n" is
	// closeable right here, saving scan_body a re-match next call.
	// matchClose only peeks, so it never moves the cursor, win or miss:
	// on a miss the cursor is exactly where scan_body needs to pick up,
	// and on a hit the delimiter is also left unconsumed, so the next
	// scan_body call is the one that actually advances past it and
	// reports it inside HEREDOC_END's span.
	if closed, _ := s.matchClose(lx, 0); closed {
		s.state.didEnd = true
	}

	return token.Token{Kind: token.HeredocStart, Start: start, End: end}, true
}

// matchClose reports whether the closing delimiter, optionally followed
// by ';', sits skip bytes ahead of the cursor and is itself followed by a
// newline. It only reads with PeekAt, so neither a match nor a mismatch
// moves the Lexer's cursor; it is a pure lookahead test.
func (s *Scanner) matchClose(lx Lexer, skip int) (closed, hasSemi bool) {
	del := s.state.delimiter.Bytes()
	for i, want := range del {
		if lx.PeekAt(skip+i) != rune(want) {
			return false, false
		}
	}
	n := skip + len(del)
	if lx.PeekAt(n) == ';' {
		hasSemi = true
		n++
	}
	return lx.PeekAt(n) == '\n', hasSemi
}
