package heredoc

import "github.com/krizos/hack-heredoc-scanner/pkg/token"

// scanBody scans the interior of a heredoc/nowdoc: a run of body bytes,
// an interpolation trigger, or the closing delimiter line. It is called
// once per token and may consume any number of bytes, including several
// newlines, before it decides what to emit.
func (s *Scanner) scanBody(lx Lexer) (token.Token, bool) {
	start := lx.Position()

	if s.state.didEnd {
		return s.finishClose(lx, start)
	}

	didAdvance := false
	for {
		switch {
		case lx.Peek() == 0:
			return token.Token{}, false

		case lx.Peek() == '\\':
			lx.Advance(false)
			lx.Advance(false)
			didAdvance = true

		case !s.state.isNowdoc && lx.Peek() == '{':
			if tok, ok, done := s.scanOpenBrace(lx, start, didAdvance); done {
				return tok, ok
			}
			didAdvance = true

		case !s.state.isNowdoc && lx.Peek() == '$':
			lx.MarkEnd()
			end := lx.Position()
			if tok, ok, done := s.scanDollarSigil(lx, start, end); done {
				return tok, ok
			}
			didAdvance = true

		case lx.Peek() == '\n':
			if tok, ok, done := s.scanCloseAttempt(lx, start, didAdvance); done {
				return tok, ok
			}
			didAdvance = true

		default:
			lx.Advance(false)
			didAdvance = true
		}
	}
}

// finishClose is entered when a previous call already matched the
// closing delimiter (as pure lookahead, via scan_start's optimistic
// check or scan_body's own scanCloseAttempt) and recorded did_end, but
// has not yet consumed or emitted it. The delimiter, any ';', and the
// final newline are still sitting unconsumed at the cursor; this is the
// only place that actually advances past them, so HEREDOC_END's span
// covers exactly "delimiter ';'? '\n'" as the data model requires.
//
// If scanCloseAttempt deferred a close while body bytes preceded it, the
// separating newline between that body and the delimiter line is also
// still unconsumed here; it belongs to no token (see scanCloseAttempt),
// so it is skipped before start is reset to where HEREDOC_END begins.
func (s *Scanner) finishClose(lx Lexer, start token.Position) (token.Token, bool) {
	if lx.Peek() == '\n' {
		lx.Advance(false)
		lx.MarkEnd()
		start = lx.Position()
	}

	closed, hasSemi := s.matchClose(lx, 0)
	if !closed {
		return token.Token{}, false
	}
	for range s.state.delimiter.Bytes() {
		lx.Advance(false)
	}
	if hasSemi {
		lx.Advance(false)
	}
	lx.Advance(false) // the trailing newline
	lx.MarkEnd()
	end := lx.Position()
	s.state.reset()
	return token.Token{Kind: token.HeredocEnd, Start: start, End: end}, true
}

// scanOpenBrace handles a body byte equal to '{'. At the very start of a
// body scan (no bytes produced yet this call), "{$" followed by an
// identifier opens a full expression interpolation and the grammar needs
// to see the brace itself, so EMBEDDED_OPENING_BRACE is emitted. In every
// other position "{$" is treated as a body prefix plus a bare "$var"
// sigil (see scanDollarSigil): the HEREDOC_BODY ends before the '{', the
// brace and '$' are only unmarked lookahead, and the next scan starts at
// the '{' with no bytes produced, so it emits EMBEDDED_OPENING_BRACE.
func (s *Scanner) scanOpenBrace(lx Lexer, start token.Position, didAdvance bool) (token.Token, bool, bool) {
	lx.MarkEnd()
	beforeBrace := lx.Position()
	lx.Advance(false) // consume '{'

	if !didAdvance && lx.Peek() == '$' {
		lx.MarkEnd()
		end := lx.Position()
		lx.Advance(false) // consume '$'
		if isIdentStart(lx.Peek()) {
			return token.Token{Kind: token.EmbeddedOpeningBrace, Start: start, End: end}, true, true
		}
		// "{$" not followed by an identifier: ordinary body content.
		return token.Token{}, false, false
	}

	if lx.Peek() == '$' {
		return s.scanDollarSigil(lx, start, beforeBrace)
	}
	return token.Token{}, false, false
}

// scanDollarSigil consumes a '$' and, if an identifier follows, emits
// HEREDOC_BODY ending at end (the position marked just before the '$',
// or before a preceding '{' it was folded into), but only succeeds if
// real body content preceded it in this call. Without that content there
// is nothing to tokenize as a body, and the scan fails so the host
// grammar can re-enter and lex the "$identifier" itself as a variable
// reference.
func (s *Scanner) scanDollarSigil(lx Lexer, start, end token.Position) (token.Token, bool, bool) {
	lx.Advance(false) // consume '$'
	if !isIdentStart(lx.Peek()) {
		return token.Token{}, false, false
	}
	return token.Token{Kind: token.HeredocBody, Start: start, End: end}, start != end, true
}

// scanCloseAttempt handles reaching a '\n' while did_end is still false.
// It looks ahead (without consuming) for the closing delimiter on the
// next line and decides among four outcomes: the close matches and there
// was body content before it (HEREDOC_BODY, excluding the newline), the
// close matches and there was none (HEREDOC_END_NEWLINE, including the
// newline), the close does not match but no bytes were produced in this
// call and HEREDOC_START_NEWLINE has not been emitted yet
// (HEREDOC_START_NEWLINE, including the newline), or none of the above,
// in which case the newline is ordinary body content and the loop
// continues.
//
// A matched close is never consumed here, only recorded via did_end:
// finishClose is the single place that actually advances past the
// delimiter, so its token is the one that reports the delimiter's span.
func (s *Scanner) scanCloseAttempt(lx Lexer, start token.Position, didAdvance bool) (token.Token, bool, bool) {
	if closed, _ := s.matchClose(lx, 1); closed {
		if didAdvance {
			// Body ends before the newline; the newline itself belongs to
			// no token here, see finishClose.
			lx.MarkEnd()
			end := lx.Position()
			s.state.didStart = true
			s.state.didEnd = true
			return token.Token{Kind: token.HeredocBody, Start: start, End: end}, true, true
		}

		lx.Advance(false) // the newline belongs to HEREDOC_END_NEWLINE
		lx.MarkEnd()
		end := lx.Position()
		s.state.didStart = true
		s.state.didEnd = true
		return token.Token{Kind: token.HeredocEndNewline, Start: start, End: end}, true, true
	}

	if !s.state.didStart && !didAdvance {
		lx.Advance(false) // the newline belongs to HEREDOC_START_NEWLINE
		lx.MarkEnd()
		end := lx.Position()
		s.state.didStart = true
		return token.Token{Kind: token.HeredocStartNewline, Start: start, End: end}, true, true
	}

	// Not a closer: this newline is ordinary body content.
	lx.Advance(false)
	return token.Token{}, false, false
}
