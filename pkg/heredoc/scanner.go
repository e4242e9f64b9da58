// Package heredoc implements a restartable heredoc/nowdoc sub-lexer for a
// PHP-family incremental parser. It is a small external scanner: the host
// calls Scan once per token, serializing and deserializing the scanner's
// State across every incremental re-parse so that a partial edit resumes
// correctly instead of re-scanning the whole file.
//
// The scanner never looks beyond what the host's Lexer cursor gives it.
// It never evaluates interpolation expressions or escape sequences; that
// is the host grammar's job.
package heredoc

import "github.com/krizos/hack-heredoc-scanner/pkg/token"

// Scanner is the external scanner instance the host creates once per
// parser and drives through Scan/Serialize/Deserialize across the whole
// parse session.
type Scanner struct {
	state State
}

// NewScanner allocates a fresh scanner with empty state (the "create"
// entry point).
func NewScanner() *Scanner {
	return &Scanner{}
}

// Close releases the scanner (the "destroy" entry point). State holds no
// resources beyond a Go byte slice, so this exists for symmetry with the
// five-entry-point contract and to give callers a single place to stop
// using the scanner.
func (s *Scanner) Close() {
	s.state.reset()
}

// Scan performs one scan: it inspects expected and the current State,
// advances lx, and either emits a token and returns (tok, true), or
// returns (token.Token{}, false) having left State exactly as it found
// it. The host is responsible for discarding any Lexer cursor movement
// made during a call that returns false; see the Lexer doc comment.
func (s *Scanner) Scan(lx Lexer, expected token.Set) (token.Token, bool) {
	sn := s.state.snapshot()

	tok, ok := s.dispatch(lx, expected)
	if !ok {
		s.state.restore(sn)
		return token.Token{}, false
	}
	return tok, true
}

// dispatch runs scan_body first when the scanner is already inside a
// heredoc and the host expects a body/end/brace token, falls back to
// scan_start when HEREDOC_START is expected, and otherwise fails.
func (s *Scanner) dispatch(lx Lexer, expected token.Set) (token.Token, bool) {
	if s.state.inHeredoc() && expected.Any(token.HeredocBody, token.HeredocEnd, token.EmbeddedOpeningBrace) {
		return s.scanBody(lx)
	}
	if expected.Has(token.HeredocStart) {
		return s.scanStart(lx)
	}
	return token.Token{}, false
}

// InHeredoc reports whether the scanner currently holds an open
// delimiter, i.e. whether the host should be feeding it body/end tokens
// rather than looking for a new "<<<" opener.
func (s *Scanner) InHeredoc() bool {
	return s.state.inHeredoc()
}

// Serialize writes the scanner's state into out and returns the number
// of bytes written, or 0 if out is too small to hold it.
func (s *Scanner) Serialize(out []byte) int {
	return s.state.Serialize(out)
}

// Deserialize restores the scanner's state from in. An empty in resets
// the scanner to the empty, no-heredoc-open state.
func (s *Scanner) Deserialize(in []byte) {
	s.state.Deserialize(in)
}
