// Package hostlex is a minimal, in-memory stand-in for the incremental
// parser's own lexer cursor. The real host is an external collaborator
// (out of scope here); this implementation exists so tests, fixtures, and
// the heredocscan CLI have something concrete to drive heredoc.Scanner
// with.
//
// It also owns the half of the external-scanner contract the scanner
// itself cannot: discarding cursor movement from a failed Scan, and, on
// a successful one, resuming the next Scan exactly at the position the
// scanner last marked rather than wherever its lookahead happened to
// land. Drive implements both.
package hostlex

import (
	"github.com/krizos/hack-heredoc-scanner/pkg/heredoc"
	"github.com/krizos/hack-heredoc-scanner/pkg/token"
)

// Lexer is a byte-slice cursor implementing heredoc.Lexer. pos is the
// position the next Scan call starts from; look is the scanner's
// lookahead cursor, which may run ahead of pos during a single Scan call.
// mark records the last position MarkEnd committed to.
type Lexer struct {
	src []byte

	pos, posLine, posCol    int
	look, lookLine, lookCol int
	mark, markLine, markCol int
}

// New builds a Lexer over src, cursor at the start of the buffer.
func New(src []byte) *Lexer {
	return &Lexer{
		src:      src,
		posLine:  1, posCol: 1,
		lookLine: 1, lookCol: 1,
		markLine: 1, markCol: 1,
	}
}

func (l *Lexer) byteAt(i int) rune {
	if i < 0 || i >= len(l.src) {
		return 0
	}
	return rune(l.src[i])
}

// Peek returns the current lookahead code point, or 0 at end of input.
func (l *Lexer) Peek() rune {
	return l.byteAt(l.look)
}

// PeekAt returns the code point offset bytes past the lookahead cursor.
func (l *Lexer) PeekAt(offset int) rune {
	return l.byteAt(l.look + offset)
}

// Advance consumes one byte. skip=true also advances pos to match, so a
// failed scan that only ever skipped whitespace still leaves that
// whitespace behind it rather than re-presenting it on retry.
func (l *Lexer) Advance(skip bool) {
	b := l.byteAt(l.look)
	l.look++
	if b == '\n' {
		l.lookLine++
		l.lookCol = 1
	} else {
		l.lookCol++
	}
	if skip {
		l.pos, l.posLine, l.posCol = l.look, l.lookLine, l.lookCol
	}
}

// MarkEnd records the current lookahead position as the token boundary.
func (l *Lexer) MarkEnd() {
	l.mark, l.markLine, l.markCol = l.look, l.lookLine, l.lookCol
}

// Position returns the current lookahead position.
func (l *Lexer) Position() token.Position {
	return token.Position{Offset: l.look, Line: l.lookLine, Column: l.lookCol}
}

// Done reports whether the committed cursor has reached end of input.
func (l *Lexer) Done() bool {
	return l.pos >= len(l.src)
}

// Commit advances pos to the last marked position and resets look there,
// so the next token starts exactly where this one left its boundary.
// Host-side recognizers that don't go through the scanner (identifiers,
// braces, the "<<<" marker) call this directly after their own MarkEnd.
func (l *Lexer) Commit() {
	l.pos, l.posLine, l.posCol = l.mark, l.markLine, l.markCol
	l.look, l.lookLine, l.lookCol = l.pos, l.posLine, l.posCol
}

// Rollback discards any Advance/MarkEnd calls made since pos, restoring
// the lookahead cursor to where the last committed token left it.
func (l *Lexer) Rollback() {
	l.look, l.lookLine, l.lookCol = l.pos, l.posLine, l.posCol
}

// Drive runs one Scan against s, applying the commit/rollback half of the
// external-scanner contract around it: on success the cursor advances to
// the emitted token's marked end, on failure it's as if nothing happened.
func Drive(s *heredoc.Scanner, lx *Lexer, expected token.Set) (token.Token, bool) {
	tok, ok := s.Scan(lx, expected)
	if ok {
		lx.Commit()
	} else {
		lx.Rollback()
	}
	return tok, ok
}
