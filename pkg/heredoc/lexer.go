package heredoc

import "github.com/krizos/hack-heredoc-scanner/pkg/token"

// Lexer is the set of primitives the host incremental parser provides to
// the scanner. The scanner only ever reads through this interface; it
// never owns the underlying buffer.
//
// The cursor and the token's right edge are two different quantities:
// Advance may run past the logical end of the token currently being
// matched (pure lookahead), and only MarkEnd commits a position as the
// token boundary the host will record. A call that returns false leaves
// any Advance/MarkEnd calls it made for the host to discard; see
// Scanner.Scan.
type Lexer interface {
	// Peek returns the current lookahead code point, or 0 at end of input.
	Peek() rune

	// PeekAt returns the code point offset bytes ahead of the cursor
	// without consuming anything, or 0 past end of input. PeekAt(0) is
	// equivalent to Peek. The close-delimiter check needs to know
	// whether a multi-byte match succeeds before it commits to a mark
	// position, so it reads ahead with PeekAt before calling Advance for
	// anything it actually decides to consume.
	PeekAt(offset int) rune

	// Advance consumes one code point. skip=true marks it as whitespace
	// outside any token: it will not belong to the next emitted token.
	Advance(skip bool)

	// MarkEnd records the current cursor position as the end of the
	// token currently being matched. Later Advance calls may move past
	// it for lookahead without extending the emitted token, unless
	// MarkEnd is called again.
	MarkEnd()

	// Position returns the position the host associates with the cursor,
	// for attaching to the Start/End of an emitted token.
	Position() token.Position
}
