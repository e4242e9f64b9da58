// Package hostgrammar is a minimal fixture grammar: just enough of the
// surrounding language's lexer to recognize "<<<" and, inside a
// heredoc, the "$var" and closing '}' the scanner hands back; every other
// host byte is lexed as a single Other token. It exists purely to
// drive heredoc.Scanner across realistic multi-token input for tests and
// the heredocscan CLI demo. It is deliberately not a real parser; that
// remains an out-of-scope external collaborator.
package hostgrammar

import (
	"fmt"

	"github.com/krizos/hack-heredoc-scanner/pkg/heredoc"
	"github.com/krizos/hack-heredoc-scanner/pkg/heredoc/hostlex"
	"github.com/krizos/hack-heredoc-scanner/pkg/token"
)

// HostKind identifies a token lexed by this fixture grammar itself,
// rather than emitted by the heredoc scanner.
type HostKind int

const (
	OpenMarker HostKind = iota // the "<<<" that introduces a heredoc
	Variable                   // a "$identifier" reference
	RightBrace                 // the closing '}' of a {$expr} site
	Other                      // any other single host byte (';', whitespace, text)
)

func (k HostKind) String() string {
	switch k {
	case OpenMarker:
		return "OPEN_MARKER"
	case Variable:
		return "VARIABLE"
	case RightBrace:
		return "RIGHT_BRACE"
	default:
		return "OTHER"
	}
}

// Token is either a heredoc-scanner token or a fixture-grammar token,
// distinguished by Heredoc.
type Token struct {
	Heredoc bool
	Kind    token.Kind // set when Heredoc
	Host    HostKind   // set when !Heredoc
	Start   token.Position
	End     token.Position
}

func (t Token) String() string {
	if t.Heredoc {
		return fmt.Sprintf("%s(%s..%s)", t.Kind, t.Start, t.End)
	}
	return fmt.Sprintf("%s(%s..%s)", t.Host, t.Start, t.End)
}

// Hooks lets a caller observe and perturb the tokenize loop without
// forking it: OnToken fires after every token (scanner- or host-lexed),
// and RoundTrip, when set, serializes the scanner's State after every
// successful Scan and immediately deserializes it back in, the way the
// real incremental parser would across a save point. Driving that on
// every single token rather than only at explicit checkpoints is a
// stress exercise for the round-trip invariant, not something the
// scanner itself requires.
type Hooks struct {
	OnToken   func(Token)
	RoundTrip bool
}

// Tokenize lexes src, alternating between this fixture grammar's own
// host-level recognizers and heredoc.Scanner, the way the real
// incremental parser alternates between its generated lexer and the
// external scanner.
func Tokenize(src []byte) []Token {
	return TokenizeWithHooks(src, Hooks{})
}

// TokenizeWithHooks is Tokenize with observability hooks; see Hooks.
func TokenizeWithHooks(src []byte, hooks Hooks) []Token {
	lx := hostlex.New(src)
	sc := heredoc.NewScanner()
	var out []Token

	emit := func(toks ...Token) {
		for _, t := range toks {
			out = append(out, t)
			if hooks.OnToken != nil {
				hooks.OnToken(t)
			}
		}
	}

	for !lx.Done() {
		if sc.InHeredoc() {
			emit(stepInsideHeredoc(sc, lx, hooks)...)
			continue
		}
		if lx.Peek() == '<' && lx.PeekAt(1) == '<' && lx.PeekAt(2) == '<' {
			emit(stepOpenMarker(sc, lx, hooks)...)
			continue
		}
		emit(lexHostByte(lx))
	}
	return out
}

// roundTrip serializes sc's State and immediately deserializes it back,
// skipping the write entirely when the buffer it tries first is too
// small. This mirrors how a real host would fall back to a larger buffer
// or, failing that, skip caching for this checkpoint per Serialize's
// "0 means do not persist" contract.
func roundTrip(sc *heredoc.Scanner) {
	var buf [64]byte
	n := sc.Serialize(buf[:])
	if n == 0 {
		return
	}
	sc.Deserialize(buf[:n])
}

// stepOpenMarker consumes the literal "<<<" and immediately asks the
// scanner for HEREDOC_START, the way the host grammar's own "<<<" rule
// would hand off to the external scanner right after matching its prefix.
func stepOpenMarker(sc *heredoc.Scanner, lx *hostlex.Lexer, hooks Hooks) []Token {
	start := lx.Position()
	lx.Advance(false)
	lx.Advance(false)
	lx.Advance(false)
	lx.MarkEnd()
	end := lx.Position()
	lx.Commit()

	toks := []Token{{Host: OpenMarker, Start: start, End: end}}
	if tok, ok := hostlex.Drive(sc, lx, token.NewSet(token.HeredocStart)); ok {
		toks = append(toks, Token{Heredoc: true, Kind: tok.Kind, Start: tok.Start, End: tok.End})
		if hooks.RoundTrip {
			roundTrip(sc)
		}
	}
	return toks
}

// stepInsideHeredoc asks the scanner for the next body/end/brace token.
// When it fails (the only case is a bare "$identifier" with no
// preceding body content), this fixture grammar takes over and lexes the
// variable reference itself, per the interpolation/host handoff
// partition: the scanner decides *that* interpolation starts, the host
// lexes *what* it is.
func stepInsideHeredoc(sc *heredoc.Scanner, lx *hostlex.Lexer, hooks Hooks) []Token {
	expected := token.NewSet(
		token.HeredocStartNewline,
		token.HeredocBody,
		token.HeredocEndNewline,
		token.HeredocEnd,
		token.EmbeddedOpeningBrace,
	)
	tok, ok := hostlex.Drive(sc, lx, expected)
	if !ok {
		return []Token{lexVariable(lx)}
	}
	if hooks.RoundTrip {
		roundTrip(sc)
	}
	out := []Token{{Heredoc: true, Kind: tok.Kind, Start: tok.Start, End: tok.End}}
	if tok.Kind == token.EmbeddedOpeningBrace {
		out = append(out, lexEmbeddedExpr(lx)...)
	}
	return out
}

// lexEmbeddedExpr lexes the "$identifier}" that follows an
// EMBEDDED_OPENING_BRACE token, i.e. everything the scanner handed back
// to the host once it recognized the brace itself.
func lexEmbeddedExpr(lx *hostlex.Lexer) []Token {
	toks := []Token{lexVariable(lx)}
	if lx.Peek() == '}' {
		start := lx.Position()
		lx.Advance(false)
		lx.MarkEnd()
		end := lx.Position()
		lx.Commit()
		toks = append(toks, Token{Host: RightBrace, Start: start, End: end})
	}
	return toks
}

func lexVariable(lx *hostlex.Lexer) Token {
	start := lx.Position()
	lx.Advance(false) // '$'
	for isIdentByte(lx.Peek()) {
		lx.Advance(false)
	}
	lx.MarkEnd()
	end := lx.Position()
	lx.Commit()
	return Token{Host: Variable, Start: start, End: end}
}

func lexHostByte(lx *hostlex.Lexer) Token {
	start := lx.Position()
	skip := lx.Peek() == ' ' || lx.Peek() == '\t' || lx.Peek() == '\n'
	lx.Advance(skip)
	lx.MarkEnd()
	end := lx.Position()
	lx.Commit()
	return Token{Host: Other, Start: start, End: end}
}

func isIdentByte(r rune) bool {
	return r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9')
}
