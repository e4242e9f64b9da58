package hostgrammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/krizos/hack-heredoc-scanner/pkg/hostgrammar"
	"github.com/krizos/hack-heredoc-scanner/pkg/token"
)

// shape strips position info down to what these tests assert against.
type shape struct {
	Heredoc bool
	Kind    token.Kind
	Host    hostgrammar.HostKind
}

func shapes(toks []hostgrammar.Token) []shape {
	out := make([]shape, len(toks))
	for i, t := range toks {
		out[i] = shape{Heredoc: t.Heredoc, Kind: t.Kind, Host: t.Host}
	}
	return out
}

func TestTokenizePlainHeredoc(t *testing.T) {
	src := "<<<EOF\nplain text\nEOF;\n"
	got := shapes(hostgrammar.Tokenize([]byte(src)))

	want := []shape{
		{Host: hostgrammar.OpenMarker},
		{Heredoc: true, Kind: token.HeredocStart},
		{Heredoc: true, Kind: token.HeredocBody},
		{Heredoc: true, Kind: token.HeredocEnd},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token shape mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeVariableInterpolation(t *testing.T) {
	src := "<<<EOF\n$name\nEOF;\n"
	got := shapes(hostgrammar.Tokenize([]byte(src)))

	want := []shape{
		{Host: hostgrammar.OpenMarker},
		{Heredoc: true, Kind: token.HeredocStart},
		{Host: hostgrammar.Variable},
		{Heredoc: true, Kind: token.HeredocEndNewline},
		{Heredoc: true, Kind: token.HeredocEnd},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token shape mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeBracedInterpolation(t *testing.T) {
	src := "<<<EOF\n{$name}\nEOF;\n"
	got := shapes(hostgrammar.Tokenize([]byte(src)))

	want := []shape{
		{Host: hostgrammar.OpenMarker},
		{Heredoc: true, Kind: token.HeredocStart},
		{Heredoc: true, Kind: token.EmbeddedOpeningBrace},
		{Host: hostgrammar.Variable},
		{Host: hostgrammar.RightBrace},
		{Heredoc: true, Kind: token.HeredocEndNewline},
		{Heredoc: true, Kind: token.HeredocEnd},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token shape mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeHostCodeAroundHeredoc(t *testing.T) {
	src := "$x = <<<EOF\nbody\nEOF;\n$x . $y;\n"
	got := hostgrammar.Tokenize([]byte(src))

	var sawStart, sawEnd bool
	for _, tok := range got {
		if tok.Heredoc && tok.Kind == token.HeredocStart {
			sawStart = true
		}
		if tok.Heredoc && tok.Kind == token.HeredocEnd {
			sawEnd = true
		}
	}
	assert.Assert(t, sawStart, "expected a HEREDOC_START token, got %v", got)
	assert.Assert(t, sawEnd, "expected a HEREDOC_END token, got %v", got)

	last := got[len(got)-1]
	assert.Assert(t, !last.Heredoc && last.Host == hostgrammar.Other,
		"expected the trailing source after the heredoc to be lexed by the host grammar, got %+v", last)
}

func TestTokenizeWithHooksFiresOnEveryToken(t *testing.T) {
	src := "<<<EOF\nbody\nEOF;\n"
	var seen int
	hostgrammar.TokenizeWithHooks([]byte(src), hostgrammar.Hooks{
		RoundTrip: true,
		OnToken:   func(hostgrammar.Token) { seen++ },
	})

	want := len(hostgrammar.Tokenize([]byte(src)))
	assert.Equal(t, seen, want, "OnToken should fire once per emitted token")
}

func TestRoundTripHookDoesNotChangeTokenStream(t *testing.T) {
	src := "<<<EOF\nHello, $name! {$greeting}\nEOF;\n"
	plain := hostgrammar.Tokenize([]byte(src))
	traced := hostgrammar.TokenizeWithHooks([]byte(src), hostgrammar.Hooks{RoundTrip: true})

	if diff := cmp.Diff(shapes(plain), shapes(traced)); diff != "" {
		t.Errorf("serialize/deserialize round-tripping every scan changed the token stream (-plain +traced):\n%s", diff)
	}
}
