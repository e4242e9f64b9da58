package hostlex_test

import (
	"testing"

	"github.com/krizos/hack-heredoc-scanner/pkg/heredoc"
	"github.com/krizos/hack-heredoc-scanner/pkg/heredoc/hostlex"
	"github.com/krizos/hack-heredoc-scanner/pkg/token"
)

func TestPeekAtEndOfInputIsZero(t *testing.T) {
	lx := hostlex.New([]byte("ab"))
	if lx.PeekAt(5) != 0 {
		t.Fatalf("PeekAt past the buffer = %q, want 0", lx.PeekAt(5))
	}
	if lx.PeekAt(-1) != 0 {
		t.Fatalf("PeekAt before the buffer = %q, want 0", lx.PeekAt(-1))
	}
}

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	lx := hostlex.New([]byte("ab\ncd"))

	for i := 0; i < 3; i++ { // consume "ab\n"
		lx.Advance(false)
	}
	lx.MarkEnd()
	lx.Commit()

	pos := lx.Position()
	if pos.Line != 2 || pos.Column != 1 {
		t.Fatalf("Position after a newline = %s, want 2:1", pos)
	}
}

func TestDoneTracksCommittedPosition(t *testing.T) {
	lx := hostlex.New([]byte("ab"))
	if lx.Done() {
		t.Fatal("fresh lexer over non-empty input must not be Done")
	}

	lx.Advance(false)
	lx.MarkEnd()
	if lx.Done() {
		t.Fatal("Done should reflect the committed position, not lookahead")
	}

	lx.Commit()
	if lx.Done() {
		t.Fatal("one of two bytes consumed; still not Done")
	}

	lx.Advance(false)
	lx.MarkEnd()
	lx.Commit()
	if !lx.Done() {
		t.Fatal("both bytes consumed and committed; expected Done")
	}
}

func TestRollbackDiscardsUnmarkedLookahead(t *testing.T) {
	lx := hostlex.New([]byte("abc"))
	lx.Advance(false) // peek past 'a' without marking
	lx.Advance(false) // and past 'b'

	lx.Rollback()
	if lx.Peek() != 'a' {
		t.Fatalf("Rollback left lookahead at %q, want 'a'", lx.Peek())
	}
}

func TestCommitResumesFromLastMark(t *testing.T) {
	lx := hostlex.New([]byte("abcdef"))
	lx.Advance(false) // 'a'
	lx.MarkEnd()      // mark after 'a'
	lx.Advance(false) // peek past 'b', never marked
	lx.Advance(false) // and 'c'

	lx.Commit()
	if lx.Peek() != 'b' {
		t.Fatalf("Commit resumed at %q, want 'b' (the last marked position)", lx.Peek())
	}
}

func TestDriveRollsBackOnFailure(t *testing.T) {
	lx := hostlex.New([]byte("not a heredoc opener"))
	sc := heredoc.NewScanner()
	if _, ok := hostlex.Drive(sc, lx, token.NewSet(token.HeredocStart)); ok {
		t.Fatal("expected scan_start to fail when no newline follows the identifier")
	}
	if lx.Peek() != 'n' {
		t.Fatalf("a failed Scan must leave the cursor untouched, got %q", lx.Peek())
	}
}
