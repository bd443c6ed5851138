package ir_test

import (
	"testing"

	"hdlsched/internal/ir"
)

func TestRewriteVarRefOnly_SubstitutesVarRefButNotText(t *testing.T) {
	s := ir.NewScope("s", nil)
	from := s.NewVar("actTrig", 4, 0)
	to := s.NewVar("nbaTrig", 4, 0)
	out := s.NewVar("out", 4, 0)

	stmts := []ir.Stmt{
		ir.Assign(&ir.VarRef{VScope: out, Write: true}, &ir.VarRef{VScope: from}),
		ir.Text("act region did not converge"),
	}
	rewritten := ir.RewriteVarRefOnly(stmts, from, to)

	if got := rewritten[0].Assign.Rhs.(*ir.VarRef).VScope; got != to {
		t.Errorf("expected rhs read rewritten to %q, got %q", to.Name, got.Name)
	}
	if rewritten[1].Text.Text != "act region did not converge" {
		t.Errorf("expected text stmt left untouched, got %q", rewritten[1].Text.Text)
	}
}

func TestRewriteVarRef_PanicsWhenFromIsWritten(t *testing.T) {
	s := ir.NewScope("s", nil)
	from := s.NewVar("a", 4, 0)
	to := s.NewVar("b", 4, 0)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic when rewriting a write reference to from")
		}
	}()
	ir.RewriteVarRef(&ir.VarRef{VScope: from, Write: true}, from, to)
}

func TestRewriteVarRefInStmts_SubstitutesTextWord(t *testing.T) {
	s := ir.NewScope("s", nil)
	from := s.NewVar("actTrig", 4, 0)
	to := s.NewVar("nbaTrig", 4, 0)

	stmts := []ir.Stmt{ir.Text("act region did not converge")}
	out := ir.RewriteVarRefInStmts(stmts, from, to, "act", "nba")

	want := "nba region did not converge"
	if out[0].Text.Text != want {
		t.Errorf("got %q, want %q", out[0].Text.Text, want)
	}
}

func TestRewriteVarRef_LeavesUnrelatedVarRefsAlone(t *testing.T) {
	s := ir.NewScope("s", nil)
	from := s.NewVar("a", 4, 0)
	to := s.NewVar("b", 4, 0)
	other := s.NewVar("c", 4, 0)

	got := ir.RewriteVarRef(&ir.VarRef{VScope: other}, from, to)
	if got.(*ir.VarRef).VScope != other {
		t.Errorf("expected unrelated varref left alone, got %q", got.(*ir.VarRef).VScope.Name)
	}
}
