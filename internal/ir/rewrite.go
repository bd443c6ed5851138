package ir

import (
	"fmt"
	"strings"
)

// RewriteVarRef returns a deep copy of e with every VarRef to from
// replaced by a read of to. Used by the eval assembly to derive the nba
// dump function from the act one by rewriting trigger-vector references
// (spec.md §4.8 step 2). Every such reference must be a read of from,
// never a write (spec.md §4.7 step 10, §4.8 step 2).
func RewriteVarRef(e Expr, from, to *VScope) Expr {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *VarRef:
		if v.VScope == from {
			if v.Write {
				panic(fmt.Errorf("ir: RewriteVarRef: %s is written, not read", from.Name))
			}
			return &VarRef{VScope: to, Write: false}
		}
		return &VarRef{VScope: v.VScope, Write: v.Write}
	case *Const:
		return &Const{Value: v.Value, Wd: v.Wd}
	case *Node:
		kids := make([]Expr, len(v.Kids))
		for i, k := range v.Kids {
			kids[i] = RewriteVarRef(k, from, to)
		}
		return &Node{Op: v.Op, Kids: kids, Wd: v.Wd}
	default:
		return e.Clone()
	}
}

// RewriteVarRefOnly deep-copies stmts, substituting every VarRef to from
// with a read of to, without touching any TextStmt content.
func RewriteVarRefOnly(stmts []Stmt, from, to *VScope) []Stmt {
	return RewriteVarRefInStmts(stmts, from, to, "", "")
}

// RewriteVarRefInStmts deep-copies stmts, substituting every VarRef to
// from with a read of to, and replacing every occurrence of oldWord with
// newWord in TextStmt contents (spec.md §4.8 step 2's "textually replace
// the word act with nba in message strings").
func RewriteVarRefInStmts(stmts []Stmt, from, to *VScope, oldWord, newWord string) []Stmt {
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = rewriteStmt(s, from, to, oldWord, newWord)
	}
	return out
}

func rewriteStmt(s Stmt, from, to *VScope, oldWord, newWord string) Stmt {
	out := Stmt{Kind: s.Kind, Call: s.Call}
	switch s.Kind {
	case StmtAssign:
		out.Assign = AssignStmt{
			Lhs: RewriteVarRef(s.Assign.Lhs, from, to),
			Rhs: RewriteVarRef(s.Assign.Rhs, from, to),
		}
	case StmtIf:
		out.If = IfStmt{
			Cond:     RewriteVarRef(s.If.Cond, from, to),
			Then:     RewriteVarRefInStmts(s.If.Then, from, to, oldWord, newWord),
			Else:     RewriteVarRefInStmts(s.If.Else, from, to, oldWord, newWord),
			Unlikely: s.If.Unlikely,
		}
	case StmtWhile:
		out.While = WhileStmt{
			Cond: RewriteVarRef(s.While.Cond, from, to),
			Body: RewriteVarRefInStmts(s.While.Body, from, to, oldWord, newWord),
		}
	case StmtMethodCall:
		args := make([]Expr, len(s.Method.Args))
		for i, a := range s.Method.Args {
			args[i] = RewriteVarRef(a, from, to)
		}
		out.Method = MethodCallStmt{
			Recv:   RewriteVarRef(s.Method.Recv, from, to),
			Method: s.Method.Method,
			Args:   args,
		}
	case StmtText:
		if oldWord == "" {
			out.Text = s.Text
		} else {
			out.Text = TextStmt{Text: strings.ReplaceAll(s.Text.Text, oldWord, newWord)}
		}
	case StmtBlock:
		out.Block = RewriteVarRefInStmts(s.Block, from, to, oldWord, newWord)
	}
	return out
}
