package ir_test

import (
	"reflect"
	"testing"

	"hdlsched/internal/ir"
)

func TestCollectVarRefs_SeparatesReadsAndWrites(t *testing.T) {
	s := ir.NewScope("s", nil)
	a := s.NewVar("a", 8, 0)
	b := s.NewVar("b", 8, 0)

	stmts := []ir.Stmt{
		ir.Assign(&ir.VarRef{VScope: b, Write: true}, ir.Add(&ir.VarRef{VScope: a}, &ir.Const{Value: 1, Wd: 8})),
	}
	reads, writes := ir.CollectVarRefs(stmts)

	wantReads := []string{(&ir.VarRef{VScope: a}).Key()}
	wantWrites := []string{(&ir.VarRef{VScope: b}).Key()}
	if !reflect.DeepEqual(reads, wantReads) {
		t.Errorf("reads = %v, want %v", reads, wantReads)
	}
	if !reflect.DeepEqual(writes, wantWrites) {
		t.Errorf("writes = %v, want %v", writes, wantWrites)
	}
}

func TestCollectVarRefs_DedupesAndWalksNestedStmts(t *testing.T) {
	s := ir.NewScope("s", nil)
	cond := s.NewVar("cond", 1, 0)
	x := s.NewVar("x", 8, 0)

	stmts := []ir.Stmt{
		{Kind: ir.StmtIf, If: ir.IfStmt{
			Cond: &ir.VarRef{VScope: cond},
			Then: []ir.Stmt{
				ir.Assign(&ir.VarRef{VScope: x, Write: true}, &ir.Const{Value: 1, Wd: 8}),
				ir.Assign(&ir.VarRef{VScope: x, Write: true}, &ir.Const{Value: 2, Wd: 8}),
			},
		}},
	}
	reads, writes := ir.CollectVarRefs(stmts)

	if len(reads) != 1 || reads[0] != (&ir.VarRef{VScope: cond}).Key() {
		t.Errorf("reads = %v, want exactly one read of cond", reads)
	}
	if len(writes) != 1 || writes[0] != (&ir.VarRef{VScope: x}).Key() {
		t.Errorf("writes = %v, want exactly one deduped write of x", writes)
	}
}
