package sched

import (
	"fmt"

	"hdlsched/internal/ir"
)

// buildLoop emits:
//
//	continue := 1
//	while (continue) { continue := 0; <body> }
//
// and returns the two statements as a sequence (spec.md §4.5). body is
// called with the loop's continue variable and builds the statements that
// go inside the while.
func buildLoop(scope *ir.Scope, tag string, body func(cont *ir.VScope) []ir.Stmt) []ir.Stmt {
	cont := scope.NewVar("__V"+tag+"Continue", 1, 0)
	whileBody := []ir.Stmt{ir.SetConst(cont, 0)}
	whileBody = append(whileBody, body(cont)...)
	return []ir.Stmt{
		ir.SetConst(cont, 1),
		{Kind: ir.StmtWhile, While: ir.WhileStmt{Cond: &ir.VarRef{VScope: cont}, Body: whileBody}},
	}
}

// EvalLoop is the result of makeEvalLoop: the iteration counter variable
// plus the emitted statement sequence (spec.md §4.5).
type EvalLoop struct {
	IterCounter *ir.VScope
	Stmts       []ir.Stmt
}

// makeEvalLoop emits the bounded fixed-point loop shared by settle, ico,
// act and nba (spec.md §4.5):
//
//	iter := 0
//	buildLoop(tag, (continue, loop) => {
//	  loop += computeTriggers()
//	  if (trigVec.any()) {
//	    continue := 1
//	    if (iter > convergeLimit) {
//	      #ifdef DEBUG dumpFn() #endif
//	      VL_FATAL_MT(file, line, "", "<name> region did not converge.")
//	    }
//	    iter := iter + 1
//	    loop += makeBody()
//	  }
//	})
func makeEvalLoop(
	scope *ir.Scope,
	tag, name string,
	trigVec *ir.VScope,
	dumpFn *ir.Function,
	convergeLimit int,
	computeTriggers func() []ir.Stmt,
	makeBody func() []ir.Stmt,
) *EvalLoop {
	iter := scope.NewVar("__V"+tag+"IterCount", 32, 0)
	init := ir.SetConst(iter, 0)

	loopStmts := buildLoop(scope, tag, func(cont *ir.VScope) []ir.Stmt {
		var body []ir.Stmt
		body = append(body, computeTriggers()...)

		anyFired := ir.MethodCall(&ir.VarRef{VScope: trigVec}, "any")

		var fatalBody []ir.Stmt
		if dumpFn != nil {
			fatalBody = append(fatalBody, ir.Call(dumpFn))
		}
		fatalBody = append(fatalBody, ir.Text(fmt.Sprintf(
			`VL_FATAL_MT(__FILE__, __LINE__, "", "%s region did not converge.")`, name)))

		inner := []ir.Stmt{
			ir.SetConst(cont, 1),
			{Kind: ir.StmtIf, If: ir.IfStmt{
				Cond: ir.Gt(&ir.VarRef{VScope: iter}, &ir.Const{Value: uint64(convergeLimit), Wd: 32}),
				Then: fatalBody,
			}},
			ir.Assign(&ir.VarRef{VScope: iter, Write: true},
				ir.Add(&ir.VarRef{VScope: iter}, &ir.Const{Value: 1, Wd: 32})),
		}
		inner = append(inner, makeBody()...)

		body = append(body, ir.Stmt{Kind: ir.StmtIf, If: ir.IfStmt{Cond: anyFired, Then: inner}})
		return body
	})

	return &EvalLoop{IterCounter: iter, Stmts: append([]ir.Stmt{init}, loopStmts...)}
}
