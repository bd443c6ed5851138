package ir

// CollectVarRefs walks stmts and returns the structural keys of every
// variable read and written, in encounter order with duplicates removed.
// Used by internal/planner to build a dependency graph over activation
// bodies without needing a full expression-typing layer (spec.md §1).
func CollectVarRefs(stmts []Stmt) (reads, writes []string) {
	rs, ws := make(map[string]bool), make(map[string]bool)
	var walkExpr func(e Expr, write bool)
	walkExpr = func(e Expr, write bool) {
		if e == nil {
			return
		}
		switch v := e.(type) {
		case *VarRef:
			key := v.Key()
			if write || v.Write {
				if !ws[key] {
					ws[key] = true
					writes = append(writes, key)
				}
			} else {
				if !rs[key] {
					rs[key] = true
					reads = append(reads, key)
				}
			}
		case *Node:
			for _, k := range v.Kids {
				walkExpr(k, false)
			}
		}
	}
	var walkStmts func(stmts []Stmt)
	walkStmts = func(stmts []Stmt) {
		for _, s := range stmts {
			switch s.Kind {
			case StmtAssign:
				walkExpr(s.Assign.Rhs, false)
				walkExpr(s.Assign.Lhs, true)
			case StmtIf:
				walkExpr(s.If.Cond, false)
				walkStmts(s.If.Then)
				walkStmts(s.If.Else)
			case StmtWhile:
				walkExpr(s.While.Cond, false)
				walkStmts(s.While.Body)
			case StmtMethodCall:
				walkExpr(s.Method.Recv, false)
				for _, a := range s.Method.Args {
					walkExpr(a, false)
				}
			case StmtBlock:
				walkStmts(s.Block)
			}
		}
	}
	walkStmts(stmts)
	return reads, writes
}
