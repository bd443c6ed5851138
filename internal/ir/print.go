package ir

import (
	"fmt"
	"strings"
)

// Print renders a function as indented pseudo-statements, used by the
// scheduler's own debug dumps and by tests asserting on generated shape.
// It deliberately does not attempt to be valid target-language source; it
// exists for humans and test fixtures, mirroring how the teacher's mir
// package renders instructions for -dump-mir.
func (f *Function) Print() string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s", f.Name)
	if f.IfDef != "" {
		fmt.Fprintf(&b, " [ifdef %s]", f.IfDef)
	}
	b.WriteString(" {\n")
	printStmts(&b, f.Body, 1)
	b.WriteString("}\n")
	return b.String()
}

func printStmts(b *strings.Builder, stmts []Stmt, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, s := range stmts {
		switch s.Kind {
		case StmtAssign:
			fmt.Fprintf(b, "%s%s = %s\n", indent, exprString(s.Assign.Lhs), exprString(s.Assign.Rhs))
		case StmtIf:
			fmt.Fprintf(b, "%sif (%s) {\n", indent, exprString(s.If.Cond))
			printStmts(b, s.If.Then, depth+1)
			if len(s.If.Else) > 0 {
				fmt.Fprintf(b, "%s} else {\n", indent)
				printStmts(b, s.If.Else, depth+1)
			}
			fmt.Fprintf(b, "%s}\n", indent)
		case StmtWhile:
			fmt.Fprintf(b, "%swhile (%s) {\n", indent, exprString(s.While.Cond))
			printStmts(b, s.While.Body, depth+1)
			fmt.Fprintf(b, "%s}\n", indent)
		case StmtCall:
			fmt.Fprintf(b, "%s%s();\n", indent, s.Call.Func.Name)
		case StmtMethodCall:
			args := make([]string, len(s.Method.Args))
			for i, a := range s.Method.Args {
				args[i] = exprString(a)
			}
			fmt.Fprintf(b, "%s%s.%s(%s);\n", indent, exprString(s.Method.Recv), s.Method.Method, strings.Join(args, ", "))
		case StmtText:
			fmt.Fprintf(b, "%s%s\n", indent, s.Text.Text)
		case StmtBlock:
			printStmts(b, s.Block, depth)
		}
	}
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
