package ir

import (
	"fmt"
	"strings"
)

// Expr is an opaque sensed expression or generated rvalue. Construction and
// type inference over arbitrary expressions is out of scope for the
// scheduler; it only ever needs to clone an expression, compare it for
// structural equality (via Key), know its bit width, and render it for
// debug/dump messages (via String).
type Expr interface {
	// Key returns a string that is equal for two structurally equivalent
	// expressions and different otherwise. Used in place of Verilator's
	// ambient VNRef<AstNode> equality trait (see SPEC_FULL.md §B).
	Key() string
	// Width returns the bit width of the expression's value.
	Width() int
	// Clone returns a deep, independent copy.
	Clone() Expr
	// String renders the expression in a verilog-like textual form, used
	// only for generated debug/dump messages.
	String() string
}

// VarRef is a reference to a variable bound to a scope.
type VarRef struct {
	VScope *VScope
	Write  bool
}

func (v *VarRef) Key() string {
	if v.VScope == nil {
		return "varref:<nil>"
	}
	return "varref:" + v.VScope.QualifiedName()
}

func (v *VarRef) Width() int {
	if v.VScope == nil {
		return 0
	}
	return v.VScope.Type.Width
}

func (v *VarRef) Clone() Expr {
	return &VarRef{VScope: v.VScope, Write: v.Write}
}

func (v *VarRef) String() string {
	if v.VScope == nil {
		return "<nil>"
	}
	return v.VScope.Name
}

// Const is a literal constant value.
type Const struct {
	Value uint64
	Wd    int
}

func (c *Const) Key() string      { return fmt.Sprintf("const:%d:%d", c.Wd, c.Value) }
func (c *Const) Width() int       { return c.Wd }
func (c *Const) Clone() Expr      { return &Const{Value: c.Value, Wd: c.Wd} }
func (c *Const) String() string   { return fmt.Sprintf("%d'd%d", c.Wd, c.Value) }

// Node is a generic opaque operator or method-call node: a textual operator
// tag plus an ordered list of operand expressions. It plays the role of
// mir.RValue's tagged union, but stays deliberately untyped since expression
// construction/typing is out of scope for the scheduler (spec.md §1) -- the
// scheduler only ever builds small synthetic nodes of its own (Sel 0 1,
// Neq, Xor, And, Not, and the TriggerVec/event method calls) or clones
// opaque sensed expressions supplied by the caller.
type Node struct {
	Op   string
	Kids []Expr
	Wd   int
}

func (n *Node) Key() string {
	var b strings.Builder
	b.WriteString(n.Op)
	for _, k := range n.Kids {
		b.WriteByte('|')
		if k == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(k.Key())
	}
	return b.String()
}

func (n *Node) Width() int { return n.Wd }

func (n *Node) Clone() Expr {
	kids := make([]Expr, len(n.Kids))
	for i, k := range n.Kids {
		if k != nil {
			kids[i] = k.Clone()
		}
	}
	return &Node{Op: n.Op, Kids: kids, Wd: n.Wd}
}

func (n *Node) String() string {
	switch n.Op {
	case "not":
		return "!" + n.operand(0)
	case "sel01":
		return n.operand(0) + "[0]"
	case "isFired", "clearFired", "any", "clear":
		return n.operand(0) + "." + n.Op + "()"
	case "at":
		return fmt.Sprintf("%s.at(%s)", n.operand(0), n.operand(1))
	case "andNot", "set":
		return fmt.Sprintf("%s.%s(%s)", n.operand(0), n.Op, n.operand(1))
	case "neq":
		return n.operand(0) + " != " + n.operand(1)
	case "gt":
		return n.operand(0) + " > " + n.operand(1)
	case "add":
		return n.operand(0) + " + " + n.operand(1)
	case "xor":
		return n.operand(0) + " ^ " + n.operand(1)
	case "and":
		return n.operand(0) + " & " + n.operand(1)
	case "or":
		return n.operand(0) + " | " + n.operand(1)
	default:
		var parts []string
		for _, k := range n.Kids {
			if k != nil {
				parts = append(parts, k.String())
			}
		}
		return n.Op + "(" + strings.Join(parts, ", ") + ")"
	}
}

func (n *Node) operand(i int) string {
	if i >= len(n.Kids) || n.Kids[i] == nil {
		return "<nil>"
	}
	return n.Kids[i].String()
}

// AsVarRef reports whether e is a direct variable reference, returning it
// if so. Used by SenExprBuilder to choose readable prev-variable names.
func AsVarRef(e Expr) (*VarRef, bool) {
	v, ok := e.(*VarRef)
	return v, ok
}

// Helper constructors for the small set of synthetic expressions the
// scheduler itself builds (SPEC_FULL.md keeps these tiny and untyped on
// purpose -- see the Expr doc comment).

func Neq(a, b Expr) Expr  { return &Node{Op: "neq", Kids: []Expr{a, b}, Wd: 1} }
func Gt(a, b Expr) Expr   { return &Node{Op: "gt", Kids: []Expr{a, b}, Wd: 1} }
func Add(a, b Expr) Expr  { return &Node{Op: "add", Kids: []Expr{a, b}, Wd: max(a.Width(), b.Width())} }
func Xor(a, b Expr) Expr  { return &Node{Op: "xor", Kids: []Expr{a, b}, Wd: max(a.Width(), b.Width())} }
func And(a, b Expr) Expr  { return &Node{Op: "and", Kids: []Expr{a, b}, Wd: max(a.Width(), b.Width())} }
func Or(a, b Expr) Expr   { return &Node{Op: "or", Kids: []Expr{a, b}, Wd: max(a.Width(), b.Width())} }
func Not(a Expr) Expr     { return &Node{Op: "not", Kids: []Expr{a}, Wd: a.Width()} }
func Sel01(a Expr) Expr   { return &Node{Op: "sel01", Kids: []Expr{a}, Wd: 1} }
func MethodCall(recv Expr, name string, args ...Expr) Expr {
	kids := append([]Expr{recv}, args...)
	return &Node{Op: name, Kids: kids, Wd: 1}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
