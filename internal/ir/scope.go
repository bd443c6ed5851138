package ir

import "strings"

// VarType is the minimal type information the scheduler relies on: a bit
// width. Full type inference is out of scope (spec.md §1).
type VarType struct {
	Width int
}

// VarFlags are modifiers on a VScope.
type VarFlags uint32

const (
	// VarTopLevelInput marks a variable as a top-level module input.
	VarTopLevelInput VarFlags = 1 << iota
	// VarNonOutput marks a variable that is never a top-level output
	// (used to decide whether ico-loop inputs must be externally sensitive).
	VarNonOutput
	// VarWrittenByDPI marks a variable mutated by a foreign (DPI) callout.
	VarWrittenByDPI
	// VarScSensitive marks a variable that must be made sc_sensitive when
	// targeting SystemC (set by createInputCombLoop, spec.md §4.6).
	VarScSensitive
)

func (f VarFlags) Has(flag VarFlags) bool { return f&flag != 0 }

// VScope is a variable bound to a scope.
type VScope struct {
	Scope *Scope
	Name  string
	Type  VarType
	Flags VarFlags
}

// QualifiedName returns the dotless-scope-qualified name used for
// generated "previous value" signal names.
func (v *VScope) QualifiedName() string {
	if v.Scope == nil {
		return v.Name
	}
	return v.Scope.DotlessName() + "__" + v.Name
}

// IsTopLevelInput reports whether this variable is a top-level, non-output
// input (spec.md §4.6/§4.7's "top-level inputs" classification).
func (v *VScope) IsTopLevelInput() bool {
	return v.Flags.Has(VarTopLevelInput) && v.Flags.Has(VarNonOutput)
}

// Scope is a named region of hierarchy: it owns variables, activations and
// generated sub-functions.
type Scope struct {
	Name     string
	Parent   *Scope
	Children []*Scope
	Vars     []*VScope
	// Activations are the behavioral logic blocks attached to this scope
	// before scheduling; the classifier consumes them and the scheduler
	// clears this slice as it destructively transplants each activation's
	// statements into generated sub-functions (spec.md §3's lifecycle).
	Activations []*Activation
	Funcs       []*Function
}

// AddActivation attaches a behavioral logic block to this scope.
func (s *Scope) AddActivation(a *Activation) {
	s.Activations = append(s.Activations, a)
}

// NewScope allocates a child scope under parent (nil for the top scope).
func NewScope(name string, parent *Scope) *Scope {
	s := &Scope{Name: name, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// DotlessName returns the canonical hierarchy name with dots removed,
// matching Verilator's AstScope::nameDotless().
func (s *Scope) DotlessName() string {
	var parts []string
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Name != "" {
			parts = append([]string{cur.Name}, parts...)
		}
	}
	return strings.Join(parts, "")
}

// AddFunc installs a generated function as an active child of this scope.
func (s *Scope) AddFunc(f *Function) {
	f.Scope = s
	s.Funcs = append(s.Funcs, f)
}

// NewVar declares a new variable bound to this scope.
func (s *Scope) NewVar(name string, width int, flags VarFlags) *VScope {
	v := &VScope{Scope: s, Name: name, Type: VarType{Width: width}, Flags: flags}
	s.Vars = append(s.Vars, v)
	return v
}

// Foreach walks this scope and all descendants, depth first.
func (s *Scope) Foreach(visit func(*Scope)) {
	visit(s)
	for _, c := range s.Children {
		c.Foreach(visit)
	}
}
