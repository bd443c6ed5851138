// Package ir provides the intermediate representation the scheduler
// consumes and mutates: netlists, scopes, variables, sensitivity trees and
// the activations (blocks of behavioral logic) attached to them.
//
// Construction, cloning and generic tree walks are kept intentionally small:
// this package only implements the entities named in the scheduler's data
// model, not a general-purpose HDL AST.
package ir

// FuncID identifies a generated Function within a Netlist.
type FuncID uint32

// NoFuncID is the sentinel for "no function".
const NoFuncID FuncID = 0

// IsValid reports whether the ID refers to an allocated function.
func (id FuncID) IsValid() bool { return id != NoFuncID }
