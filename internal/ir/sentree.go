package ir

import "strings"

// EdgeKind is the edge type of a single sensitivity item (spec.md §3).
type EdgeKind uint8

const (
	// EdgePosedge fires on the rising edge of a 1-bit signal.
	EdgePosedge EdgeKind = iota
	// EdgeNegedge fires on the falling edge of a 1-bit signal.
	EdgeNegedge
	// EdgeBothedge fires on any change of a 1-bit signal.
	EdgeBothedge
	// EdgeChanged fires on any value change, of any width.
	EdgeChanged
	// EdgeHybrid is a change-term on a wider signal used within an
	// otherwise-clocked-style tree (introduced by cycle breaking).
	EdgeHybrid
	// EdgeEvent fires when an event handle is fired.
	EdgeEvent
	// EdgeTrue is the synthetic "sensitive to this boolean expression"
	// edge kind used for trigger-vector bits.
	EdgeTrue
	// EdgeIllegal is a malformed sensitivity item, dropped silently
	// (warned about by an earlier pass -- spec.md §7).
	EdgeIllegal
)

func (k EdgeKind) String() string {
	switch k {
	case EdgePosedge:
		return "posedge"
	case EdgeNegedge:
		return "negedge"
	case EdgeBothedge:
		return "bothedge"
	case EdgeChanged:
		return "changed"
	case EdgeHybrid:
		return "hybrid"
	case EdgeEvent:
		return "event"
	case EdgeTrue:
		return "true"
	default:
		return "illegal"
	}
}

// SenItem is one entry of a sensitivity tree: an edge kind plus the sensed
// expression.
type SenItem struct {
	Edge   EdgeKind
	Sensed Expr
}

// SenTreeKind classifies what activates a SenTree (spec.md §3).
type SenTreeKind uint8

const (
	SenStatic SenTreeKind = iota
	SenInitial
	SenFinal
	SenCombinational
	SenClocked
	SenHybrid
)

func (k SenTreeKind) String() string {
	switch k {
	case SenStatic:
		return "static"
	case SenInitial:
		return "initial"
	case SenFinal:
		return "final"
	case SenCombinational:
		return "combinational"
	case SenClocked:
		return "clocked"
	default:
		return "hybrid"
	}
}

// SenTree is an ordered set of SenItems together with its classification.
type SenTree struct {
	Kind  SenTreeKind
	Items []*SenItem
}

func (t *SenTree) HasStatic() bool        { return t.Kind == SenStatic }
func (t *SenTree) HasInitial() bool       { return t.Kind == SenInitial }
func (t *SenTree) HasFinal() bool         { return t.Kind == SenFinal }
func (t *SenTree) HasCombo() bool         { return t.Kind == SenCombinational }
func (t *SenTree) HasClocked() bool       { return t.Kind == SenClocked }
func (t *SenTree) HasHybrid() bool        { return t.Kind == SenHybrid }
func (t *SenTree) SingleSenItem() bool    { return len(t.Items) == 1 }

// NewTrueSenTree builds a synthetic single-SenItem tree sensitive to a
// boolean expression being true (used for trigger-vector bits, spec.md
// §4.4 step 5).
func NewTrueSenTree(cond Expr) *SenTree {
	return &SenTree{Kind: SenClocked, Items: []*SenItem{{Edge: EdgeTrue, Sensed: cond}}}
}

// String renders a verilog-like textual sensitivity list, used only for
// generated debug/dump messages (mirrors V3EmitV::verilogForTree).
func (t *SenTree) String() string {
	parts := make([]string, 0, len(t.Items))
	for _, it := range t.Items {
		sensed := "<nil>"
		if it.Sensed != nil {
			sensed = it.Sensed.String()
		}
		switch it.Edge {
		case EdgePosedge:
			parts = append(parts, "posedge "+sensed)
		case EdgeNegedge:
			parts = append(parts, "negedge "+sensed)
		default:
			parts = append(parts, sensed)
		}
	}
	return strings.Join(parts, " or ")
}

// Clone deep-copies a SenTree, including its items and sensed expressions.
func (t *SenTree) Clone() *SenTree {
	if t == nil {
		return nil
	}
	items := make([]*SenItem, len(t.Items))
	for i, it := range t.Items {
		var sensed Expr
		if it.Sensed != nil {
			sensed = it.Sensed.Clone()
		}
		items[i] = &SenItem{Edge: it.Edge, Sensed: sensed}
	}
	return &SenTree{Kind: t.Kind, Items: items}
}
