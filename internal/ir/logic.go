package ir

// LogicByScope buckets a set of Activations by the scope that owns them,
// preserving encounter order within each scope. This is the shape gathered
// once per SenTree-kind bucket during classification (spec.md §4.1) and
// consumed by every createXxx pass that follows.
type LogicByScope struct {
	order  []*Scope
	byScope map[*Scope][]*Activation
}

// NewLogicByScope returns an empty LogicByScope.
func NewLogicByScope() *LogicByScope {
	return &LogicByScope{byScope: make(map[*Scope][]*Activation)}
}

// Add appends an activation under its scope, recording first-seen scope
// order.
func (l *LogicByScope) Add(s *Scope, a *Activation) {
	if _, ok := l.byScope[s]; !ok {
		l.order = append(l.order, s)
	}
	l.byScope[s] = append(l.byScope[s], a)
}

// Scopes returns the scopes touched, in first-seen order.
func (l *LogicByScope) Scopes() []*Scope { return l.order }

// Activations returns the activations recorded under scope s.
func (l *LogicByScope) Activations(s *Scope) []*Activation { return l.byScope[s] }

// Empty reports whether no activations were ever added.
func (l *LogicByScope) Empty() bool { return len(l.order) == 0 }

// Foreach visits every (scope, activation) pair in scope order.
func (l *LogicByScope) Foreach(visit func(*Scope, *Activation)) {
	for _, s := range l.order {
		for _, a := range l.byScope[s] {
			visit(s, a)
		}
	}
}

// LogicClasses is the partition of all logic in a netlist by SenTree kind,
// the direct result of gatherLogicClasses (spec.md §4.1).
type LogicClasses struct {
	Static   *LogicByScope
	Initial  *LogicByScope
	Final    *LogicByScope
	Comb     *LogicByScope
	Clocked  *LogicByScope
	Hybrid   *LogicByScope
}

// NewLogicClasses allocates the six empty buckets.
func NewLogicClasses() *LogicClasses {
	return &LogicClasses{
		Static:  NewLogicByScope(),
		Initial: NewLogicByScope(),
		Final:   NewLogicByScope(),
		Comb:    NewLogicByScope(),
		Clocked: NewLogicByScope(),
		Hybrid:  NewLogicByScope(),
	}
}

// LogicRegion names one of the three ordered evaluation regions clocked,
// combinational and hybrid logic is partitioned into (spec.md §4.5).
type LogicRegion uint8

const (
	RegionPre LogicRegion = iota
	RegionAct
	RegionNBA
)

func (r LogicRegion) String() string {
	switch r {
	case RegionPre:
		return "pre"
	case RegionAct:
		return "act"
	default:
		return "nba"
	}
}

// LogicRegions is the output of Partition: clocked/comb/hybrid logic split into
// the pre/act/nba regions, each still scope-bucketed.
type LogicRegions struct {
	Pre *LogicByScope
	Act *LogicByScope
	NBA *LogicByScope
}

// NewLogicRegions allocates the three empty region buckets.
func NewLogicRegions() *LogicRegions {
	return &LogicRegions{Pre: NewLogicByScope(), Act: NewLogicByScope(), NBA: NewLogicByScope()}
}

func (r *LogicRegions) ByRegion(region LogicRegion) *LogicByScope {
	switch region {
	case RegionPre:
		return r.Pre
	case RegionAct:
		return r.Act
	default:
		return r.NBA
	}
}

// LogicReplicas records, for every variable the Replicate collaborator
// decided to duplicate across regions so each region can evaluate without
// cross-region false dependencies (spec.md §4.5's replication step), the
// replica VScope created in each region it appears in.
type LogicReplicas struct {
	// ByOriginal maps the original variable to its per-region replicas.
	// A missing entry for a region means that region uses the original.
	ByOriginal map[*VScope]map[LogicRegion]*VScope
}

// NewLogicReplicas allocates an empty replica table.
func NewLogicReplicas() *LogicReplicas {
	return &LogicReplicas{ByOriginal: make(map[*VScope]map[LogicRegion]*VScope)}
}

// Replica returns the variable a read/write of orig should use within
// region, falling back to orig itself when no replica was created there.
func (r *LogicReplicas) Replica(orig *VScope, region LogicRegion) *VScope {
	if per, ok := r.ByOriginal[orig]; ok {
		if v, ok := per[region]; ok {
			return v
		}
	}
	return orig
}

// AddReplica records that region now has its own copy of orig.
func (r *LogicReplicas) AddReplica(orig *VScope, region LogicRegion, replica *VScope) {
	per, ok := r.ByOriginal[orig]
	if !ok {
		per = make(map[LogicRegion]*VScope)
		r.ByOriginal[orig] = per
	}
	per[region] = replica
}
