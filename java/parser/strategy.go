package parser

// LanguageLevel selects the Java language version (8 through 25) a parse
// session targets. It gates which strategies are consulted and which
// contextual keywords take effect.
type LanguageLevel int

const (
	Java8  LanguageLevel = 8
	Java9  LanguageLevel = 9
	Java11 LanguageLevel = 11
	Java13 LanguageLevel = 13
	Java16 LanguageLevel = 16
	Java17 LanguageLevel = 17
	Java21 LanguageLevel = 21
	Java25 LanguageLevel = 25

	MinLevel = Java8
	MaxLevel = Java25
)

// Valid reports whether the level is inside the supported range.
func (l LanguageLevel) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Phase names the grammatical context the parser currently sits in. The
// same token can open very different constructs depending on the phase: a
// left brace starts a flexible constructor body only in PhaseConstructorBody.
type Phase int

const (
	PhaseTopLevel Phase = iota
	PhaseClassBody
	PhaseMethodBody
	PhaseConstructorBody
	PhaseExpression
)

var phaseNames = map[Phase]string{
	PhaseTopLevel:        "TopLevel",
	PhaseClassBody:       "ClassBody",
	PhaseMethodBody:      "MethodBody",
	PhaseConstructorBody: "ConstructorBody",
	PhaseExpression:      "Expression",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Priority tiers. Phase-aware strategies rank above generic ones; ties are
// broken by insertion order.
const (
	PriorityGeneric    = 50
	PriorityPhaseAware = 100
)

// ParseStrategy parses one kind of construct. CanHandle must be a cheap
// predicate over the current token (plus small look-ahead), the target
// language level and the phase; ParseConstruct consumes tokens and returns
// the allocated root node of the construct.
type ParseStrategy interface {
	CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool
	ParseConstruct(ctx *ParseContext) (NodeID, error)
	Priority() int
	Description() string
}

// StrategyRegistry holds per-level strategy lists ordered by descending
// priority. It is read-only after initialization and safe for concurrent
// lookups.
type StrategyRegistry struct {
	levels map[LanguageLevel][]ParseStrategy
}

func NewStrategyRegistry() *StrategyRegistry {
	return &StrategyRegistry{levels: make(map[LanguageLevel][]ParseStrategy)}
}

// Register adds a strategy at the level that introduces its construct. The
// list stays sorted by descending priority; equal priorities keep insertion
// order.
func (r *StrategyRegistry) Register(level LanguageLevel, s ParseStrategy) {
	list := r.levels[level]
	at := len(list)
	for i, existing := range list {
		if existing.Priority() < s.Priority() {
			at = i
			break
		}
	}
	list = append(list, nil)
	copy(list[at+1:], list[at:])
	list[at] = s
	r.levels[level] = list
}

// FindStrategy returns the highest-priority strategy at the target level
// whose CanHandle matches, falling back over earlier levels from highest to
// lowest. It returns nil when nothing matches; the caller then uses the
// default construct parser for the phase.
func (r *StrategyRegistry) FindStrategy(level LanguageLevel, phase Phase, ctx *ParseContext) ParseStrategy {
	for lvl := level; lvl >= MinLevel; lvl-- {
		for _, s := range r.levels[lvl] {
			if s.CanHandle(level, phase, ctx) {
				return s
			}
		}
	}
	return nil
}

// Strategies returns the registered strategies for one level in dispatch
// order, for diagnostics.
func (r *StrategyRegistry) Strategies(level LanguageLevel) []ParseStrategy {
	return r.levels[level]
}

// NewDefaultRegistry wires every construct strategy of this package at the
// level that introduced the construct.
func NewDefaultRegistry() *StrategyRegistry {
	r := NewStrategyRegistry()

	r.Register(Java8, &packageDeclStrategy{})
	r.Register(Java8, &importDeclStrategy{})
	r.Register(Java8, &typeDeclStrategy{})
	r.Register(Java9, &moduleDeclStrategy{})
	r.Register(Java13, &textBlockStrategy{})
	r.Register(Java16, &recordDeclStrategy{})
	r.Register(Java21, &patternSwitchStrategy{phase: PhaseMethodBody, kind: KindSwitchStmt})
	r.Register(Java21, &patternSwitchStrategy{phase: PhaseExpression, kind: KindSwitchExpr})
	r.Register(Java21, &unnamedClassStrategy{})
	r.Register(Java25, &moduleImportStrategy{})
	r.Register(Java25, &flexibleConstructorBodyStrategy{})

	return r
}
