package parser

import "testing"

type stubStrategy struct {
	name     string
	priority int
	handles  bool
}

func (s *stubStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	return s.handles
}

func (s *stubStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	return NoNode, nil
}

func (s *stubStrategy) Priority() int       { return s.priority }
func (s *stubStrategy) Description() string { return s.name }

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewStrategyRegistry()
	low := &stubStrategy{name: "low", priority: 10, handles: true}
	high := &stubStrategy{name: "high", priority: 100, handles: true}
	mid := &stubStrategy{name: "mid", priority: 50, handles: true}
	r.Register(Java8, low)
	r.Register(Java8, high)
	r.Register(Java8, mid)

	ctx := newTestContext(t, "x")
	got := r.FindStrategy(Java8, PhaseTopLevel, ctx)
	if got != ParseStrategy(high) {
		t.Errorf("FindStrategy = %v, want high", got.Description())
	}

	list := r.Strategies(Java8)
	wantOrder := []string{"high", "mid", "low"}
	for i, s := range list {
		if s.Description() != wantOrder[i] {
			t.Errorf("position %d = %s, want %s", i, s.Description(), wantOrder[i])
		}
	}
}

func TestRegistryInsertionOrderTieBreak(t *testing.T) {
	r := NewStrategyRegistry()
	first := &stubStrategy{name: "first", priority: 50, handles: true}
	second := &stubStrategy{name: "second", priority: 50, handles: true}
	r.Register(Java8, first)
	r.Register(Java8, second)

	ctx := newTestContext(t, "x")
	if got := r.FindStrategy(Java8, PhaseTopLevel, ctx); got.Description() != "first" {
		t.Errorf("FindStrategy = %s, want first (insertion order)", got.Description())
	}
}

func TestRegistryLevelFallback(t *testing.T) {
	r := NewStrategyRegistry()
	old := &stubStrategy{name: "old", priority: 50, handles: true}
	r.Register(Java9, old)

	ctx := newTestContext(t, "x")
	if got := r.FindStrategy(Java21, PhaseTopLevel, ctx); got == nil || got.Description() != "old" {
		t.Error("strategy registered at Java9 not found from Java21")
	}
	if got := r.FindStrategy(Java8, PhaseTopLevel, ctx); got != nil {
		t.Errorf("strategy registered at Java9 visible from Java8: %s", got.Description())
	}
}

func TestRegistryNoMatch(t *testing.T) {
	r := NewStrategyRegistry()
	r.Register(Java8, &stubStrategy{name: "never", priority: 50, handles: false})

	ctx := newTestContext(t, "x")
	if got := r.FindStrategy(Java25, PhaseTopLevel, ctx); got != nil {
		t.Errorf("FindStrategy = %s, want nil", got.Description())
	}
}

// Dispatch determinism: same registry, level, and context yield the same
// strategy on every call.
func TestRegistryDeterminism(t *testing.T) {
	r := NewDefaultRegistry()
	ctx := newTestContext(t, "class Foo {}")
	first := r.FindStrategy(Java25, PhaseTopLevel, ctx)
	if first == nil {
		t.Fatal("no strategy for class declaration")
	}
	for i := 0; i < 10; i++ {
		if got := r.FindStrategy(Java25, PhaseTopLevel, ctx); got != first {
			t.Fatalf("call %d returned %v, want %v", i, got.Description(), first.Description())
		}
	}
}

// Scenario: at level 25 in the constructor-body phase an opening brace
// selects the flexible-constructor-body strategy; at level 21 it selects
// nothing.
func TestRegistryFlexibleConstructorBodySelection(t *testing.T) {
	r := NewDefaultRegistry()
	ctx := newTestContext(t, "{ }")

	s := r.FindStrategy(Java25, PhaseConstructorBody, ctx)
	if s == nil {
		t.Fatal("no strategy selected at Java 25")
	}
	if _, ok := s.(*flexibleConstructorBodyStrategy); !ok {
		t.Errorf("selected %T (%s), want flexibleConstructorBodyStrategy", s, s.Description())
	}

	if s := r.FindStrategy(Java21, PhaseConstructorBody, ctx); s != nil {
		t.Errorf("selected %s at Java 21, want none", s.Description())
	}
}

func TestRegistryPatternSwitchPhases(t *testing.T) {
	r := NewDefaultRegistry()
	ctx := newTestContext(t, "switch (x) {}")

	stmt := r.FindStrategy(Java21, PhaseMethodBody, ctx)
	if stmt == nil {
		t.Fatal("no statement strategy for switch at Java 21")
	}
	ps, ok := stmt.(*patternSwitchStrategy)
	if !ok || ps.kind != KindSwitchStmt {
		t.Errorf("method-body switch strategy = %v", stmt.Description())
	}

	expr := r.FindStrategy(Java21, PhaseExpression, ctx)
	pe, ok := expr.(*patternSwitchStrategy)
	if !ok || pe.kind != KindSwitchExpr {
		t.Errorf("expression switch strategy = %v", expr.Description())
	}

	if s := r.FindStrategy(Java17, PhaseMethodBody, ctx); s != nil {
		t.Errorf("switch strategy at Java 17 = %s, want none", s.Description())
	}
}

func TestRegistryTextBlockGating(t *testing.T) {
	r := NewDefaultRegistry()
	ctx := newTestContext(t, `"""hi"""`)

	if s := r.FindStrategy(Java13, PhaseExpression, ctx); s == nil {
		t.Error("text block strategy missing at Java 13")
	}
	if s := r.FindStrategy(Java11, PhaseExpression, ctx); s != nil {
		t.Errorf("text block strategy at Java 11 = %s, want none", s.Description())
	}
}

func TestRegistryModuleImportOutranksImport(t *testing.T) {
	r := NewDefaultRegistry()

	moduleImport := newTestContext(t, "import module java.base;")
	s := r.FindStrategy(Java25, PhaseTopLevel, moduleImport)
	if _, ok := s.(*moduleImportStrategy); !ok {
		t.Errorf("selected %T for module import, want moduleImportStrategy", s)
	}

	// At Java 21 the module form is not recognized.
	s = r.FindStrategy(Java21, PhaseTopLevel, moduleImport)
	if _, ok := s.(*importDeclStrategy); !ok {
		t.Errorf("selected %T at Java 21, want importDeclStrategy", s)
	}

	plain := newTestContext(t, "import java.util.List;")
	s = r.FindStrategy(Java25, PhaseTopLevel, plain)
	if _, ok := s.(*importDeclStrategy); !ok {
		t.Errorf("selected %T for plain import, want importDeclStrategy", s)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseTopLevel, "TopLevel"},
		{PhaseClassBody, "ClassBody"},
		{PhaseMethodBody, "MethodBody"},
		{PhaseConstructorBody, "ConstructorBody"},
		{PhaseExpression, "Expression"},
		{Phase(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
