package parser

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string, opts ...Option) *Result {
	t.Helper()
	res, err := Parse(src, opts...)
	if err != nil {
		t.Fatalf("Parse: %v\nsource:\n%s", err, src)
	}
	t.Cleanup(res.Release)
	return res
}

// collectKinds walks the whole tree and counts node kinds.
func collectKinds(t *testing.T, res *Result) map[NodeKind]int {
	t.Helper()
	kinds := make(map[NodeKind]int)
	for id := 0; id < res.Storage.Count(); id++ {
		node, err := res.Node(NodeID(id))
		if err != nil {
			t.Fatalf("GetNode(%d): %v", id, err)
		}
		kinds[node.Kind]++
	}
	return kinds
}

func wantKinds(t *testing.T, kinds map[NodeKind]int, want ...NodeKind) {
	t.Helper()
	for _, kind := range want {
		if kinds[kind] == 0 {
			t.Errorf("no %v node produced", kind)
		}
	}
}

func TestParseClassWithMembers(t *testing.T) {
	src := `package com.example;

import java.util.List;

public class Main {
    private int count = 0;
    private String name = "x";

    public static void main(String[] args) {
        int x = 1 + 2 * 3;
        if (x > 5) {
            System.out.println("big");
        } else {
            x++;
        }
        for (int i = 0; i < 10; i++) {
            x += i;
        }
        while (x > 0) { x--; }
    }
}
`
	res := mustParse(t, src)
	root, err := res.Node(res.Root)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if root.Kind != KindCompilationUnit {
		t.Errorf("root kind = %v, want CompilationUnit", root.Kind)
	}
	if root.Parent != NoNode {
		t.Errorf("root parent = %d, want NoNode", root.Parent)
	}

	kinds := collectKinds(t, res)
	wantKinds(t, kinds,
		KindPackageDecl, KindImportDecl, KindClassDecl, KindFieldDecl,
		KindMethodDecl, KindParameters, KindParameter, KindBlock,
		KindLocalVarDecl, KindIfStmt, KindForStmt, KindWhileStmt,
		KindBinaryExpr, KindCallExpr, KindFieldAccess, KindPostfixExpr,
		KindAssignExpr, KindLiteral, KindIdentifier, KindModifiers)
}

func TestParseInterfaceEnumAnnotation(t *testing.T) {
	src := `interface Greeter {
    String greet(String who);
    default int version() { return 1; }
}

enum Color {
    RED, GREEN(2), BLUE;

    private final int code = 0;
}

@interface Marker {
    String value() default "";
}
`
	res := mustParse(t, src)
	kinds := collectKinds(t, res)
	wantKinds(t, kinds,
		KindInterfaceDecl, KindEnumDecl, KindEnumConstant, KindAnnotationDecl,
		KindMethodDecl, KindFieldDecl, KindReturnStmt)
}

func TestParseModuleInfo(t *testing.T) {
	src := `module com.app {
    requires transitive java.sql;
    exports com.app.api to com.client, com.other;
    opens com.app.internal;
    uses com.app.spi.Service;
    provides com.app.spi.Service with com.app.impl.Impl;
}
`
	res := mustParse(t, src, WithLanguageLevel(Java9))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds,
		KindModuleDecl, KindRequiresDirective, KindExportsDirective,
		KindOpensDirective, KindUsesDirective, KindProvidesDirective,
		KindQualifiedName)
}

func TestParseRecordDecl(t *testing.T) {
	src := `public record Point(int x, int y) implements Shape {
    public double length() {
        return Math.sqrt(x * x + y * y);
    }
}
`
	res := mustParse(t, src, WithLanguageLevel(Java16))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds, KindRecordDecl, KindImplementsClause, KindMethodDecl)

	// At Java 8 "record" is just an identifier and the declaration cannot
	// parse.
	if _, err := Parse(src, WithLanguageLevel(Java8)); err == nil {
		t.Error("record declaration parsed at Java 8")
	}
}

func TestParseSealedHierarchy(t *testing.T) {
	src := `public sealed interface Shape permits Circle, Square {}

final class Circle implements Shape {}

non-sealed class Square implements Shape {}
`
	res := mustParse(t, src, WithLanguageLevel(Java17))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds, KindInterfaceDecl, KindPermitsClause, KindClassDecl)

	if _, err := Parse(src, WithLanguageLevel(Java8)); err == nil {
		t.Error("sealed interface parsed at Java 8")
	}
}

func TestParseGenericsWithShiftSplit(t *testing.T) {
	src := `class Box {
    Map<String, List<Integer>> index = new HashMap<>();
    Map<String, Map<String, List<Integer>>> deep;

    <T extends Comparable<T>> T max(List<? extends T> items) {
        return items.get(0);
    }
}
`
	res := mustParse(t, src)
	kinds := collectKinds(t, res)
	wantKinds(t, kinds,
		KindTypeArguments, KindTypeArgument, KindWildcard, KindTypeParameters,
		KindTypeParameter, KindNewExpr, KindFieldDecl)
	if kinds[KindTypeArguments] < 5 {
		t.Errorf("TypeArguments count = %d, want >= 5", kinds[KindTypeArguments])
	}
}

func TestParseStatements(t *testing.T) {
	src := `class Stmts {
    void run() throws Exception {
        do { tick(); } while (alive());
        switch (n) {
            case 1: step(); break;
            default: rest();
        }
        try (var in = open()) {
            use(in);
        } catch (IOException | RuntimeException e) {
            log(e);
        } finally {
            close();
        }
        synchronized (this) { n++; }
        assert n > 0 : "positive";
        outer: for (var item : items) {
            if (skip(item)) continue outer;
            throw new IllegalStateException();
        }
        int[] squares = new int[16];
        int[] small = {1, 2, 3};
        String s = cond ? "a" : "b";
        Runnable r = () -> done();
        var f = (Function<Integer, Integer>) x -> x + 1;
        names.forEach(n2 -> sink.accept(n2));
        ref = Stmts::new;
    }
}
`
	res := mustParse(t, src)
	kinds := collectKinds(t, res)
	wantKinds(t, kinds,
		KindDoStmt, KindSwitchStmt, KindSwitchCase, KindBreakStmt,
		KindTryStmt, KindResourceList, KindCatchClause, KindFinallyClause,
		KindSynchronizedStmt, KindAssertStmt, KindLabeledStmt,
		KindContinueStmt, KindThrowStmt, KindEnhancedForStmt,
		KindNewArrayExpr, KindArrayInit, KindTernaryExpr, KindLambdaExpr,
		KindCastExpr, KindMethodRef, KindThrowsList)
}

func TestParsePatternSwitch(t *testing.T) {
	src := `class Matcher {
    static String describe(Object obj) {
        return switch (obj) {
            case Integer i when i > 0 -> "positive";
            case Point(int x, int y) -> "point";
            case String s -> s;
            case null, default -> "other";
        };
    }
}
`
	res := mustParse(t, src, WithLanguageLevel(Java21))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds,
		KindSwitchExpr, KindSwitchCase, KindSwitchLabel, KindGuard,
		KindTypePattern, KindRecordPattern)

	// At Java 25 the record components become primitive patterns.
	res25 := mustParse(t, src, WithLanguageLevel(Java25))
	kinds25 := collectKinds(t, res25)
	wantKinds(t, kinds25, KindPrimitivePattern)
	if kinds[KindPrimitivePattern] != 0 {
		t.Error("primitive pattern produced at Java 21")
	}
}

func TestParseInstanceofPattern(t *testing.T) {
	src := `class C {
    boolean f(Object o) {
        return o instanceof String s && s.length() > 0;
    }
}
`
	res := mustParse(t, src, WithLanguageLevel(Java21))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds, KindInstanceofExpr, KindTypePattern, KindBinaryExpr)
}

func TestParseTextBlockGating(t *testing.T) {
	src := `class T {
    String s = """
        hello
        """;
}
`
	res := mustParse(t, src, WithLanguageLevel(Java13))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds, KindLiteral)

	if _, err := Parse(src, WithLanguageLevel(Java8)); err == nil {
		t.Error("text block parsed at Java 8")
	}
}

func TestParseUnnamedClass(t *testing.T) {
	src := `import module java.base;

void main() {
    println("Hello");
}
`
	res := mustParse(t, src, WithLanguageLevel(Java25))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds, KindModuleImportDecl, KindUnnamedClass, KindInstanceMainMethod)

	if _, err := Parse(src, WithLanguageLevel(Java17)); err == nil {
		t.Error("unnamed class parsed at Java 17")
	}
}

func TestParseFlexibleConstructorBody(t *testing.T) {
	src := `class Rect {
    int w;

    Rect(int w) {
        if (w < 0) throw new IllegalArgumentException();
        super();
        this.w = w;
    }
}
`
	res := mustParse(t, src, WithLanguageLevel(Java25))
	kinds := collectKinds(t, res)
	wantKinds(t, kinds,
		KindConstructorDecl, KindConstructorPrologue,
		KindExplicitConstructorInvocation)

	// At Java 21 the body is a plain block: super() is just a call.
	res21 := mustParse(t, src, WithLanguageLevel(Java21))
	kinds21 := collectKinds(t, res21)
	if kinds21[KindConstructorPrologue] != 0 {
		t.Error("constructor prologue produced at Java 21")
	}
	wantKinds(t, kinds21, KindConstructorDecl, KindBlock)
}

func TestParseErrorTokenBecomesErrorNode(t *testing.T) {
	res := mustParse(t, "# class A {}")
	kinds := collectKinds(t, res)
	wantKinds(t, kinds, KindError, KindClassDecl)
}

func TestParseErrorHasOffset(t *testing.T) {
	_, err := Parse("class { }")
	if err == nil {
		t.Fatal("missing class name parsed")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %T, want *ParseError", err)
	}
	if perr.Offset != 6 {
		t.Errorf("Offset = %d, want 6", perr.Offset)
	}
	if perr.Expected != TokenIdent {
		t.Errorf("Expected = %v, want Identifier", perr.Expected)
	}
}

func TestParseRecursionLimit(t *testing.T) {
	depth := DepthLimit + 100
	src := "class A { int x = " + strings.Repeat("(", depth) + "1" +
		strings.Repeat(")", depth) + "; }"

	_, err := Parse(src, WithNodeCapacity(8192))
	if !errors.Is(err, ErrRecursionLimit) {
		t.Fatalf("err = %v, want ErrRecursionLimit", err)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatal("recursion error is not a *ParseError")
	}
}

func TestParseCapacityExhausted(t *testing.T) {
	src := `class A {
    int a = 1;
    int b = 2;
    int c = 3;
}
`
	_, err := Parse(src, WithNodeCapacity(4))
	if !errors.Is(err, ErrStorageFull) {
		t.Fatalf("err = %v, want ErrStorageFull", err)
	}
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatal("err is not a *StorageError")
	}
	if serr.Capacity != 4 {
		t.Errorf("Capacity = %d, want 4", serr.Capacity)
	}
}

func TestParseInvalidLevel(t *testing.T) {
	if _, err := Parse("class A {}", WithLanguageLevel(7)); err == nil {
		t.Error("level 7 accepted")
	}
	if _, err := Parse("class A {}", WithLanguageLevel(26)); err == nil {
		t.Error("level 26 accepted")
	}
}

func TestParseCollectsComments(t *testing.T) {
	src := "/** doc */ class A {} // tail\n"
	res := mustParse(t, src, WithComments())
	if len(res.Comments) != 2 {
		t.Fatalf("comment count = %d, want 2", len(res.Comments))
	}
	if res.Comments[0].Kind != TokenJavadocComment {
		t.Errorf("first comment = %v, want JavadocComment", res.Comments[0].Kind)
	}
	if res.Comments[1].Kind != TokenLineComment {
		t.Errorf("second comment = %v, want LineComment", res.Comments[1].Kind)
	}

	// Without the option comments are dropped.
	res2 := mustParse(t, src)
	if len(res2.Comments) != 0 {
		t.Errorf("comments collected without WithComments: %d", len(res2.Comments))
	}
}

func TestParseResultTokens(t *testing.T) {
	res := mustParse(t, "class A { }")
	if len(res.Tokens) == 0 {
		t.Fatal("no tokens in result")
	}
	for _, tok := range res.Tokens {
		if tok.Kind.IsTrivia() {
			t.Errorf("trivia token %v in result token stream", tok.Kind)
		}
	}
	if res.Tokens[len(res.Tokens)-1].Kind != TokenEOF {
		t.Error("token stream does not end in EOF")
	}
}

var invariantSources = []string{
	"class A {}",
	"class A { void f() { g(1, 2); } }",
	"record R(int a, String b) {}",
	"enum E { X, Y }",
	`class B { int[] xs = {1, 2}; String s = "v"; }`,
	"interface I { default int f() { return cond ? 1 : 2; } }",
}

// Structural invariants: ids are dense, parents precede children, child
// lists are ordered, spans stay inside the source.
func TestParseTreeInvariants(t *testing.T) {
	for _, src := range invariantSources {
		res := mustParse(t, src, WithNodeCapacity(4096))
		count := res.Storage.Count()
		if count == 0 {
			t.Fatalf("source %q: empty tree", src)
		}

		for id := 0; id < count; id++ {
			node, err := res.Node(NodeID(id))
			if err != nil {
				t.Fatalf("source %q: GetNode(%d): %v", src, id, err)
			}
			if node.Parent != NoNode && node.Parent >= NodeID(id) {
				t.Errorf("source %q: node %d has parent %d (not allocated before)", src, id, node.Parent)
			}
			if node.Start+node.Length > len(src) {
				t.Errorf("source %q: node %d spans past source end", src, id)
			}
			if node.Length < 0 {
				t.Errorf("source %q: node %d has negative length", src, id)
			}
			if node.Kind.String() == "Unknown" {
				t.Errorf("source %q: node %d has unknown kind", src, id)
			}
			prev := NodeID(-1)
			for _, child := range node.Children {
				if child <= prev {
					t.Errorf("source %q: node %d children out of order", src, id)
				}
				prev = child
				cn, err := res.Node(child)
				if err != nil {
					t.Fatalf("source %q: child lookup: %v", src, err)
				}
				if cn.Parent != NodeID(id) {
					t.Errorf("source %q: child %d of %d has parent %d", src, child, id, cn.Parent)
				}
			}
		}
	}
}

func TestParseMetricsCounters(t *testing.T) {
	EnableMetrics()
	before := SnapshotMetrics()
	mustParse(t, "class A { int x = 1; }")
	after := SnapshotMetrics()

	if after.Sessions <= before.Sessions {
		t.Error("session counter did not advance")
	}
	if after.NodesAllocated <= before.NodesAllocated {
		t.Error("node counter did not advance")
	}
	if after.Tokens <= before.Tokens {
		t.Error("token counter did not advance")
	}
}
