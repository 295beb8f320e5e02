package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/javacst/java/parser"
)

func parseFixture(t *testing.T, src string) *parser.Result {
	t.Helper()
	res, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	t.Cleanup(res.Release)
	return res
}

func TestASTJSONEncoder(t *testing.T) {
	src := "class A { int x = 1; }"
	res := parseFixture(t, src)

	var buf bytes.Buffer
	if err := NewASTJSONEncoder(&buf).Encode(res); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var root astJSONNode
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if root.Kind != "CompilationUnit" {
		t.Errorf("root kind = %q, want CompilationUnit", root.Kind)
	}
	if len(root.Children) == 0 {
		t.Fatal("root has no children")
	}
	if root.Children[0].Kind != "ClassDecl" {
		t.Errorf("first child = %q, want ClassDecl", root.Children[0].Kind)
	}
	if root.Length > len(src) {
		t.Errorf("root length %d exceeds source length %d", root.Length, len(src))
	}
}

func TestASTTreeEncoder(t *testing.T) {
	src := "class A { int x = 1; }"
	res := parseFixture(t, src)

	var buf bytes.Buffer
	if err := NewASTTreeEncoder(&buf).WithText(src).Encode(res); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "CompilationUnit") {
		t.Errorf("first line = %q, want CompilationUnit", lines[0])
	}
	if !strings.Contains(out, "ClassDecl") {
		t.Error("output missing ClassDecl")
	}
	if !strings.Contains(out, "FieldDecl") {
		t.Error("output missing FieldDecl")
	}
	if !strings.Contains(out, `"x"`) {
		t.Error("output missing leaf source text")
	}
}
