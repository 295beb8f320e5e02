package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/javacst/java/parser"
)

// ASTTreeEncoder prints the tree as indented lines, one node per line,
// optionally with the source text each leaf covers.
type ASTTreeEncoder struct {
	w        io.Writer
	withText bool
	source   string
}

func NewASTTreeEncoder(w io.Writer) *ASTTreeEncoder {
	return &ASTTreeEncoder{w: w}
}

// WithText makes leaves print the source slice they cover.
func (e *ASTTreeEncoder) WithText(source string) *ASTTreeEncoder {
	e.withText = true
	e.source = source
	return e
}

func (e *ASTTreeEncoder) Encode(res *parser.Result) error {
	return e.encodeNode(res, res.Root, 0)
}

func (e *ASTTreeEncoder) encodeNode(res *parser.Result, id parser.NodeID, indent int) error {
	node, err := res.Node(id)
	if err != nil {
		return err
	}
	line := strings.Repeat("  ", indent) + node.Kind.String()
	if e.withText && len(node.Children) == 0 && node.End() <= len(e.source) {
		text := e.source[node.Start:node.End()]
		if text != "" {
			line += fmt.Sprintf(" %q", text)
		}
	}
	if _, err := fmt.Fprintln(e.w, line); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := e.encodeNode(res, child, indent+1); err != nil {
			return err
		}
	}
	return nil
}
