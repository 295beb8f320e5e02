package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/javacst/java/parser"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(res *parser.Result) error {
	root, err := nodeToJSON(res, res.Root)
	if err != nil {
		return err
	}
	text, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Start    int            `json:"start"`
	Length   int            `json:"length"`
	Children []*astJSONNode `json:"children,omitempty"`
}

func nodeToJSON(res *parser.Result, id parser.NodeID) (*astJSONNode, error) {
	node, err := res.Node(id)
	if err != nil {
		return nil, err
	}
	jn := &astJSONNode{
		Kind:   node.Kind.String(),
		Start:  node.Start,
		Length: node.Length,
	}
	for _, child := range node.Children {
		cn, err := nodeToJSON(res, child)
		if err != nil {
			return nil, err
		}
		jn.Children = append(jn.Children, cn)
	}
	return jn, nil
}
