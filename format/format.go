package format

import (
	"github.com/dhamidi/javacst/java/parser"
)

// Encoder renders a parse result for humans or tools. Implementations
// walk the arena by node id; they never mutate storage.
type Encoder interface {
	Encode(res *parser.Result) error
}
