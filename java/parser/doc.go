// Package parser is the core of a Java source parser: a single-pass
// maximal-munch lexer, an arena-backed index-overlay node store, a parsing
// context with explicit recursion and parent discipline, and a
// version-aware strategy registry that selects how each construct is
// parsed for a given Java language level (8 through 25).
//
// # Architecture
//
//	┌──────────┐    ┌─────────┐    ┌──────────────┐    ┌─────────────┐
//	│  Source  │───▶│  Lexer  │───▶│ ParseContext │───▶│ NodeStorage │
//	│ (string) │    │ (tokens)│    │  + registry  │    │   (arena)   │
//	└──────────┘    └─────────┘    └──────────────┘    └─────────────┘
//
// The lexer is total: every byte of the input lands in exactly one token,
// unknown bytes become Error tokens, and the stream ends in exactly one
// EOF. Whitespace and comments are emitted as trivia tokens and filtered
// out before dispatch so downstream passes can attach them.
//
// Nodes are fixed 16-byte records (start, length, kind, parent) in a
// contiguous arena, with child adjacency kept in parallel arrays. Node ids
// are dense ints; a parent is always allocated before its children, and
// the only in-place mutation is the end-offset fix-up after a construct's
// children have been parsed. Storage is released in bulk at the end of a
// session.
//
// Construct parsing is dispatched through ParseStrategy implementations
// registered per language level. A strategy advertises what it can parse
// via a cheap predicate over the current token, the target level and the
// grammatical phase; the registry returns the highest-priority match,
// falling back over earlier levels. Version-gated constructs (text
// blocks, records, pattern switch, flexible constructor bodies, module
// imports) are plain strategies registered at the level that introduced
// them.
//
// # Example
//
//	res, err := parser.Parse(src,
//		parser.WithFile("Main.java"),
//		parser.WithLanguageLevel(parser.Java21))
//	if err != nil {
//		return err
//	}
//	defer res.Release()
//	root, _ := res.Node(res.Root)
//	for _, child := range root.Children {
//		n, _ := res.Node(child)
//		fmt.Println(n.Kind, n.Start, n.Length)
//	}
//
// # Thread safety
//
// A parse session (context + storage) belongs to one goroutine. The
// registry and the token/node catalogs are read-only after init and safe
// for concurrent use; independent sessions may run in parallel.
package parser
