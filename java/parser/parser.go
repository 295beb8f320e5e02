package parser

import "time"

// DefaultNodeCapacity is the arena size used when no capacity option is
// given.
const DefaultNodeCapacity = 1024

type Option func(*Parser)

// WithFile sets the file path reported in Result.File.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithLanguageLevel selects the Java version (8..25) the session parses
// for.
func WithLanguageLevel(level LanguageLevel) Option {
	return func(p *Parser) {
		p.level = level
	}
}

// WithNodeCapacity bounds the number of nodes one session may allocate.
func WithNodeCapacity(capacity int) Option {
	return func(p *Parser) {
		p.capacity = capacity
	}
}

// WithComments collects comment tokens into Result.Comments so downstream
// passes can attach them.
func WithComments() Option {
	return func(p *Parser) {
		p.includeComments = true
	}
}

// WithRegistry replaces the default strategy registry.
func WithRegistry(r *StrategyRegistry) Option {
	return func(p *Parser) {
		p.registry = r
	}
}

// Parser is the top-level recursive-descent driver. It is thin by design:
// it tokenizes, seeds the context, and repeatedly asks the registry for
// the next construct strategy.
type Parser struct {
	file            string
	level           LanguageLevel
	capacity        int
	includeComments bool
	registry        *StrategyRegistry
}

func New(opts ...Option) *Parser {
	p := &Parser{
		level:    MaxLevel,
		capacity: DefaultNodeCapacity,
		registry: defaultRegistry,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultRegistry = NewDefaultRegistry()

// Result is what a parse session hands downstream: the storage with the
// tree, the root id, and the token stream. The caller owns the storage and
// must Release it (or use Result.Release).
type Result struct {
	File     string
	Root     NodeID
	Storage  *NodeStorage
	Tokens   []Token
	Comments []Token
}

// Release frees the node storage backing this result.
func (r *Result) Release() {
	r.Storage.Release()
}

// Node is a convenience lookup on the result's storage.
func (r *Result) Node(id NodeID) (Node, error) {
	return r.Storage.GetNode(id)
}

// Parse is a convenience wrapper around New(opts...).Parse(src).
func Parse(src string, opts ...Option) (*Result, error) {
	return New(opts...).Parse(src)
}

// rawTokenPool recycles the scratch slice that holds the unfiltered token
// stream (including trivia) between sessions. Returns over the pool bound
// are dropped.
var rawTokenPool = NewPool(8,
	func() []Token { return make([]Token, 0, 256) },
	func(buf []Token) []Token { return buf[:0] },
)

// Parse tokenizes src, parses one compilation unit and returns the result.
// On error the storage is released before returning.
func (p *Parser) Parse(src string) (*Result, error) {
	if !p.level.Valid() {
		return nil, newParseError(ErrUnexpectedToken, -1,
			"unsupported language level %d", p.level)
	}

	var started time.Time
	if metricsEnabled {
		started = time.Now()
		metricSessions.Add(1)
	}

	raw := rawTokenPool.Get()
	lexer := NewLexer([]byte(src))
	for {
		tok := lexer.NextToken()
		raw = append(raw, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}

	tokens := make([]Token, 0, len(raw))
	var comments []Token
	for _, tok := range raw {
		if tok.Kind.IsTrivia() {
			if p.includeComments && tok.Kind != TokenWhitespace {
				comments = append(comments, tok)
			}
			continue
		}
		tokens = append(tokens, tok)
	}
	if metricsEnabled {
		metricTokens.Add(int64(len(raw)))
	}
	rawTokenPool.Put(raw)

	storage, err := NewNodeStorage(p.capacity)
	if err != nil {
		return nil, err
	}

	ctx := NewParseContext(tokens, storage, src)
	ctx.level = p.level
	ctx.registry = p.registry
	ctx.SetStatementParser(dispatchStatement)

	root, err := parseCompilationUnit(ctx)
	if err != nil {
		storage.Release()
		return nil, err
	}

	if metricsEnabled {
		metricParseNanos.Add(time.Since(started).Nanoseconds())
	}
	return &Result{
		File:     p.file,
		Root:     root,
		Storage:  storage,
		Tokens:   tokens,
		Comments: comments,
	}, nil
}

func parseCompilationUnit(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindCompilationUnit)
	if err != nil {
		return NoNode, err
	}
	for !ctx.CurrentIs(TokenEOF) {
		if ctx.CurrentIs(TokenSemicolon) {
			ctx.Advance()
			continue
		}
		if ctx.CurrentIs(TokenError) {
			if _, err := ctx.Leaf(KindError); err != nil {
				return NoNode, err
			}
			continue
		}
		if s := ctx.Registry().FindStrategy(ctx.Level(), PhaseTopLevel, ctx); s != nil {
			if _, err := s.ParseConstruct(ctx); err != nil {
				return NoNode, err
			}
			continue
		}
		// Default top-level construct: a type declaration.
		if _, err := parseTypeDecl(ctx); err != nil {
			return NoNode, err
		}
	}
	return id, ctx.End(id)
}
