package parser

// Statement parsing: the default statement grammar used by the driver's
// statement delegate, plus the phase- and version-gated statement
// strategies (flexible constructor bodies, pattern switch).

// dispatchStatement is installed as the context's statement delegate. It
// consults the registry for the method-body phase first and falls back to
// the default statement grammar.
func dispatchStatement(ctx *ParseContext) (NodeID, error) {
	if r := ctx.Registry(); r != nil {
		if s := r.FindStrategy(ctx.Level(), PhaseMethodBody, ctx); s != nil {
			return s.ParseConstruct(ctx)
		}
	}
	return parseBasicStatement(ctx)
}

func parseBlock(ctx *ParseContext) (NodeID, error) {
	if err := ctx.EnterRecursion(); err != nil {
		return NoNode, err
	}
	defer ctx.ExitRecursion()

	id, err := ctx.Begin(KindBlock)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenLBrace); err != nil {
		return NoNode, err
	}
	for !ctx.CurrentIs(TokenRBrace) && !ctx.CurrentIs(TokenEOF) {
		if _, err := ctx.ParseStatement(); err != nil {
			return NoNode, err
		}
	}
	if _, err := ctx.Expect(TokenRBrace); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func parseBasicStatement(ctx *ParseContext) (NodeID, error) {
	if err := ctx.EnterRecursion(); err != nil {
		return NoNode, err
	}
	defer ctx.ExitRecursion()

	switch ctx.Current().Kind {
	case TokenLBrace:
		return parseBlock(ctx)

	case TokenSemicolon:
		return ctx.Leaf(KindEmptyStmt)

	case TokenError:
		// A lexical error surfaces as an Error node; downstream decides
		// whether it is fatal.
		return ctx.Leaf(KindError)

	case TokenIf:
		id, err := ctx.Begin(KindIfStmt)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if err := parseParenExpression(ctx); err != nil {
			return NoNode, err
		}
		if _, err := ctx.ParseStatement(); err != nil {
			return NoNode, err
		}
		if ctx.CurrentIs(TokenElse) {
			ctx.Advance()
			if _, err := ctx.ParseStatement(); err != nil {
				return NoNode, err
			}
		}
		return id, ctx.End(id)

	case TokenWhile:
		id, err := ctx.Begin(KindWhileStmt)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if err := parseParenExpression(ctx); err != nil {
			return NoNode, err
		}
		if _, err := ctx.ParseStatement(); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)

	case TokenDo:
		id, err := ctx.Begin(KindDoStmt)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if _, err := ctx.ParseStatement(); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenWhile); err != nil {
			return NoNode, err
		}
		if err := parseParenExpression(ctx); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)

	case TokenFor:
		return parseForStatement(ctx)

	case TokenReturn:
		id, err := ctx.Begin(KindReturnStmt)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if !ctx.CurrentIs(TokenSemicolon) {
			if _, err := parseExpression(ctx); err != nil {
				return NoNode, err
			}
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)

	case TokenBreak, TokenContinue:
		kind := KindBreakStmt
		if ctx.CurrentIs(TokenContinue) {
			kind = KindContinueStmt
		}
		id, err := ctx.Begin(kind)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if ctx.IsIdentifierLike() {
			if _, err := ctx.Leaf(KindIdentifier); err != nil {
				return NoNode, err
			}
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)

	case TokenThrow:
		id, err := ctx.Begin(KindThrowStmt)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if _, err := parseExpression(ctx); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)

	case TokenYield:
		if yieldStatementAhead(ctx) {
			id, err := ctx.Begin(KindYieldStmt)
			if err != nil {
				return NoNode, err
			}
			ctx.Advance()
			if _, err := parseExpression(ctx); err != nil {
				return NoNode, err
			}
			if _, err := ctx.Expect(TokenSemicolon); err != nil {
				return NoNode, err
			}
			return id, ctx.End(id)
		}

	case TokenTry:
		return parseTryStatement(ctx)

	case TokenSynchronized:
		if ctx.Peek(1).Kind == TokenLParen {
			id, err := ctx.Begin(KindSynchronizedStmt)
			if err != nil {
				return NoNode, err
			}
			ctx.Advance()
			if err := parseParenExpression(ctx); err != nil {
				return NoNode, err
			}
			if _, err := parseBlock(ctx); err != nil {
				return NoNode, err
			}
			return id, ctx.End(id)
		}

	case TokenAssert:
		id, err := ctx.Begin(KindAssertStmt)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if _, err := parseExpression(ctx); err != nil {
			return NoNode, err
		}
		if ctx.CurrentIs(TokenColon) {
			ctx.Advance()
			if _, err := parseExpression(ctx); err != nil {
				return NoNode, err
			}
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)

	case TokenSwitch:
		return parseSwitch(ctx, KindSwitchStmt)
	}

	// Labeled statement: "name: stmt".
	if ctx.IsIdentifierLike() && ctx.Peek(1).Kind == TokenColon {
		id, err := ctx.Begin(KindLabeledStmt)
		if err != nil {
			return NoNode, err
		}
		if _, err := ctx.Leaf(KindIdentifier); err != nil {
			return NoNode, err
		}
		ctx.Advance() // :
		if _, err := ctx.ParseStatement(); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)
	}

	if localVarDeclAhead(ctx) {
		return parseLocalVarDecl(ctx, true)
	}

	id, err := ctx.Begin(KindExprStmt)
	if err != nil {
		return NoNode, err
	}
	if _, err := parseExpression(ctx); err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenSemicolon); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func parseParenExpression(ctx *ParseContext) error {
	if _, err := ctx.Expect(TokenLParen); err != nil {
		return err
	}
	if _, err := parseExpression(ctx); err != nil {
		return err
	}
	_, err := ctx.Expect(TokenRParen)
	return err
}

// yieldStatementAhead distinguishes the yield statement from uses of
// "yield" as a plain identifier ("yield = 1;", "yield();").
func yieldStatementAhead(ctx *ParseContext) bool {
	switch ctx.Peek(1).Kind {
	case TokenAssign, TokenLParen, TokenDot, TokenSemicolon, TokenColon, TokenDoubleColon,
		TokenIncrement, TokenDecrement:
		return false
	}
	return true
}

func localVarDeclAhead(ctx *ParseContext) bool {
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	skipAnnotationsAndModifiers(ctx)
	if !skipType(ctx) {
		return false
	}
	return ctx.IsIdentifierLike()
}

// parseLocalVarDecl parses "mods type name [= init] (, name [= init])*",
// consuming the trailing semicolon when asked to.
func parseLocalVarDecl(ctx *ParseContext, consumeSemi bool) (NodeID, error) {
	id, err := ctx.Begin(KindLocalVarDecl)
	if err != nil {
		return NoNode, err
	}
	if _, err := parseModifiers(ctx); err != nil {
		return NoNode, err
	}
	if _, err := parseType(ctx); err != nil {
		return NoNode, err
	}
	for {
		if err := expectIdentifierLeaf(ctx); err != nil {
			return NoNode, err
		}
		for ctx.CurrentIs(TokenLBracket) && ctx.Peek(1).Kind == TokenRBracket {
			if err := parseArrayDim(ctx); err != nil {
				return NoNode, err
			}
		}
		if ctx.CurrentIs(TokenAssign) {
			ctx.Advance()
			if ctx.CurrentIs(TokenLBrace) {
				if _, err := parseArrayInit(ctx); err != nil {
					return NoNode, err
				}
			} else {
				if _, err := parseExpression(ctx); err != nil {
					return NoNode, err
				}
			}
		}
		if !ctx.CurrentIs(TokenComma) {
			break
		}
		ctx.Advance()
	}
	if consumeSemi {
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
	}
	return id, ctx.End(id)
}

func parseForStatement(ctx *ParseContext) (NodeID, error) {
	if enhancedForAhead(ctx) {
		id, err := ctx.Begin(KindEnhancedForStmt)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance() // for
		if _, err := ctx.Expect(TokenLParen); err != nil {
			return NoNode, err
		}
		if _, err := parseModifiers(ctx); err != nil {
			return NoNode, err
		}
		if _, err := parseType(ctx); err != nil {
			return NoNode, err
		}
		if err := expectIdentifierLeaf(ctx); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenColon); err != nil {
			return NoNode, err
		}
		if _, err := parseExpression(ctx); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenRParen); err != nil {
			return NoNode, err
		}
		if _, err := ctx.ParseStatement(); err != nil {
			return NoNode, err
		}
		return id, ctx.End(id)
	}

	id, err := ctx.Begin(KindForStmt)
	if err != nil {
		return NoNode, err
	}
	ctx.Advance() // for
	if _, err := ctx.Expect(TokenLParen); err != nil {
		return NoNode, err
	}

	iid, err := ctx.Begin(KindForInit)
	if err != nil {
		return NoNode, err
	}
	if ctx.CurrentIs(TokenSemicolon) {
		ctx.Advance()
	} else if localVarDeclAhead(ctx) {
		if _, err := parseLocalVarDecl(ctx, true); err != nil {
			return NoNode, err
		}
	} else {
		for {
			if _, err := parseExpression(ctx); err != nil {
				return NoNode, err
			}
			if !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
	}
	if err := ctx.End(iid); err != nil {
		return NoNode, err
	}

	if !ctx.CurrentIs(TokenSemicolon) {
		if _, err := parseExpression(ctx); err != nil {
			return NoNode, err
		}
	}
	if _, err := ctx.Expect(TokenSemicolon); err != nil {
		return NoNode, err
	}

	uid, err := ctx.Begin(KindForUpdate)
	if err != nil {
		return NoNode, err
	}
	for !ctx.CurrentIs(TokenRParen) && !ctx.CurrentIs(TokenEOF) {
		if _, err := parseExpression(ctx); err != nil {
			return NoNode, err
		}
		if ctx.CurrentIs(TokenComma) {
			ctx.Advance()
		}
	}
	if err := ctx.End(uid); err != nil {
		return NoNode, err
	}

	if _, err := ctx.Expect(TokenRParen); err != nil {
		return NoNode, err
	}
	if _, err := ctx.ParseStatement(); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

// enhancedForAhead scans the for header for a depth-zero colon before the
// first semicolon.
func enhancedForAhead(ctx *ParseContext) bool {
	depth := 0
	i := 1 // past "for"
	if ctx.Peek(i).Kind != TokenLParen {
		return false
	}
	for {
		t := ctx.Peek(i)
		switch t.Kind {
		case TokenEOF, TokenSemicolon, TokenLBrace:
			return false
		case TokenLParen, TokenLBracket:
			depth++
		case TokenRParen, TokenRBracket:
			depth--
			if depth == 0 {
				return false
			}
		case TokenColon:
			if depth == 1 {
				return true
			}
		case TokenQuestion:
			// A ternary would only appear past the first semicolon anyway.
			return false
		}
		i++
	}
}

func parseTryStatement(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindTryStmt)
	if err != nil {
		return NoNode, err
	}
	ctx.Advance() // try

	if ctx.CurrentIs(TokenLParen) {
		rid, err := ctx.Begin(KindResourceList)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		for !ctx.CurrentIs(TokenRParen) && !ctx.CurrentIs(TokenEOF) {
			if localVarDeclAhead(ctx) {
				if _, err := parseLocalVarDecl(ctx, false); err != nil {
					return NoNode, err
				}
			} else {
				if _, err := parseExpression(ctx); err != nil {
					return NoNode, err
				}
			}
			if ctx.CurrentIs(TokenSemicolon) {
				ctx.Advance()
			}
		}
		if _, err := ctx.Expect(TokenRParen); err != nil {
			return NoNode, err
		}
		if err := ctx.End(rid); err != nil {
			return NoNode, err
		}
	}

	if _, err := parseBlock(ctx); err != nil {
		return NoNode, err
	}

	for ctx.CurrentIs(TokenCatch) {
		cid, err := ctx.Begin(KindCatchClause)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if _, err := ctx.Expect(TokenLParen); err != nil {
			return NoNode, err
		}
		pid, err := ctx.Begin(KindParameter)
		if err != nil {
			return NoNode, err
		}
		if _, err := parseModifiers(ctx); err != nil {
			return NoNode, err
		}
		for {
			if _, err := parseType(ctx); err != nil {
				return NoNode, err
			}
			if !ctx.CurrentIs(TokenBitOr) {
				break
			}
			ctx.Advance()
		}
		if err := expectIdentifierLeaf(ctx); err != nil {
			return NoNode, err
		}
		if err := ctx.End(pid); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenRParen); err != nil {
			return NoNode, err
		}
		if _, err := parseBlock(ctx); err != nil {
			return NoNode, err
		}
		if err := ctx.End(cid); err != nil {
			return NoNode, err
		}
	}

	if ctx.CurrentIs(TokenFinally) {
		fid, err := ctx.Begin(KindFinallyClause)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		if _, err := parseBlock(ctx); err != nil {
			return NoNode, err
		}
		if err := ctx.End(fid); err != nil {
			return NoNode, err
		}
	}
	return id, ctx.End(id)
}

// Switch statements and expressions
// ---------------------------------

// parseSwitch parses both statement and expression switches, including
// arrow cases. Pattern labels are only recognized at Java 21 and above.
func parseSwitch(ctx *ParseContext, kind NodeKind) (NodeID, error) {
	id, err := ctx.Begin(kind)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenSwitch); err != nil {
		return NoNode, err
	}
	if err := parseParenExpression(ctx); err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenLBrace); err != nil {
		return NoNode, err
	}
	for ctx.CurrentIs(TokenCase) || ctx.CurrentIs(TokenDefault) {
		if err := parseSwitchCase(ctx); err != nil {
			return NoNode, err
		}
	}
	if _, err := ctx.Expect(TokenRBrace); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func parseSwitchCase(ctx *ParseContext) error {
	id, err := ctx.Begin(KindSwitchCase)
	if err != nil {
		return err
	}

	lid, err := ctx.Begin(KindSwitchLabel)
	if err != nil {
		return err
	}
	if ctx.CurrentIs(TokenDefault) {
		ctx.Advance()
	} else {
		ctx.Advance() // case
		for {
			if err := parseCaseLabel(ctx); err != nil {
				return err
			}
			if !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
		if ctx.Level() >= Java21 && ctx.CurrentIs(TokenWhen) {
			gid, err := ctx.Begin(KindGuard)
			if err != nil {
				return err
			}
			ctx.Advance()
			// The guard ends at the case arrow or colon; an unbounded
			// parse would read the arrow as a lambda.
			if _, err := parseExprBounded(ctx, caseLabelLimit(ctx)); err != nil {
				return err
			}
			if err := ctx.End(gid); err != nil {
				return err
			}
		}
	}
	if err := ctx.End(lid); err != nil {
		return err
	}

	if ctx.CurrentIs(TokenArrow) {
		ctx.Advance()
		if _, err := ctx.ParseStatement(); err != nil {
			return err
		}
		return ctx.End(id)
	}

	if _, err := ctx.Expect(TokenColon); err != nil {
		return err
	}
	for !ctx.CurrentIs(TokenCase) && !ctx.CurrentIs(TokenDefault) &&
		!ctx.CurrentIs(TokenRBrace) && !ctx.CurrentIs(TokenEOF) {
		if _, err := ctx.ParseStatement(); err != nil {
			return err
		}
	}
	return ctx.End(id)
}

func parseCaseLabel(ctx *ParseContext) error {
	if ctx.CurrentIs(TokenNullLiteral) {
		_, err := ctx.Leaf(KindLiteral)
		return err
	}
	if ctx.CurrentIs(TokenDefault) {
		ctx.Advance()
		return nil
	}
	if ctx.Level() >= Java21 {
		if shape := patternAhead(ctx); shape != patternNone {
			return parsePattern(ctx)
		}
	}
	_, err := parseExprBounded(ctx, caseLabelLimit(ctx))
	return err
}

// caseLabelLimit bounds a case label expression at the depth-zero colon or
// arrow that ends it, so constant labels like "A:" parse cleanly.
func caseLabelLimit(ctx *ParseContext) int {
	depth := 0
	i := 0
	for {
		t := ctx.Peek(i)
		switch t.Kind {
		case TokenEOF:
			return i
		case TokenLParen, TokenLBracket, TokenLBrace:
			depth++
		case TokenRParen, TokenRBracket, TokenRBrace:
			if depth == 0 {
				return i
			}
			depth--
		case TokenColon, TokenArrow, TokenComma, TokenSemicolon:
			if depth == 0 {
				return i
			}
		}
		i++
	}
}

// Patterns (Java 16 type patterns, 21 record patterns, 25 primitive
// patterns)
// ----------------------------------------------------------------

type patternShape int

const (
	patternNone patternShape = iota
	patternType
	patternRecord
	patternMatchAll
)

func patternAhead(ctx *ParseContext) patternShape {
	if ctx.Current().Literal == "_" && ctx.Current().Kind == TokenIdent {
		return patternMatchAll
	}
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	if !skipType(ctx) {
		return patternNone
	}
	if ctx.CurrentIs(TokenLParen) {
		return patternRecord
	}
	if ctx.IsIdentifierLike() {
		return patternType
	}
	return patternNone
}

func parsePattern(ctx *ParseContext) error {
	switch patternAhead(ctx) {
	case patternMatchAll:
		_, err := ctx.Leaf(KindMatchAllPattern)
		return err

	case patternRecord:
		id, err := ctx.Begin(KindRecordPattern)
		if err != nil {
			return err
		}
		if _, err := parseType(ctx); err != nil {
			return err
		}
		if _, err := ctx.Expect(TokenLParen); err != nil {
			return err
		}
		for !ctx.CurrentIs(TokenRParen) && !ctx.CurrentIs(TokenEOF) {
			if err := parsePattern(ctx); err != nil {
				return err
			}
			if ctx.CurrentIs(TokenComma) {
				ctx.Advance()
			}
		}
		if _, err := ctx.Expect(TokenRParen); err != nil {
			return err
		}
		return ctx.End(id)

	case patternType:
		kind := KindTypePattern
		if ctx.Level() >= Java25 && primitiveTypeKinds[ctx.Current().Kind] {
			kind = KindPrimitivePattern
		}
		id, err := ctx.Begin(kind)
		if err != nil {
			return err
		}
		if _, err := parseType(ctx); err != nil {
			return err
		}
		if err := expectIdentifierLeaf(ctx); err != nil {
			return err
		}
		return ctx.End(id)
	}
	return unexpectedHere(ctx)
}

// patternSwitchStrategy handles switch at Java 21+, where case labels may
// be type, record and (at 25) primitive patterns with optional guards. One
// instance is registered per phase so statement and expression positions
// produce the right node kind.
type patternSwitchStrategy struct {
	phase Phase
	kind  NodeKind
}

func (s *patternSwitchStrategy) Priority() int { return PriorityPhaseAware }

func (s *patternSwitchStrategy) Description() string {
	return "pattern switch (" + s.phase.String() + ")"
}

func (s *patternSwitchStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	return level >= Java21 && phase == s.phase && ctx.CurrentIs(TokenSwitch)
}

func (s *patternSwitchStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	return parseSwitch(ctx, s.kind)
}

// flexibleConstructorBodyStrategy parses constructor bodies at Java 25,
// where statements may precede the explicit this()/super() invocation. The
// prologue statements are grouped under a ConstructorPrologue node.
type flexibleConstructorBodyStrategy struct{}

func (s *flexibleConstructorBodyStrategy) Priority() int       { return PriorityPhaseAware }
func (s *flexibleConstructorBodyStrategy) Description() string { return "flexible constructor body" }

func (s *flexibleConstructorBodyStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	return level >= Java25 && phase == PhaseConstructorBody && ctx.CurrentIs(TokenLBrace)
}

func (s *flexibleConstructorBodyStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindBlock)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenLBrace); err != nil {
		return NoNode, err
	}

	if !explicitCtorInvocationAhead(ctx) && !ctx.CurrentIs(TokenRBrace) {
		pid, err := ctx.Begin(KindConstructorPrologue)
		if err != nil {
			return NoNode, err
		}
		for !ctx.CurrentIs(TokenRBrace) && !ctx.CurrentIs(TokenEOF) &&
			!explicitCtorInvocationAhead(ctx) {
			if _, err := ctx.ParseStatement(); err != nil {
				return NoNode, err
			}
		}
		if err := ctx.End(pid); err != nil {
			return NoNode, err
		}
	}

	if explicitCtorInvocationAhead(ctx) {
		eid, err := ctx.Begin(KindExplicitConstructorInvocation)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance() // this or super
		if err := parseArguments(ctx); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return NoNode, err
		}
		if err := ctx.End(eid); err != nil {
			return NoNode, err
		}
	}

	for !ctx.CurrentIs(TokenRBrace) && !ctx.CurrentIs(TokenEOF) {
		if _, err := ctx.ParseStatement(); err != nil {
			return NoNode, err
		}
	}
	if _, err := ctx.Expect(TokenRBrace); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func explicitCtorInvocationAhead(ctx *ParseContext) bool {
	if !ctx.CurrentIs(TokenThis) && !ctx.CurrentIs(TokenSuper) {
		return false
	}
	return ctx.Peek(1).Kind == TokenLParen
}
