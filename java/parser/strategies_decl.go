package parser

// Declaration-level construct strategies and the shared parsing helpers
// they are built from. Each strategy owns one construct; the registry picks
// between them by priority, phase and language level.

var modifierKinds = map[TokenKind]bool{
	TokenPublic:       true,
	TokenProtected:    true,
	TokenPrivate:      true,
	TokenAbstract:     true,
	TokenStatic:       true,
	TokenFinal:        true,
	TokenStrictfp:     true,
	TokenNative:       true,
	TokenSynchronized: true,
	TokenTransient:    true,
	TokenVolatile:     true,
	TokenDefault:      true,
}

func isModifier(kind TokenKind, level LanguageLevel) bool {
	if modifierKinds[kind] {
		return true
	}
	if level >= Java17 && (kind == TokenSealed || kind == TokenNonSealed) {
		return true
	}
	return false
}

var primitiveTypeKinds = map[TokenKind]bool{
	TokenBoolean: true,
	TokenByte:    true,
	TokenShort:   true,
	TokenInt:     true,
	TokenLong:    true,
	TokenChar:    true,
	TokenFloat:   true,
	TokenDouble:  true,
}

// Package declaration
// -------------------

type packageDeclStrategy struct{}

func (s *packageDeclStrategy) Priority() int       { return PriorityPhaseAware }
func (s *packageDeclStrategy) Description() string { return "package declaration" }

func (s *packageDeclStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	if phase != PhaseTopLevel {
		return false
	}
	if ctx.CurrentIs(TokenPackage) {
		return true
	}
	if !ctx.CurrentIs(TokenAt) {
		return false
	}
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	for ctx.CurrentIs(TokenAt) {
		skipAnnotation(ctx)
	}
	return ctx.CurrentIs(TokenPackage)
}

func (s *packageDeclStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindPackageDecl)
	if err != nil {
		return NoNode, err
	}
	for ctx.CurrentIs(TokenAt) {
		if _, err := parseAnnotation(ctx); err != nil {
			return NoNode, err
		}
	}
	if _, err := ctx.Expect(TokenPackage); err != nil {
		return NoNode, err
	}
	if _, err := parseQualifiedName(ctx); err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenSemicolon); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

// Import declarations
// -------------------

type importDeclStrategy struct{}

func (s *importDeclStrategy) Priority() int       { return PriorityGeneric }
func (s *importDeclStrategy) Description() string { return "import declaration" }

func (s *importDeclStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	return phase == PhaseTopLevel && ctx.CurrentIs(TokenImport)
}

func (s *importDeclStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindImportDecl)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenImport); err != nil {
		return NoNode, err
	}
	if ctx.CurrentIs(TokenStatic) {
		ctx.Advance()
	}
	if _, err := parseQualifiedName(ctx); err != nil {
		return NoNode, err
	}
	if ctx.CurrentIs(TokenDot) && ctx.Peek(1).Kind == TokenMult {
		ctx.Advance()
		ctx.Advance()
	}
	if _, err := ctx.Expect(TokenSemicolon); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

// moduleImportStrategy parses "import module java.base;" (Java 25). It
// outranks the plain import strategy at the same token.
type moduleImportStrategy struct{}

func (s *moduleImportStrategy) Priority() int       { return PriorityPhaseAware }
func (s *moduleImportStrategy) Description() string { return "module import declaration" }

func (s *moduleImportStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	// "import module.foo;" is a plain import of a package named module;
	// the module form is "import module m;" with no dot after the keyword.
	return level >= Java25 && phase == PhaseTopLevel &&
		ctx.CurrentIs(TokenImport) && ctx.Peek(1).Kind == TokenModule &&
		ctx.Peek(2).Kind != TokenDot && ctx.Peek(2).Kind != TokenSemicolon
}

func (s *moduleImportStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindModuleImportDecl)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenImport); err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenModule); err != nil {
		return NoNode, err
	}
	if _, err := parseQualifiedName(ctx); err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenSemicolon); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

// Type declarations (class, interface, enum, @interface)
// ------------------------------------------------------

type typeDeclStrategy struct{}

func (s *typeDeclStrategy) Priority() int       { return PriorityGeneric }
func (s *typeDeclStrategy) Description() string { return "type declaration" }

func (s *typeDeclStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	if phase != PhaseTopLevel && phase != PhaseClassBody && phase != PhaseMethodBody {
		return false
	}
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	skipAnnotationsAndModifiers(ctx)
	switch ctx.Current().Kind {
	case TokenClass, TokenInterface, TokenEnum:
		return true
	case TokenAt:
		return ctx.Peek(1).Kind == TokenInterface
	}
	return false
}

func (s *typeDeclStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	return parseTypeDecl(ctx)
}

func parseTypeDecl(ctx *ParseContext) (NodeID, error) {
	kind := KindClassDecl
	save := ctx.SavePosition()
	skipAnnotationsAndModifiers(ctx)
	switch ctx.Current().Kind {
	case TokenInterface:
		kind = KindInterfaceDecl
	case TokenEnum:
		kind = KindEnumDecl
	case TokenAt:
		kind = KindAnnotationDecl
	}
	ctx.SetPosition(save)

	id, err := ctx.Begin(kind)
	if err != nil {
		return NoNode, err
	}
	if _, err := parseModifiers(ctx); err != nil {
		return NoNode, err
	}

	switch kind {
	case KindClassDecl:
		if _, err := ctx.Expect(TokenClass); err != nil {
			return NoNode, err
		}
	case KindInterfaceDecl:
		if _, err := ctx.Expect(TokenInterface); err != nil {
			return NoNode, err
		}
	case KindEnumDecl:
		if _, err := ctx.Expect(TokenEnum); err != nil {
			return NoNode, err
		}
	case KindAnnotationDecl:
		if _, err := ctx.Expect(TokenAt); err != nil {
			return NoNode, err
		}
		if _, err := ctx.Expect(TokenInterface); err != nil {
			return NoNode, err
		}
	}

	if err := expectIdentifierLeaf(ctx); err != nil {
		return NoNode, err
	}
	if ctx.CurrentIs(TokenLT) {
		if _, err := parseTypeParameters(ctx); err != nil {
			return NoNode, err
		}
	}

	if ctx.CurrentIs(TokenExtends) {
		eid, err := ctx.Begin(KindExtendsClause)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		for {
			if _, err := parseType(ctx); err != nil {
				return NoNode, err
			}
			if kind != KindInterfaceDecl || !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
		if err := ctx.End(eid); err != nil {
			return NoNode, err
		}
	}
	if ctx.CurrentIs(TokenImplements) {
		iid, err := ctx.Begin(KindImplementsClause)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		for {
			if _, err := parseType(ctx); err != nil {
				return NoNode, err
			}
			if !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
		if err := ctx.End(iid); err != nil {
			return NoNode, err
		}
	}
	if ctx.Level() >= Java17 && ctx.CurrentIs(TokenPermits) {
		pid, err := ctx.Begin(KindPermitsClause)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		for {
			if _, err := parseType(ctx); err != nil {
				return NoNode, err
			}
			if !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
		if err := ctx.End(pid); err != nil {
			return NoNode, err
		}
	}

	if kind == KindEnumDecl {
		if err := parseEnumBody(ctx); err != nil {
			return NoNode, err
		}
	} else {
		if err := parseClassBody(ctx); err != nil {
			return NoNode, err
		}
	}
	return id, ctx.End(id)
}

// recordDeclStrategy parses record declarations (Java 16). It outranks the
// generic type declaration strategy so that "record" is not taken as a type
// name.
type recordDeclStrategy struct{}

func (s *recordDeclStrategy) Priority() int       { return PriorityPhaseAware }
func (s *recordDeclStrategy) Description() string { return "record declaration" }

func (s *recordDeclStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	if level < Java16 {
		return false
	}
	if phase != PhaseTopLevel && phase != PhaseClassBody && phase != PhaseMethodBody {
		return false
	}
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	skipAnnotationsAndModifiers(ctx)
	if !ctx.CurrentIs(TokenRecord) {
		return false
	}
	next := ctx.Peek(1)
	if next.Kind != TokenIdent && !next.Kind.IsContextual() {
		return false
	}
	after := ctx.Peek(2).Kind
	return after == TokenLParen || after == TokenLT
}

func (s *recordDeclStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindRecordDecl)
	if err != nil {
		return NoNode, err
	}
	if _, err := parseModifiers(ctx); err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenRecord); err != nil {
		return NoNode, err
	}
	if err := expectIdentifierLeaf(ctx); err != nil {
		return NoNode, err
	}
	if ctx.CurrentIs(TokenLT) {
		if _, err := parseTypeParameters(ctx); err != nil {
			return NoNode, err
		}
	}
	if _, err := parseParameters(ctx); err != nil {
		return NoNode, err
	}
	if ctx.CurrentIs(TokenImplements) {
		iid, err := ctx.Begin(KindImplementsClause)
		if err != nil {
			return NoNode, err
		}
		ctx.Advance()
		for {
			if _, err := parseType(ctx); err != nil {
				return NoNode, err
			}
			if !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
		if err := ctx.End(iid); err != nil {
			return NoNode, err
		}
	}
	if err := parseClassBody(ctx); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

// Module declarations (Java 9)
// ----------------------------

type moduleDeclStrategy struct{}

func (s *moduleDeclStrategy) Priority() int       { return PriorityPhaseAware }
func (s *moduleDeclStrategy) Description() string { return "module declaration" }

func (s *moduleDeclStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	if level < Java9 || phase != PhaseTopLevel {
		return false
	}
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	for ctx.CurrentIs(TokenAt) {
		skipAnnotation(ctx)
	}
	if ctx.CurrentIs(TokenOpen) {
		return ctx.Peek(1).Kind == TokenModule
	}
	return ctx.CurrentIs(TokenModule) && ctx.Peek(1).Kind != TokenDot &&
		(ctx.Peek(1).Kind == TokenIdent || ctx.Peek(1).Kind.IsContextual())
}

func (s *moduleDeclStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindModuleDecl)
	if err != nil {
		return NoNode, err
	}
	for ctx.CurrentIs(TokenAt) {
		if _, err := parseAnnotation(ctx); err != nil {
			return NoNode, err
		}
	}
	if ctx.CurrentIs(TokenOpen) {
		if _, err := ctx.Leaf(KindIdentifier); err != nil {
			return NoNode, err
		}
	}
	if _, err := ctx.Expect(TokenModule); err != nil {
		return NoNode, err
	}
	if _, err := parseQualifiedName(ctx); err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenLBrace); err != nil {
		return NoNode, err
	}
	for !ctx.CurrentIs(TokenRBrace) && !ctx.CurrentIs(TokenEOF) {
		if err := parseModuleDirective(ctx); err != nil {
			return NoNode, err
		}
	}
	if _, err := ctx.Expect(TokenRBrace); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func parseModuleDirective(ctx *ParseContext) error {
	switch ctx.Current().Kind {
	case TokenRequires:
		id, err := ctx.Begin(KindRequiresDirective)
		if err != nil {
			return err
		}
		ctx.Advance()
		for ctx.CurrentIs(TokenTransitive) || ctx.CurrentIs(TokenStatic) {
			if _, err := ctx.Leaf(KindIdentifier); err != nil {
				return err
			}
		}
		if _, err := parseQualifiedName(ctx); err != nil {
			return err
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return err
		}
		return ctx.End(id)

	case TokenExports, TokenOpens:
		kind := KindExportsDirective
		if ctx.CurrentIs(TokenOpens) {
			kind = KindOpensDirective
		}
		id, err := ctx.Begin(kind)
		if err != nil {
			return err
		}
		ctx.Advance()
		if _, err := parseQualifiedName(ctx); err != nil {
			return err
		}
		if ctx.CurrentIs(TokenTo) {
			ctx.Advance()
			for {
				if _, err := parseQualifiedName(ctx); err != nil {
					return err
				}
				if !ctx.CurrentIs(TokenComma) {
					break
				}
				ctx.Advance()
			}
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return err
		}
		return ctx.End(id)

	case TokenUses:
		id, err := ctx.Begin(KindUsesDirective)
		if err != nil {
			return err
		}
		ctx.Advance()
		if _, err := parseQualifiedName(ctx); err != nil {
			return err
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return err
		}
		return ctx.End(id)

	case TokenProvides:
		id, err := ctx.Begin(KindProvidesDirective)
		if err != nil {
			return err
		}
		ctx.Advance()
		if _, err := parseQualifiedName(ctx); err != nil {
			return err
		}
		if _, err := ctx.Expect(TokenWith); err != nil {
			return err
		}
		for {
			if _, err := parseQualifiedName(ctx); err != nil {
				return err
			}
			if !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
		if _, err := ctx.Expect(TokenSemicolon); err != nil {
			return err
		}
		return ctx.End(id)
	}

	tok := ctx.Current()
	err := newParseError(ErrUnexpectedToken, tok.Start,
		"expected module directive, got %v", tok.Kind)
	err.Actual = tok.Kind
	return err
}

// Unnamed classes (Java 21 preview, final in 25)
// ----------------------------------------------

// unnamedClassStrategy catches top-level members that are not wrapped in a
// type declaration, e.g. a bare "void main()". It ranks below every real
// declaration strategy.
type unnamedClassStrategy struct{}

func (s *unnamedClassStrategy) Priority() int       { return PriorityGeneric - 10 }
func (s *unnamedClassStrategy) Description() string { return "unnamed class" }

func (s *unnamedClassStrategy) CanHandle(level LanguageLevel, phase Phase, ctx *ParseContext) bool {
	if level < Java21 || phase != PhaseTopLevel {
		return false
	}
	switch ctx.Current().Kind {
	case TokenEOF, TokenError, TokenPackage, TokenImport, TokenSemicolon:
		return false
	}
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	skipAnnotationsAndModifiers(ctx)
	switch ctx.Current().Kind {
	case TokenClass, TokenInterface, TokenEnum, TokenModule, TokenOpen:
		return false
	case TokenAt:
		return false
	case TokenRecord:
		after := ctx.Peek(2).Kind
		return after != TokenLParen && after != TokenLT
	}
	return true
}

func (s *unnamedClassStrategy) ParseConstruct(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindUnnamedClass)
	if err != nil {
		return NoNode, err
	}
	for !ctx.CurrentIs(TokenEOF) {
		if ctx.CurrentIs(TokenSemicolon) {
			ctx.Advance()
			continue
		}
		if err := parseClassMember(ctx); err != nil {
			return NoNode, err
		}
	}
	return id, ctx.End(id)
}

// Shared declaration helpers
// --------------------------

func expectIdentifierLeaf(ctx *ParseContext) error {
	if !ctx.IsIdentifierLike() {
		tok := ctx.Current()
		err := newParseError(ErrUnexpectedToken, tok.Start,
			"expected identifier, got %v", tok.Kind)
		err.Expected = TokenIdent
		err.Actual = tok.Kind
		return err
	}
	kind := KindIdentifier
	if ctx.Level() >= Java21 && ctx.Current().Literal == "_" {
		kind = KindUnnamedVariable
	}
	_, err := ctx.Leaf(kind)
	return err
}

// parseQualifiedName allocates a QualifiedName node for dotted names and a
// plain Identifier leaf for simple ones.
func parseQualifiedName(ctx *ParseContext) (NodeID, error) {
	if !ctx.IsIdentifierLike() {
		tok := ctx.Current()
		err := newParseError(ErrUnexpectedToken, tok.Start,
			"expected name, got %v", tok.Kind)
		err.Expected = TokenIdent
		err.Actual = tok.Kind
		return NoNode, err
	}
	dotted := ctx.Peek(1).Kind == TokenDot &&
		(ctx.Peek(2).Kind == TokenIdent || ctx.Peek(2).Kind.IsContextual())
	if !dotted {
		return ctx.Leaf(KindIdentifier)
	}

	id, err := ctx.Begin(KindQualifiedName)
	if err != nil {
		return NoNode, err
	}
	for {
		if _, err := ctx.Leaf(KindIdentifier); err != nil {
			return NoNode, err
		}
		if !ctx.CurrentIs(TokenDot) {
			break
		}
		next := ctx.Peek(1).Kind
		if next != TokenIdent && !next.IsContextual() {
			break
		}
		ctx.Advance()
	}
	return id, ctx.End(id)
}

// parseModifiers collects leading annotations and modifier keywords into a
// Modifiers node. When nothing is present no node is allocated.
func parseModifiers(ctx *ParseContext) (NodeID, error) {
	if !ctx.CurrentIs(TokenAt) && !isModifier(ctx.Current().Kind, ctx.Level()) {
		return NoNode, nil
	}
	id, err := ctx.Begin(KindModifiers)
	if err != nil {
		return NoNode, err
	}
	for {
		if ctx.CurrentIs(TokenAt) && ctx.Peek(1).Kind != TokenInterface {
			if _, err := parseAnnotation(ctx); err != nil {
				return NoNode, err
			}
			continue
		}
		if isModifier(ctx.Current().Kind, ctx.Level()) {
			if _, err := ctx.Leaf(KindIdentifier); err != nil {
				return NoNode, err
			}
			continue
		}
		break
	}
	return id, ctx.End(id)
}

func parseAnnotation(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindAnnotation)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenAt); err != nil {
		return NoNode, err
	}
	if _, err := parseQualifiedName(ctx); err != nil {
		return NoNode, err
	}
	if ctx.CurrentIs(TokenLParen) {
		ctx.Advance()
		for !ctx.CurrentIs(TokenRParen) && !ctx.CurrentIs(TokenEOF) {
			if err := parseAnnotationValue(ctx); err != nil {
				return NoNode, err
			}
			if ctx.CurrentIs(TokenComma) {
				ctx.Advance()
			}
		}
		if _, err := ctx.Expect(TokenRParen); err != nil {
			return NoNode, err
		}
	}
	return id, ctx.End(id)
}

func parseAnnotationValue(ctx *ParseContext) error {
	if ctx.IsIdentifierLike() && ctx.Peek(1).Kind == TokenAssign {
		id, err := ctx.Begin(KindAnnotationElement)
		if err != nil {
			return err
		}
		if _, err := ctx.Leaf(KindIdentifier); err != nil {
			return err
		}
		ctx.Advance() // =
		if err := parseAnnotationElementValue(ctx); err != nil {
			return err
		}
		return ctx.End(id)
	}
	return parseAnnotationElementValue(ctx)
}

func parseAnnotationElementValue(ctx *ParseContext) error {
	switch ctx.Current().Kind {
	case TokenAt:
		_, err := parseAnnotation(ctx)
		return err
	case TokenLBrace:
		_, err := parseArrayInit(ctx)
		return err
	}
	_, err := parseExpression(ctx)
	return err
}

// parseType parses a type reference: a primitive or (possibly qualified,
// possibly parameterized) class type, with any number of array dimensions.
func parseType(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindType)
	if err != nil {
		return NoNode, err
	}
	for ctx.CurrentIs(TokenAt) {
		if _, err := parseAnnotation(ctx); err != nil {
			return NoNode, err
		}
	}

	cur := ctx.Current().Kind
	if primitiveTypeKinds[cur] || cur == TokenVoid {
		if _, err := ctx.Leaf(KindPrimitiveType); err != nil {
			return NoNode, err
		}
	} else {
		if !ctx.IsIdentifierLike() {
			tok := ctx.Current()
			perr := newParseError(ErrUnexpectedToken, tok.Start,
				"expected type, got %v", tok.Kind)
			perr.Actual = tok.Kind
			return NoNode, perr
		}
		if _, err := ctx.Leaf(KindIdentifier); err != nil {
			return NoNode, err
		}
		for {
			if ctx.CurrentIs(TokenLT) {
				if _, err := parseTypeArguments(ctx); err != nil {
					return NoNode, err
				}
			}
			if ctx.CurrentIs(TokenDot) &&
				(ctx.Peek(1).Kind == TokenIdent || ctx.Peek(1).Kind.IsContextual()) {
				ctx.Advance()
				if _, err := ctx.Leaf(KindIdentifier); err != nil {
					return NoNode, err
				}
				continue
			}
			break
		}
	}

	for ctx.CurrentIs(TokenLBracket) && ctx.Peek(1).Kind == TokenRBracket {
		if err := parseArrayDim(ctx); err != nil {
			return NoNode, err
		}
	}
	return id, ctx.End(id)
}

// parseArrayDim consumes one "[]" pair and records it as an ArrayType
// child covering both brackets.
func parseArrayDim(ctx *ParseContext) error {
	open := ctx.Current()
	ctx.Advance()
	closeTok, err := ctx.Expect(TokenRBracket)
	if err != nil {
		return err
	}
	_, err = ctx.Storage().Allocate(open.Start, closeTok.End()-open.Start,
		KindArrayType, ctx.CurrentParent())
	return err
}

func parseTypeArguments(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindTypeArguments)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenLT); err != nil {
		return NoNode, err
	}
	if !atTypeArgumentsClose(ctx) {
		for {
			if err := parseTypeArgument(ctx); err != nil {
				return NoNode, err
			}
			if !ctx.CurrentIs(TokenComma) {
				break
			}
			ctx.Advance()
		}
	}
	if err := closeTypeArguments(ctx); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func parseTypeArgument(ctx *ParseContext) error {
	id, err := ctx.Begin(KindTypeArgument)
	if err != nil {
		return err
	}
	if ctx.CurrentIs(TokenQuestion) {
		wid, err := ctx.Begin(KindWildcard)
		if err != nil {
			return err
		}
		ctx.Advance()
		if ctx.CurrentIs(TokenExtends) || ctx.CurrentIs(TokenSuper) {
			ctx.Advance()
			if _, err := parseType(ctx); err != nil {
				return err
			}
		}
		if err := ctx.End(wid); err != nil {
			return err
		}
	} else {
		if _, err := parseType(ctx); err != nil {
			return err
		}
	}
	return ctx.End(id)
}

func atTypeArgumentsClose(ctx *ParseContext) bool {
	switch ctx.Current().Kind {
	case TokenGT, TokenRShift, TokenURShift:
		return true
	}
	return false
}

// closeTypeArguments consumes one closing ">". When the lexer produced a
// shift token for adjacent closers the surplus angle brackets are put back
// through the pending-token slot.
func closeTypeArguments(ctx *ParseContext) error {
	tok := ctx.Current()
	switch tok.Kind {
	case TokenGT:
		ctx.Advance()
		return nil
	case TokenRShift:
		ctx.Advance()
		ctx.lastEnd = tok.Start + 1
		ctx.InjectToken(Token{Kind: TokenGT, Start: tok.Start + 1, Length: 1, Literal: ">"})
		return nil
	case TokenURShift:
		ctx.Advance()
		ctx.lastEnd = tok.Start + 1
		ctx.InjectToken(Token{Kind: TokenRShift, Start: tok.Start + 1, Length: 2, Literal: ">>"})
		return nil
	}
	err := newParseError(ErrUnexpectedToken, tok.Start,
		"expected '>', got %v", tok.Kind)
	err.Expected = TokenGT
	err.Actual = tok.Kind
	return err
}

func parseTypeParameters(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindTypeParameters)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenLT); err != nil {
		return NoNode, err
	}
	for {
		pid, err := ctx.Begin(KindTypeParameter)
		if err != nil {
			return NoNode, err
		}
		for ctx.CurrentIs(TokenAt) {
			if _, err := parseAnnotation(ctx); err != nil {
				return NoNode, err
			}
		}
		if err := expectIdentifierLeaf(ctx); err != nil {
			return NoNode, err
		}
		if ctx.CurrentIs(TokenExtends) {
			ctx.Advance()
			for {
				if _, err := parseType(ctx); err != nil {
					return NoNode, err
				}
				if !ctx.CurrentIs(TokenBitAnd) {
					break
				}
				ctx.Advance()
			}
		}
		if err := ctx.End(pid); err != nil {
			return NoNode, err
		}
		if !ctx.CurrentIs(TokenComma) {
			break
		}
		ctx.Advance()
	}
	if err := closeTypeArguments(ctx); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func parseParameters(ctx *ParseContext) (NodeID, error) {
	id, err := ctx.Begin(KindParameters)
	if err != nil {
		return NoNode, err
	}
	if _, err := ctx.Expect(TokenLParen); err != nil {
		return NoNode, err
	}
	for !ctx.CurrentIs(TokenRParen) && !ctx.CurrentIs(TokenEOF) {
		if err := parseParameter(ctx); err != nil {
			return NoNode, err
		}
		if ctx.CurrentIs(TokenComma) {
			ctx.Advance()
		}
	}
	if _, err := ctx.Expect(TokenRParen); err != nil {
		return NoNode, err
	}
	return id, ctx.End(id)
}

func parseParameter(ctx *ParseContext) error {
	// Untyped lambda parameters: a bare name directly followed by the
	// separator.
	if ctx.IsIdentifierLike() &&
		(ctx.Peek(1).Kind == TokenComma || ctx.Peek(1).Kind == TokenRParen) {
		id, err := ctx.Begin(KindParameter)
		if err != nil {
			return err
		}
		if err := expectIdentifierLeaf(ctx); err != nil {
			return err
		}
		return ctx.End(id)
	}

	kind := KindParameter
	if isReceiverParameter(ctx) {
		kind = KindReceiverParameter
	}
	id, err := ctx.Begin(kind)
	if err != nil {
		return err
	}
	for ctx.CurrentIs(TokenAt) || ctx.CurrentIs(TokenFinal) {
		if ctx.CurrentIs(TokenFinal) {
			ctx.Advance()
			continue
		}
		if _, err := parseAnnotation(ctx); err != nil {
			return err
		}
	}
	if _, err := parseType(ctx); err != nil {
		return err
	}
	if ctx.CurrentIs(TokenEllipsis) {
		ctx.Advance()
	}
	if ctx.CurrentIs(TokenThis) {
		ctx.Advance()
	} else {
		if err := expectIdentifierLeaf(ctx); err != nil {
			return err
		}
		for ctx.CurrentIs(TokenLBracket) && ctx.Peek(1).Kind == TokenRBracket {
			if err := parseArrayDim(ctx); err != nil {
				return err
			}
		}
	}
	return ctx.End(id)
}

func isReceiverParameter(ctx *ParseContext) bool {
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	for ctx.CurrentIs(TokenAt) {
		skipAnnotation(ctx)
	}
	if !skipType(ctx) {
		return false
	}
	return ctx.CurrentIs(TokenThis)
}

func parseThrowsList(ctx *ParseContext) error {
	id, err := ctx.Begin(KindThrowsList)
	if err != nil {
		return err
	}
	ctx.Advance() // throws
	for {
		if _, err := parseType(ctx); err != nil {
			return err
		}
		if !ctx.CurrentIs(TokenComma) {
			break
		}
		ctx.Advance()
	}
	return ctx.End(id)
}

// Class bodies and members
// ------------------------

func parseClassBody(ctx *ParseContext) error {
	if _, err := ctx.Expect(TokenLBrace); err != nil {
		return err
	}
	for !ctx.CurrentIs(TokenRBrace) && !ctx.CurrentIs(TokenEOF) {
		if ctx.CurrentIs(TokenSemicolon) {
			ctx.Advance()
			continue
		}
		if r := ctx.Registry(); r != nil {
			if s := r.FindStrategy(ctx.Level(), PhaseClassBody, ctx); s != nil {
				if _, err := s.ParseConstruct(ctx); err != nil {
					return err
				}
				continue
			}
		}
		if err := parseClassMember(ctx); err != nil {
			return err
		}
	}
	_, err := ctx.Expect(TokenRBrace)
	return err
}

func parseEnumBody(ctx *ParseContext) error {
	if _, err := ctx.Expect(TokenLBrace); err != nil {
		return err
	}
	for ctx.IsIdentifierLike() || ctx.CurrentIs(TokenAt) {
		id, err := ctx.Begin(KindEnumConstant)
		if err != nil {
			return err
		}
		for ctx.CurrentIs(TokenAt) {
			if _, err := parseAnnotation(ctx); err != nil {
				return err
			}
		}
		if err := expectIdentifierLeaf(ctx); err != nil {
			return err
		}
		if ctx.CurrentIs(TokenLParen) {
			if err := parseArguments(ctx); err != nil {
				return err
			}
		}
		if ctx.CurrentIs(TokenLBrace) {
			if err := parseClassBody(ctx); err != nil {
				return err
			}
		}
		if err := ctx.End(id); err != nil {
			return err
		}
		if !ctx.CurrentIs(TokenComma) {
			break
		}
		ctx.Advance()
	}
	if ctx.CurrentIs(TokenSemicolon) {
		ctx.Advance()
		for !ctx.CurrentIs(TokenRBrace) && !ctx.CurrentIs(TokenEOF) {
			if ctx.CurrentIs(TokenSemicolon) {
				ctx.Advance()
				continue
			}
			if r := ctx.Registry(); r != nil {
				if s := r.FindStrategy(ctx.Level(), PhaseClassBody, ctx); s != nil {
					if _, err := s.ParseConstruct(ctx); err != nil {
						return err
					}
					continue
				}
			}
			if err := parseClassMember(ctx); err != nil {
				return err
			}
		}
	}
	_, err := ctx.Expect(TokenRBrace)
	return err
}

type memberShape int

const (
	memberField memberShape = iota
	memberMethod
	memberConstructor
	memberInitializer
)

// classifyMember looks ahead (without allocating) to decide how a class
// body member should be parsed.
func classifyMember(ctx *ParseContext) memberShape {
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)

	skipAnnotationsAndModifiers(ctx)

	if ctx.CurrentIs(TokenLBrace) {
		return memberInitializer
	}
	if ctx.CurrentIs(TokenLT) {
		skipAngles(ctx)
	}
	if ctx.IsIdentifierLike() && ctx.Peek(1).Kind == TokenLParen {
		return memberConstructor
	}
	if !skipType(ctx) {
		return memberField
	}
	if ctx.IsIdentifierLike() && ctx.Peek(1).Kind == TokenLParen {
		return memberMethod
	}
	return memberField
}

func parseClassMember(ctx *ParseContext) error {
	switch classifyMember(ctx) {
	case memberInitializer:
		id, err := ctx.Begin(KindInitializerBlock)
		if err != nil {
			return err
		}
		if _, err := parseModifiers(ctx); err != nil {
			return err
		}
		if _, err := parseBlock(ctx); err != nil {
			return err
		}
		return ctx.End(id)

	case memberConstructor:
		id, err := ctx.Begin(KindConstructorDecl)
		if err != nil {
			return err
		}
		if _, err := parseModifiers(ctx); err != nil {
			return err
		}
		if ctx.CurrentIs(TokenLT) {
			if _, err := parseTypeParameters(ctx); err != nil {
				return err
			}
		}
		if err := expectIdentifierLeaf(ctx); err != nil {
			return err
		}
		if _, err := parseParameters(ctx); err != nil {
			return err
		}
		if ctx.CurrentIs(TokenThrows) {
			if err := parseThrowsList(ctx); err != nil {
				return err
			}
		}
		var body ParseStrategy
		if r := ctx.Registry(); r != nil {
			body = r.FindStrategy(ctx.Level(), PhaseConstructorBody, ctx)
		}
		if body != nil {
			if _, err := body.ParseConstruct(ctx); err != nil {
				return err
			}
		} else {
			if _, err := parseBlock(ctx); err != nil {
				return err
			}
		}
		return ctx.End(id)

	case memberMethod:
		return parseMethodDecl(ctx)
	}

	return parseFieldDecl(ctx)
}

func parseMethodDecl(ctx *ParseContext) error {
	kind := KindMethodDecl
	if ctx.Level() >= Java21 && parentKind(ctx) == KindUnnamedClass && isInstanceMainAhead(ctx) {
		kind = KindInstanceMainMethod
	}
	id, err := ctx.Begin(kind)
	if err != nil {
		return err
	}
	if _, err := parseModifiers(ctx); err != nil {
		return err
	}
	if ctx.CurrentIs(TokenLT) {
		if _, err := parseTypeParameters(ctx); err != nil {
			return err
		}
	}
	if _, err := parseType(ctx); err != nil {
		return err
	}
	if err := expectIdentifierLeaf(ctx); err != nil {
		return err
	}
	if _, err := parseParameters(ctx); err != nil {
		return err
	}
	for ctx.CurrentIs(TokenLBracket) && ctx.Peek(1).Kind == TokenRBracket {
		if err := parseArrayDim(ctx); err != nil {
			return err
		}
	}
	if ctx.CurrentIs(TokenThrows) {
		if err := parseThrowsList(ctx); err != nil {
			return err
		}
	}
	if ctx.CurrentIs(TokenDefault) {
		// Annotation member default value.
		ctx.Advance()
		if err := parseAnnotationElementValue(ctx); err != nil {
			return err
		}
	}
	if ctx.CurrentIs(TokenSemicolon) {
		ctx.Advance()
	} else {
		if _, err := parseBlock(ctx); err != nil {
			return err
		}
	}
	return ctx.End(id)
}

func parentKind(ctx *ParseContext) NodeKind {
	p := ctx.CurrentParent()
	if p < 0 {
		return KindError
	}
	return NodeKind(ctx.storage.records[int(p)*nodeFields+fieldKind])
}

// isInstanceMainAhead reports whether the member at the cursor is a "main"
// method, the shape promoted to an instance main method in unnamed
// classes.
func isInstanceMainAhead(ctx *ParseContext) bool {
	save := ctx.SavePosition()
	defer ctx.SetPosition(save)
	skipAnnotationsAndModifiers(ctx)
	if ctx.CurrentIs(TokenLT) {
		skipAngles(ctx)
	}
	if !skipType(ctx) {
		return false
	}
	return ctx.Current().Literal == "main" && ctx.Peek(1).Kind == TokenLParen
}

func parseFieldDecl(ctx *ParseContext) error {
	id, err := ctx.Begin(KindFieldDecl)
	if err != nil {
		return err
	}
	if _, err := parseModifiers(ctx); err != nil {
		return err
	}
	if _, err := parseType(ctx); err != nil {
		return err
	}
	for {
		if err := expectIdentifierLeaf(ctx); err != nil {
			return err
		}
		for ctx.CurrentIs(TokenLBracket) && ctx.Peek(1).Kind == TokenRBracket {
			if err := parseArrayDim(ctx); err != nil {
				return err
			}
		}
		if ctx.CurrentIs(TokenAssign) {
			ctx.Advance()
			if ctx.CurrentIs(TokenLBrace) {
				if _, err := parseArrayInit(ctx); err != nil {
					return err
				}
			} else {
				if _, err := parseExpression(ctx); err != nil {
					return err
				}
			}
		}
		if !ctx.CurrentIs(TokenComma) {
			break
		}
		ctx.Advance()
	}
	if _, err := ctx.Expect(TokenSemicolon); err != nil {
		return err
	}
	return ctx.End(id)
}

// Token-level skipping (no allocation), used by CanHandle look-aheads
// -------------------------------------------------------------------

func skipAnnotation(ctx *ParseContext) {
	if !ctx.CurrentIs(TokenAt) {
		return
	}
	ctx.Advance()
	for ctx.IsIdentifierLike() {
		ctx.Advance()
		if ctx.CurrentIs(TokenDot) {
			ctx.Advance()
			continue
		}
		break
	}
	if ctx.CurrentIs(TokenLParen) {
		depth := 0
		for !ctx.CurrentIs(TokenEOF) {
			switch ctx.Current().Kind {
			case TokenLParen:
				depth++
			case TokenRParen:
				depth--
				if depth == 0 {
					ctx.Advance()
					return
				}
			}
			ctx.Advance()
		}
	}
}

func skipAnnotationsAndModifiers(ctx *ParseContext) {
	for {
		if ctx.CurrentIs(TokenAt) && ctx.Peek(1).Kind != TokenInterface {
			skipAnnotation(ctx)
			continue
		}
		if isModifier(ctx.Current().Kind, ctx.Level()) {
			ctx.Advance()
			continue
		}
		return
	}
}

// skipAngles advances past a balanced angle-bracket section; shift tokens
// count as two or three closers.
func skipAngles(ctx *ParseContext) {
	depth := 0
	for !ctx.CurrentIs(TokenEOF) {
		switch ctx.Current().Kind {
		case TokenLT:
			depth++
		case TokenGT:
			depth--
		case TokenRShift:
			depth -= 2
		case TokenURShift:
			depth -= 3
		case TokenSemicolon, TokenLBrace, TokenRBrace:
			return
		}
		ctx.Advance()
		if depth <= 0 {
			return
		}
	}
}

// skipType advances past one type reference, reporting whether one was
// present.
func skipType(ctx *ParseContext) bool {
	for ctx.CurrentIs(TokenAt) {
		skipAnnotation(ctx)
	}
	cur := ctx.Current().Kind
	if primitiveTypeKinds[cur] || cur == TokenVoid {
		ctx.Advance()
	} else if ctx.IsIdentifierLike() {
		ctx.Advance()
		for {
			if ctx.CurrentIs(TokenLT) {
				skipAngles(ctx)
				continue
			}
			if ctx.CurrentIs(TokenDot) &&
				(ctx.Peek(1).Kind == TokenIdent || ctx.Peek(1).Kind.IsContextual()) {
				ctx.Advance()
				ctx.Advance()
				continue
			}
			break
		}
	} else {
		return false
	}
	for ctx.CurrentIs(TokenLBracket) && ctx.Peek(1).Kind == TokenRBracket {
		ctx.Advance()
		ctx.Advance()
	}
	if ctx.CurrentIs(TokenEllipsis) {
		ctx.Advance()
	}
	return true
}
