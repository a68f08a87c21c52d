package lexsyntax

import (
	"fmt"

	"github.com/coregx/lexgen/ast"
)

// parser holds a cursor into a token vector and the original expression
// text, so error reporting can quote the source. It implements
// one-token-lookahead recursive descent, the same pattern as the
// teacher's own hand-rolled parsing utilities (accept advances iff the
// head matches, expect advances or reports a ParseError).
type parser struct {
	tokens []Token
	pos    int
	expr   string

	// rangePos records, for each Range node built during this parse, the
	// byte position of the '-' token that introduced it. The post-parse
	// validation pass (ast.Validate) walks an already-built tree and has
	// no notion of source position; this side table lets Parse recover a
	// precise position for a ValidationError without threading position
	// fields through ast.Node itself.
	rangePos map[*ast.Node]int
}

// Parse tokenizes and parses expr into an AST, per the grammar in
// spec.md §4.2. Returns a *ParseError for malformed input. The token
// count is capped at the package default MaxTokensPerExpr; callers that
// need a stricter cap (e.g. lexgen's Config) should use ParseWithMaxTokens.
func Parse(expr string) (*ast.Node, error) {
	return ParseWithMaxTokens(expr, MaxTokensPerExpr)
}

// ParseWithMaxTokens is Parse with the token-count cap overridden to
// maxTokens, so a caller can impose a stricter-than-default limit.
func ParseWithMaxTokens(expr string, maxTokens int) (*ast.Node, error) {
	if expr == "" {
		return nil, &ParseError{Expr: expr, Pos: 0, Message: "expression must be non-empty"}
	}
	tokens, err := tokenize(expr, maxTokens)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, expr: expr, rangePos: make(map[*ast.Node]int)}

	root, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != End {
		return nil, p.errorf("unexpected token %s", p.peek())
	}

	if err := ast.Validate(root); err != nil {
		return nil, p.toParseError(err)
	}
	return root, nil
}

func (p *parser) toParseError(err error) error {
	if verr, ok := err.(*ast.ValidationError); ok {
		pos := p.rangePos[verr.Node]
		return &ParseError{Expr: p.expr, Pos: pos, Message: verr.Message}
	}
	return &ParseError{Expr: p.expr, Pos: 0, Message: err.Error()}
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) accept(kind TokenKind) (Token, bool) {
	if p.peek().Kind == kind {
		return p.advance(), true
	}
	return Token{}, false
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	if t, ok := p.accept(kind); ok {
		return t, nil
	}
	return Token{}, p.errorf("expected %s, got %s", kind, p.peek())
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Expr: p.expr, Pos: p.peek().Pos, Message: fmt.Sprintf(format, args...)}
}

// isSequenceEnd reports whether kind terminates a Sequence: end of input,
// or the closer of whichever bracket enclosed it.
func isSequenceEnd(kind TokenKind) bool {
	return kind == End || kind == RParen || kind == RBracket
}

// parseSequence implements Sequence → Component+, reading Components
// until End, ')', or ']'. Per spec.md: a Sequence always wraps its
// component(s), even a single one (the "Parser round-trip for strings"
// property requires a lone String to still arrive inside a Sequence).
func (p *parser) parseSequence() (*ast.Node, error) {
	var children []*ast.Node
	for !isSequenceEnd(p.peek().Kind) {
		c, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	if len(children) == 0 {
		return nil, p.errorf("expected a term, got %s", p.peek())
	}
	return ast.NewSequence(children), nil
}

// parseComponent implements Component → Factor ('|' Component)?,
// right-associative.
func (p *parser) parseComponent() (*ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(Pipe); ok {
		right, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		return ast.NewOr(left, right), nil
	}
	return left, nil
}

// parseFactor implements Factor → Term ('?' | '*' | '+')?. Postfix
// operators do not stack: after applying one, parseFactor returns
// immediately. A second postfix token left in the stream is not a valid
// Term, so the enclosing Sequence's next parseComponent call fails
// naturally at parseTerm with "expected a term" — this is how "a**" is
// rejected without any special-case stacking check.
func (p *parser) parseFactor() (*ast.Node, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.peek().Kind {
	case Question:
		p.advance()
		return ast.NewOptional(term), nil
	case Star:
		p.advance()
		return ast.NewZeroOrMore(term), nil
	case Plus:
		p.advance()
		return ast.NewOneOrMore(term), nil
	default:
		return term, nil
	}
}

// parseTerm implements Term → STRING | '(' Sequence ')' | '[' List ']'.
func (p *parser) parseTerm() (*ast.Node, error) {
	switch p.peek().Kind {
	case StringTok:
		t := p.advance()
		return ast.NewString(t.Text), nil
	case LParen:
		p.advance()
		seq, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return seq, nil
	case LBracket:
		p.advance()
		list, err := p.parseList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RBracket); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, p.errorf("expected a term (string, '(', or '['), got %s", p.peek())
	}
}

// parseList implements List → ListComponent (',' ListComponent)*.
func (p *parser) parseList() (*ast.Node, error) {
	var alts []*ast.Node
	first, err := p.parseListComponent()
	if err != nil {
		return nil, err
	}
	alts = append(alts, first)
	for {
		if _, ok := p.accept(Comma); !ok {
			break
		}
		next, err := p.parseListComponent()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	return ast.NewOneOf(alts), nil
}

// parseListComponent implements ListComp → STRING ('-' STRING)?.
func (p *parser) parseListComponent() (*ast.Node, error) {
	loTok, err := p.expect(StringTok)
	if err != nil {
		return nil, err
	}
	lo := ast.NewString(loTok.Text)
	if dash, ok := p.accept(Dash); ok {
		hiTok, err := p.expect(StringTok)
		if err != nil {
			return nil, err
		}
		hi := ast.NewString(hiTok.Text)
		rng := ast.NewRange(lo, hi)
		p.rangePos[rng] = dash.Pos
		return rng, nil
	}
	return lo, nil
}
