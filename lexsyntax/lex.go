package lexsyntax

// MaxExprLength is the hard cap on an expression's length after escape
// processing (spec.md §6). Violating it is a ParseError, since it is a
// property of caller-supplied input rather than an internal invariant.
const MaxExprLength = 100

// MaxTokensPerExpr is the hard cap on the number of tokens a single
// expression may tokenize to (spec.md §6).
const MaxTokensPerExpr = 100

// MaxStringLen is the hard cap on the length of a single STRING token's
// payload (spec.md §6).
const MaxStringLen = 100

// tokenize scans expr into a flat token sequence terminated by an End
// token, following spec.md §4.2's tokenization rule: a STRING token
// accumulates consecutive non-operator characters; an operator character
// flushes the current string buffer (if non-empty), then emits the
// operator token. A backslash escapes the next character verbatim
// (including operator characters) and is itself never emitted, grounded
// on EnnnOK-matcher/lex.go's identical accumulate-then-flush tokenizer.
// maxTokens overrides MaxTokensPerExpr for this call, so a caller (lexgen's
// Config) can impose a stricter-than-default cap.
func tokenize(expr string, maxTokens int) ([]Token, error) {
	length := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '\\' {
			i++ // an escape pair counts as one character
		}
		length++
	}
	if length > MaxExprLength {
		return nil, &ParseError{Expr: expr, Pos: MaxExprLength, Message: "expression exceeds maximum length"}
	}

	var tokens []Token
	var buf []byte
	bufStart := 0

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if len(buf) > MaxStringLen {
			panic("lexsyntax: STRING token exceeds MaxStringLen")
		}
		tokens = append(tokens, Token{Kind: StringTok, Text: string(buf), Pos: bufStart})
		buf = nil
	}

	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == '\\':
			if i+1 >= len(expr) {
				return nil, &ParseError{Expr: expr, Pos: i, Message: "trailing backslash with nothing to escape"}
			}
			if len(buf) == 0 {
				bufStart = i
			}
			buf = append(buf, expr[i+1])
			i += 2
		case isOperator(c):
			flush()
			tokens = append(tokens, Token{Kind: operatorChars[c], Pos: i})
			i++
		default:
			if len(buf) == 0 {
				bufStart = i
			}
			buf = append(buf, c)
			i++
		}
		if len(tokens) > maxTokens {
			return nil, &ParseError{Expr: expr, Pos: i, Message: "expression exceeds maximum token count"}
		}
	}
	flush()
	if len(tokens) > maxTokens {
		return nil, &ParseError{Expr: expr, Pos: len(expr), Message: "expression exceeds maximum token count"}
	}
	tokens = append(tokens, Token{Kind: End, Pos: len(expr)})
	return tokens, nil
}

func isOperator(c byte) bool {
	_, ok := operatorChars[c]
	return ok
}
