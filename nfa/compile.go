package nfa

import "github.com/coregx/lexgen/ast"

// frag is an NFA fragment under construction: an entry state and an
// exit state, with exactly one way in and one way out, following
// Thompson's construction. Grounded on the teacher pack's frag-and-patch
// idiom (EnnnOK-matcher/matcher.go's frag{start, out}); generalized here
// so "patching" is just adding an epsilon edge to the builder instead of
// rewriting a pending out-arrow list, since every state already carries
// an epsilon-target bitset rather than a single placeholder successor.
type frag struct {
	entry, exit StateID
}

// buildNode recursively compiles n's Thompson fragment into b, following
// the per-variant shapes of spec.md §4.3 exactly.
func buildNode(b *Builder, n *ast.Node) (frag, error) {
	switch n.Kind {
	case ast.String:
		return buildString(b, n.Literal)
	case ast.Sequence:
		return buildSequence(b, n.Children)
	case ast.Or:
		return buildOr(b, n.Left, n.Right)
	case ast.Optional:
		return buildOptional(b, n.Child)
	case ast.ZeroOrMore:
		return buildZeroOrMore(b, n.Child)
	case ast.OneOrMore:
		return buildOneOrMore(b, n.Child)
	case ast.OneOf:
		return buildOneOf(b, n.Children)
	case ast.Range:
		return buildRange(b, n.Left.Literal[0], n.Right.Literal[0])
	default:
		return frag{}, &BuildError{Message: "unknown AST node kind during NFA construction"}
	}
}

// buildString: literal c0c1...cn-1 chains n+1 states with byte
// transitions, no epsilon edges.
func buildString(b *Builder, literal string) (frag, error) {
	entry, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	cur := entry
	for i := 0; i < len(literal); i++ {
		next, err := b.AddState()
		if err != nil {
			return frag{}, err
		}
		b.AddTransition(cur, literal[i], next)
		cur = next
	}
	return frag{entry: entry, exit: cur}, nil
}

// buildSequence chains each child's fragment to the next via an epsilon
// edge from child_i.exit to child_{i+1}.entry.
func buildSequence(b *Builder, children []*ast.Node) (frag, error) {
	first, err := buildNode(b, children[0])
	if err != nil {
		return frag{}, err
	}
	prev := first
	for _, c := range children[1:] {
		next, err := buildNode(b, c)
		if err != nil {
			return frag{}, err
		}
		b.AddEpsilon(prev.exit, next.entry)
		prev = next
	}
	return frag{entry: first.entry, exit: prev.exit}, nil
}

// buildOr: new entry E and exit X; epsilon E->L.entry, E->R.entry,
// L.exit->X, R.exit->X.
func buildOr(b *Builder, left, right *ast.Node) (frag, error) {
	l, err := buildNode(b, left)
	if err != nil {
		return frag{}, err
	}
	r, err := buildNode(b, right)
	if err != nil {
		return frag{}, err
	}
	e, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	x, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	b.AddEpsilon(e, l.entry)
	b.AddEpsilon(e, r.entry)
	b.AddEpsilon(l.exit, x)
	b.AddEpsilon(r.exit, x)
	return frag{entry: e, exit: x}, nil
}

// buildOptional: new E, X; epsilon E->X (skip), E->C.entry, C.exit->X.
func buildOptional(b *Builder, child *ast.Node) (frag, error) {
	c, err := buildNode(b, child)
	if err != nil {
		return frag{}, err
	}
	e, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	x, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	b.AddEpsilon(e, x)
	b.AddEpsilon(e, c.entry)
	b.AddEpsilon(c.exit, x)
	return frag{entry: e, exit: x}, nil
}

// buildZeroOrMore: new E, X; epsilon E->X, E->C.entry, C.exit->X,
// C.exit->C.entry (loop back).
func buildZeroOrMore(b *Builder, child *ast.Node) (frag, error) {
	c, err := buildNode(b, child)
	if err != nil {
		return frag{}, err
	}
	e, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	x, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	b.AddEpsilon(e, x)
	b.AddEpsilon(e, c.entry)
	b.AddEpsilon(c.exit, x)
	b.AddEpsilon(c.exit, c.entry)
	return frag{entry: e, exit: x}, nil
}

// buildOneOrMore: new E, X; epsilon E->C.entry, C.exit->X,
// C.exit->C.entry. No skip edge from E to X.
func buildOneOrMore(b *Builder, child *ast.Node) (frag, error) {
	c, err := buildNode(b, child)
	if err != nil {
		return frag{}, err
	}
	e, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	x, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	b.AddEpsilon(e, c.entry)
	b.AddEpsilon(c.exit, x)
	b.AddEpsilon(c.exit, c.entry)
	return frag{entry: e, exit: x}, nil
}

// buildOneOf: new E, X; for each alternative: epsilon E->a.entry,
// a.exit->X.
func buildOneOf(b *Builder, alternatives []*ast.Node) (frag, error) {
	e, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	x, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	for _, alt := range alternatives {
		a, err := buildNode(b, alt)
		if err != nil {
			return frag{}, err
		}
		b.AddEpsilon(e, a.entry)
		b.AddEpsilon(a.exit, x)
	}
	return frag{entry: e, exit: x}, nil
}

// buildRange: new E, X; for every byte c in [lo, hi], a direct
// transition E --c--> X.
func buildRange(b *Builder, lo, hi byte) (frag, error) {
	e, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	x, err := b.AddState()
	if err != nil {
		return frag{}, err
	}
	for c := int(lo); c <= int(hi); c++ {
		b.AddTransition(e, byte(c), x)
	}
	return frag{entry: e, exit: x}, nil
}

// BuildSingle Thompson-constructs the NFA for a single expression tree
// with the given output value, per spec.md §4.3's "Wrapping": a fresh
// start S and accepting state A, with S -ε-> body.entry and
// body.exit -ε-> A. No per-branch dispatch hop is used, since there is
// only one branch.
func BuildSingle(tree *ast.Node, outputValue int) (*NFA, error) {
	b := NewBuilder()
	start, err := b.AddState()
	if err != nil {
		return nil, err
	}
	body, err := buildNode(b, tree)
	if err != nil {
		return nil, err
	}
	accept, err := b.AddState()
	if err != nil {
		return nil, err
	}
	b.SetAccepting(accept, outputValue)
	b.AddEpsilon(start, body.entry)
	b.AddEpsilon(body.exit, accept)
	return b.Build(), nil
}

// Build Thompson-constructs the combined NFA for an ordered list of
// expression trees, per spec.md §4.3's "Combined NFA": one shared start
// state S; for each expression i, a per-branch dispatch state D_i and an
// accepting state A_i (outputValue = i), with S -ε-> D_i -ε-> body_i.entry
// and body_i.exit -ε-> A_i. The dispatch hop isolates each branch and
// preserves the input order for priority tie-breaking downstream in the
// DFA.
func Build(trees []*ast.Node) (*NFA, error) {
	b := NewBuilder()
	start, err := b.AddState()
	if err != nil {
		return nil, err
	}
	for i, tree := range trees {
		dispatch, err := b.AddState()
		if err != nil {
			return nil, err
		}
		b.AddEpsilon(start, dispatch)

		body, err := buildNode(b, tree)
		if err != nil {
			return nil, err
		}

		accept, err := b.AddState()
		if err != nil {
			return nil, err
		}
		b.SetAccepting(accept, i)
		b.AddEpsilon(dispatch, body.entry)
		b.AddEpsilon(body.exit, accept)
	}
	return b.Build(), nil
}
