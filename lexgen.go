// Package lexgen is the public façade over the compilation pipeline:
// parse each pattern (lexsyntax), Thompson-construct a combined NFA
// (nfa), then subset-construct and merge a DFA (dfa) — the three stages
// of spec.md §2. It mirrors the teacher's root regex.go, which exposes
// Compile/MustCompile as the single entry point over its own nfa/dfa
// internals.
package lexgen

import (
	"fmt"

	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/lexsyntax"
	"github.com/coregx/lexgen/nfa"
)

// GenerateLexer compiles an ordered list of Specs into a single DFA,
// per spec.md §2/§6: pattern i's output value at every accepting state
// it reaches is i, with the lowest index winning where patterns coincide.
// Returns a *SpecError wrapping a *lexsyntax.ParseError for a malformed
// pattern, or a *nfa.BuildError/*dfa.BuildError if the combined automaton
// would exceed its configured capacity.
func GenerateLexer(specs []Spec, opts ...Option) (*dfa.DFA, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	trees := make([]*ast.Node, len(specs))
	for i, s := range specs {
		if len(s.Pattern) > cfg.MaxExprLength {
			return nil, &SpecError{
				Name:  s.Name,
				Index: i,
				Err: &lexsyntax.ParseError{
					Expr:    s.Pattern,
					Pos:     cfg.MaxExprLength,
					Message: "pattern exceeds configured maximum length",
				},
			}
		}
		tree, err := lexsyntax.ParseWithMaxTokens(s.Pattern, cfg.MaxTokensPerExpr)
		if err != nil {
			return nil, &SpecError{Name: s.Name, Index: i, Err: err}
		}
		if n := widestChildren(tree); n > cfg.MaxSequenceChildren {
			return nil, &SpecError{
				Name:  s.Name,
				Index: i,
				Err: &lexsyntax.ParseError{
					Expr: s.Pattern, Pos: 0,
					Message: fmt.Sprintf(
						"a Sequence/OneOf has %d children, exceeding configured maximum %d",
						n, cfg.MaxSequenceChildren),
				},
			}
		}
		trees[i] = tree
	}

	combined, err := nfa.Build(trees)
	if err != nil {
		return nil, err
	}
	if combined.NumStates() > cfg.MaxNFAStates {
		return nil, &nfa.BuildError{Message: fmt.Sprintf(
			"combined NFA has %d states, exceeding configured maximum %d",
			combined.NumStates(), cfg.MaxNFAStates)}
	}

	d, err := dfa.Build(combined)
	if err != nil {
		return nil, err
	}
	if d.NumStates() > cfg.MaxDFAStates {
		return nil, &dfa.BuildError{Message: fmt.Sprintf(
			"DFA has %d states, exceeding configured maximum %d",
			d.NumStates(), cfg.MaxDFAStates)}
	}
	return d, nil
}

// widestChildren returns the largest Children slice length found among a
// Sequence or OneOf node anywhere in tree, used to enforce a
// Config.MaxSequenceChildren narrower than ast.MaxChildren.
func widestChildren(n *ast.Node) int {
	widest := len(n.Children)
	if n.Child != nil {
		if w := widestChildren(n.Child); w > widest {
			widest = w
		}
	}
	if n.Left != nil {
		if w := widestChildren(n.Left); w > widest {
			widest = w
		}
	}
	if n.Right != nil {
		if w := widestChildren(n.Right); w > widest {
			widest = w
		}
	}
	for _, c := range n.Children {
		if w := widestChildren(c); w > widest {
			widest = w
		}
	}
	return widest
}
