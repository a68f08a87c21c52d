// Package ast defines the abstract syntax tree produced by the regular
// expression parser and consumed (read-only) by the NFA builder.
//
// Node uses a discriminated-struct idiom (one struct, a Kind field, and
// payload fields that are only valid for specific kinds) rather than one
// Go type per variant. Exhaustive handling is achieved by switching on Kind
// at each consumer, the way the nfa package's Thompson construction
// switches on Node.Kind.
package ast

import "fmt"

// Kind identifies which of the eight AST variants a Node represents.
type Kind uint8

const (
	// Sequence is concatenation of one or more nodes, left to right.
	Sequence Kind = iota
	// Or is alternation between a left and a right node.
	Or
	// Optional matches its child zero or one times.
	Optional
	// ZeroOrMore is the Kleene star: its child zero or more times.
	ZeroOrMore
	// OneOrMore matches its child one or more times.
	OneOrMore
	// String matches an exact literal character sequence.
	String
	// OneOf is a set-literal alternation among its children (bracket list).
	OneOf
	// Range matches any single character in an inclusive range.
	Range
)

// String returns a human-readable name for the Kind, used by the Dump
// pretty-printer and in error messages.
func (k Kind) String() string {
	switch k {
	case Sequence:
		return "Sequence"
	case Or:
		return "Or"
	case Optional:
		return "Optional"
	case ZeroOrMore:
		return "ZeroOrMore"
	case OneOrMore:
		return "OneOrMore"
	case String:
		return "String"
	case OneOf:
		return "OneOf"
	case Range:
		return "Range"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MaxChildren is the hard cap on the number of children a Sequence or
// OneOf node may hold (spec.md §6).
const MaxChildren = 100

// Node is one node of the regular-expression AST. All child links are
// owning; a Node tree is never a DAG. Only the fields relevant to Kind are
// populated — e.g. Literal is meaningful only when Kind == String.
type Node struct {
	Kind Kind

	// Children holds the ordered operands of Sequence (N >= 1) and OneOf
	// (N >= 1).
	Children []*Node

	// Child holds the single operand of Optional, ZeroOrMore, OneOrMore.
	Child *Node

	// Left and Right hold the operands of Or, and (after validation) the
	// lower/upper bound of Range — each a one-character String node.
	Left, Right *Node

	// Literal holds the exact character sequence of a String node. Never
	// empty: the grammar requires len >= 1.
	Literal string
}

// NewSequence builds a Sequence node over children. Panics if children is
// empty — the parser never produces an empty Sequence (spec.md: "An empty
// Sequence is not produced at the top level... empty Sequence bodies
// inside (...) are rejected" during parsing, before this constructor runs).
func NewSequence(children []*Node) *Node {
	if len(children) == 0 {
		panic("ast: Sequence requires at least one child")
	}
	if len(children) > MaxChildren {
		panic(fmt.Sprintf("ast: Sequence exceeds MaxChildren (%d)", MaxChildren))
	}
	return &Node{Kind: Sequence, Children: children}
}

// NewOr builds an Or node with the given left and right operands.
func NewOr(left, right *Node) *Node {
	return &Node{Kind: Or, Left: left, Right: right}
}

// NewOptional builds an Optional node wrapping child.
func NewOptional(child *Node) *Node {
	return &Node{Kind: Optional, Child: child}
}

// NewZeroOrMore builds a ZeroOrMore node wrapping child.
func NewZeroOrMore(child *Node) *Node {
	return &Node{Kind: ZeroOrMore, Child: child}
}

// NewOneOrMore builds a OneOrMore node wrapping child.
func NewOneOrMore(child *Node) *Node {
	return &Node{Kind: OneOrMore, Child: child}
}

// NewString builds a String node for a literal character sequence. Panics
// if literal is empty.
func NewString(literal string) *Node {
	if literal == "" {
		panic("ast: String requires a non-empty literal")
	}
	return &Node{Kind: String, Literal: literal}
}

// NewOneOf builds a OneOf node over its ordered alternatives. Panics if
// alternatives is empty.
func NewOneOf(alternatives []*Node) *Node {
	if len(alternatives) == 0 {
		panic("ast: OneOf requires at least one alternative")
	}
	if len(alternatives) > MaxChildren {
		panic(fmt.Sprintf("ast: OneOf exceeds MaxChildren (%d)", MaxChildren))
	}
	return &Node{Kind: OneOf, Children: alternatives}
}

// NewRange builds a Range node. lo and hi must each be a one-character
// String node with lo.Literal[0] <= hi.Literal[0]; callers that cannot
// guarantee this (e.g. the parser, before validation) should build the
// Node literal directly and rely on Validate to catch violations.
func NewRange(lo, hi *Node) *Node {
	return &Node{Kind: Range, Left: lo, Right: hi}
}
