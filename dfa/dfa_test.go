package dfa

import (
	"testing"

	"github.com/coregx/lexgen/ast"
	"github.com/coregx/lexgen/nfa"
)

func mustNFA(t *testing.T, tree *ast.Node, outputValue int) *nfa.NFA {
	t.Helper()
	n, err := nfa.BuildSingle(tree, outputValue)
	if err != nil {
		t.Fatalf("unexpected NFA build error: %v", err)
	}
	return n
}

// driveDFA walks d from its start state over input, following spec.md's
// definition of how the external runtime would consult transitions; it
// returns the final state reached, or NoState if the walk falls off the
// automaton partway through.
func driveDFA(d *DFA, input string) StateID {
	cur := d.Start()
	for i := 0; i < len(input); i++ {
		cur = d.State(cur).Transition(input[i])
		if cur == NoState {
			return NoState
		}
	}
	return cur
}

func TestSubsetConstructionMatchesLiteral(t *testing.T) {
	n := mustNFA(t, ast.NewSequence([]*ast.Node{ast.NewString("ab")}), 0)
	d, err := Build(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	end := driveDFA(d, "ab")
	if end == NoState || !d.State(end).Accepting() || d.State(end).OutputValue() != 0 {
		t.Fatalf("expected \"ab\" to reach an accepting state with output 0")
	}
	if got := driveDFA(d, "a"); got != NoState && d.State(got).Accepting() {
		t.Fatal("did not expect \"a\" alone to be accepting")
	}
}

func TestDeterminismOfTransitions(t *testing.T) {
	tree := ast.NewSequence([]*ast.Node{
		ast.NewString("a"),
		ast.NewZeroOrMore(ast.NewOr(ast.NewString("b"), ast.NewString("c"))),
		ast.NewString("d"),
	})
	n := mustNFA(t, tree, 0)
	d, err := Build(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < d.NumStates(); i++ {
		s := d.State(StateID(i))
		for c := 0; c < 256; c++ {
			target := s.Transition(byte(c))
			if target != NoState && (int(target) < 0 || int(target) >= d.NumStates()) {
				t.Fatalf("state %d char %d: transition target %d out of range", i, c, target)
			}
		}
	}
}

func TestStarPlusThenLiteral(t *testing.T) {
	// a(b|c)*d -- scenario 3 from spec.md §8.
	tree := ast.NewSequence([]*ast.Node{
		ast.NewString("a"),
		ast.NewZeroOrMore(ast.NewOr(ast.NewString("b"), ast.NewString("c"))),
		ast.NewString("d"),
	})
	n := mustNFA(t, tree, 0)
	d, err := Build(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, good := range []string{"ad", "abd", "abcbd", "abcbcbd"} {
		end := driveDFA(d, good)
		if end == NoState || !d.State(end).Accepting() {
			t.Fatalf("expected %q to be accepted", good)
		}
	}
	end := driveDFA(d, "ae")
	if end != NoState && d.State(end).Accepting() {
		t.Fatal("did not expect \"ae\" to be accepted")
	}
}

func TestDigitPlus(t *testing.T) {
	// [0-9]+ -- scenario 2 from spec.md §8.
	tree := ast.NewOneOrMore(ast.NewRange(ast.NewString("0"), ast.NewString("9")))
	n := mustNFA(t, tree, 0)
	d, err := Build(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	end := driveDFA(d, "00042")
	if end == NoState || !d.State(end).Accepting() {
		t.Fatal("expected \"00042\" to be accepted")
	}
	end = driveDFA(d, "")
	if end != NoState && d.State(end).Accepting() {
		t.Fatal("did not expect the empty string to be accepted by [0-9]+")
	}
}

func TestConflictingOutputsPriorityWins(t *testing.T) {
	// Two identical expressions with different output values collapse
	// into the same power set at every step; spec.md §8 permits resolving
	// this by priority (lowest output value) rather than failing the
	// build, and requires it for scenarios 4 and 5 to build at all.
	trees := []*ast.Node{
		ast.NewSequence([]*ast.Node{ast.NewString("abc")}),
		ast.NewSequence([]*ast.Node{ast.NewString("abc")}),
	}
	combined, err := nfa.Build(trees)
	if err != nil {
		t.Fatalf("unexpected NFA build error: %v", err)
	}
	d, err := Build(combined)
	if err != nil {
		t.Fatalf("expected conflicting outputs to resolve by priority, got error: %v", err)
	}
	end := driveDFA(d, "abc")
	if end == NoState || !d.State(end).Accepting() || d.State(end).OutputValue() != 0 {
		t.Fatalf("expected \"abc\" to accept with the lower output value 0")
	}
}

func TestEquivalenceMergeFixpoint(t *testing.T) {
	trees := []*ast.Node{
		ast.NewSequence([]*ast.Node{ast.NewString("int")}),
		ast.NewOneOrMore(ast.NewRange(ast.NewString("a"), ast.NewString("z"))),
	}
	n, err := nfa.Build(trees)
	if err != nil {
		t.Fatalf("unexpected NFA build error: %v", err)
	}
	d, err := Build(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < d.NumStates(); i++ {
		for j := i + 1; j < d.NumStates(); j++ {
			if statesEqual(*d.State(StateID(i)), *d.State(StateID(j))) {
				t.Fatalf("states %d and %d are equal after merging; fixpoint not reached", i, j)
			}
		}
	}
}

func TestLongestMatchLastIntVsIdentifier(t *testing.T) {
	// "int" vs "[a-z]+", input "integer" -- scenario 4 from spec.md §8:
	// the runtime picks the longest match, but the DFA itself just needs
	// to keep both branches reachable and expose the right output value
	// at each accepting state it passes through.
	trees := []*ast.Node{
		ast.NewSequence([]*ast.Node{ast.NewString("int")}),
		ast.NewOneOrMore(ast.NewRange(ast.NewString("a"), ast.NewString("z"))),
	}
	n, err := nfa.Build(trees)
	if err != nil {
		t.Fatalf("unexpected NFA build error: %v", err)
	}
	d, err := Build(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cur := d.Start()
	var lastAcceptLen, lastAcceptValue int
	haveAccept := false
	input := "integer"
	for i := 0; i < len(input); i++ {
		cur = d.State(cur).Transition(input[i])
		if cur == NoState {
			break
		}
		if d.State(cur).Accepting() {
			haveAccept = true
			lastAcceptLen = i + 1
			lastAcceptValue = d.State(cur).OutputValue()
		}
	}
	if !haveAccept {
		t.Fatal("expected at least one accepting prefix while scanning \"integer\"")
	}
	if lastAcceptLen != len(input) || lastAcceptValue != 1 {
		t.Fatalf("expected longest match to be the full 7-char identifier (output 1), got len=%d value=%d",
			lastAcceptLen, lastAcceptValue)
	}
}
