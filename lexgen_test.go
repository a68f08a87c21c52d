package lexgen

import (
	"testing"

	"github.com/coregx/lexgen/dfa"
)

// scanLongest drives d over input the way a conforming runtime consumer
// would (spec.md §9, "Longest-match / priority semantics"): track the
// latest accepting state visited, and report its (outputValue, length)
// once the scan can no longer advance. This helper lives in the test
// file, not the library, since spec.md §1 scopes match evaluation out of
// this core entirely.
func scanLongest(d *dfa.DFA, input string) (output, length int, matched bool) {
	cur := d.Start()
	for i := 0; i < len(input); i++ {
		cur = d.State(cur).Transition(input[i])
		if cur == dfa.NoState {
			break
		}
		if d.State(cur).Accepting() {
			matched = true
			output = d.State(cur).OutputValue()
			length = i + 1
		}
	}
	return
}

func compile(t *testing.T, patterns ...string) *dfa.DFA {
	t.Helper()
	specs := make([]Spec, len(patterns))
	for i, p := range patterns {
		specs[i] = Spec{Name: p, Pattern: p}
	}
	d, err := GenerateLexer(specs)
	if err != nil {
		t.Fatalf("GenerateLexer(%v): unexpected error: %v", patterns, err)
	}
	return d
}

func TestScenarioIntChar(t *testing.T) {
	d := compile(t, "int", "char")
	input := "intchar"

	out, length, ok := scanLongest(d, input)
	if !ok || out != 0 || length != 3 {
		t.Fatalf("first token: got (%d,%d,%v), want (0,3,true)", out, length, ok)
	}
	out, length, ok = scanLongest(d, input[length:])
	if !ok || out != 1 || length != 4 {
		t.Fatalf("second token: got (%d,%d,%v), want (1,4,true)", out, length, ok)
	}
}

func TestScenarioDigitPlus(t *testing.T) {
	d := compile(t, "[0-9]+")
	out, length, ok := scanLongest(d, "00042")
	if !ok || out != 0 || length != 5 {
		t.Fatalf("got (%d,%d,%v), want (0,5,true)", out, length, ok)
	}
}

func TestScenarioStarGroupThenLiteral(t *testing.T) {
	d := compile(t, "a(b|c)*d")
	if out, length, ok := scanLongest(d, "abcbd"); !ok || out != 0 || length != 5 {
		t.Fatalf("\"abcbd\": got (%d,%d,%v), want (0,5,true)", out, length, ok)
	}
	if out, length, ok := scanLongest(d, "ad"); !ok || out != 0 || length != 2 {
		t.Fatalf("\"ad\": got (%d,%d,%v), want (0,2,true)", out, length, ok)
	}
	if _, _, ok := scanLongest(d, "ae"); ok {
		t.Fatal("\"ae\": expected no match")
	}
}

func TestScenarioIntVsIdentifierLongestWins(t *testing.T) {
	d := compile(t, "int", "[a-z]+")
	out, length, ok := scanLongest(d, "integer")
	if !ok || out != 1 || length != 7 {
		t.Fatalf("got (%d,%d,%v), want (1,7,true)", out, length, ok)
	}
}

func TestScenarioTieBreakByIndex(t *testing.T) {
	d := compile(t, "a+", "a")
	out, length, ok := scanLongest(d, "aaa")
	if !ok || out != 0 || length != 3 {
		t.Fatalf("got (%d,%d,%v), want (0,3,true)", out, length, ok)
	}
}

func TestScenarioNestedGroupsAndOneOf(t *testing.T) {
	d := compile(t, "ba(g|d|[h,2])?(ab(hg)+)*")
	cases := []struct {
		in     string
		length int
	}{
		{"ba", 2},
		{"bagabhg", 7},
		{"bah", 3},
	}
	for _, c := range cases {
		out, length, ok := scanLongest(d, c.in)
		if !ok || out != 0 || length != c.length {
			t.Fatalf("input %q: got (%d,%d,%v), want (0,%d,true)", c.in, out, length, ok, c.length)
		}
	}
}

func TestNegativeStackedPostfix(t *testing.T) {
	_, err := GenerateLexer([]Spec{{Name: "bad", Pattern: "a**"}})
	if err == nil {
		t.Fatal("expected an error for stacked postfix \"a**\"")
	}
}

func TestNegativeBadRange(t *testing.T) {
	_, err := GenerateLexer([]Spec{{Name: "bad", Pattern: "[a-]"}})
	if err == nil {
		t.Fatal("expected an error for a range missing its right endpoint")
	}
}

func TestNegativeUnterminatedList(t *testing.T) {
	_, err := GenerateLexer([]Spec{{Name: "bad", Pattern: "["}})
	if err == nil {
		t.Fatal("expected an error for an unterminated '['")
	}
}

func TestConflictingOutputsBuildsWithLowerIndexWinning(t *testing.T) {
	// spec.md §8 negative scenario 4 is conditional: a BuildError unless
	// the implementation adopts priority-wins, in which case the lower
	// index must be chosen. This package adopts priority-wins (required
	// for scenarios 4 and 5 above to build at all), so two identical
	// patterns must compile, with the first spec's output value winning.
	d := compile(t, "abc", "abc")
	out, length, ok := scanLongest(d, "abc")
	if !ok || out != 0 || length != 3 {
		t.Fatalf("got (%d,%d,%v), want (0,3,true)", out, length, ok)
	}
}
