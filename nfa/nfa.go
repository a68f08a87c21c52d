// Package nfa implements Thompson's construction (spec.md §4.3): it
// compiles one or many ast.Node trees into a single nondeterministic
// finite automaton with epsilon transitions, whose accepting states
// remember which input expression they belong to.
//
// The package follows the teacher's dense-transition-table state design
// (nfa.State/nfa.Builder in the coregx-coregex package this repository is
// adapted from) generalized from a single-pattern 256-way byte-range
// table to an explicit epsilon-transition bitset per state, since this
// grammar's Or/OneOf/combined-expression constructions need true
// multi-target epsilon fan-out rather than a binary split.
package nfa

import (
	"fmt"

	"github.com/coregx/lexgen/bitset"
)

// MaxStates is the hard cap on the number of states an NFA may contain
// (spec.md §4.3, §6). Exceeding it during a build is a BuildError.
const MaxStates = 64

// StateID addresses a State within an NFA by its index.
type StateID int

// NoState is the sentinel meaning "no transition / unmapped", per
// spec.md §6. It is a negative value, deliberately outside the valid
// [0, numStates) index range.
const NoState StateID = -1

// State is one state of the NFA: a dense transition table indexed by the
// 256 input bytes, a set of epsilon-transition targets, and — for
// accepting states — the output value of the expression it accepts.
type State struct {
	transitions [256]StateID
	epsilon     bitset.Bitset
	accepting   bool
	outputValue int
}

// Transition returns the successor state for input byte c, or NoState if
// the state has no transition on c.
func (s *State) Transition(c byte) StateID {
	return s.transitions[c]
}

// Epsilon returns the set of states reachable from s via a single
// epsilon transition.
func (s *State) Epsilon() bitset.Bitset {
	return s.epsilon
}

// Accepting reports whether s is an accepting state.
func (s *State) Accepting() bool {
	return s.accepting
}

// OutputValue returns the output value recorded at an accepting state.
// Its result is meaningful only when Accepting() is true.
func (s *State) OutputValue() int {
	return s.outputValue
}

// NFA is an array of States addressed by StateID, plus the index of the
// single start state (always 0). It is produced by Build/BuildSingle and
// consumed read-only by the dfa package.
type NFA struct {
	states []State
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int {
	return len(n.states)
}

// Start returns the index of the start state. It is always 0, per
// spec.md §3.
func (n *NFA) Start() StateID {
	return 0
}

// State returns a pointer to the state at id. Panics if id is out of
// range — an out-of-bounds StateID reaching this accessor is a
// programmer error, not a recoverable condition (spec.md §7 class 2).
func (n *NFA) State(id StateID) *State {
	if id < 0 || int(id) >= len(n.states) {
		panic(fmt.Sprintf("nfa: state id %d out of range [0, %d)", id, len(n.states)))
	}
	return &n.states[id]
}
