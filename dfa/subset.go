package dfa

import (
	"github.com/coregx/lexgen/bitset"
	"github.com/coregx/lexgen/nfa"
)

// Build converts n into a DFA via full power-set-keyed subset
// construction (spec.md §4.4's "Optional upgrade", implemented here as
// the only construction this package offers): each DFA state is keyed by
// its epsilon-closed power set of NFA states, not by a seed NFA index, so
// the seed-keyed variant's non-deterministic-transition conflict cannot
// arise at all. A power set whose accepting members disagree on output
// value is resolved by priority (lowest value wins, see stateFor) rather
// than treated as a build failure.
//
// After subset construction, Build runs the equivalence-merge
// compaction pass (spec.md §4.4) before returning.
func Build(n *nfa.NFA) (*DFA, error) {
	b := &builder{nfa: n, powerSetIndex: make(map[bitset.Bitset]StateID)}

	startClosure := epsilonClosure(n, n.Start())
	if _, err := b.stateFor(startClosure); err != nil {
		return nil, err
	}

	for len(b.queue) > 0 {
		cur := b.queue[0]
		b.queue = b.queue[1:]
		curSet := b.powerSets[cur]

		for c := 0; c < 256; c++ {
			var union bitset.Bitset
			curSet.Iterate(func(i int) {
				q := n.State(nfa.StateID(i))
				if t := q.Transition(byte(c)); t != nfa.NoState {
					union = union.Union(epsilonClosure(n, t))
				}
			})
			if union.IsEmpty() {
				continue
			}
			target, err := b.stateFor(union)
			if err != nil {
				return nil, err
			}
			b.states[cur].transitions[c] = target
		}
	}

	states := mergeEquivalentStates(b.states)
	return &DFA{states: states}, nil
}

// builder holds the in-progress subset construction: the states
// allocated so far, a map from power-set identity to the DFA state that
// represents it (so revisiting the same power set is O(1) instead of
// re-exploring it), and a worklist of states whose transitions have not
// yet been computed.
type builder struct {
	nfa           *nfa.NFA
	states        []State
	powerSets     map[StateID]bitset.Bitset
	powerSetIndex map[bitset.Bitset]StateID
	queue         []StateID
}

// stateFor returns the DFA state representing power set ps, allocating
// and enqueueing a new one if ps has not been seen before. Returns a
// *BuildError only if allocating would exceed MaxStates.
//
// When more than one accepting NFA state coincides in ps with differing
// output values, the lowest output value wins (spec.md §8 scenario 5:
// "on tie at length 1, index-0 wins"; §9's "Longest-match / priority
// semantics": "Priority ordering falls out of recording the lowest
// expression index at each accepting DFA state"). This is the
// priority-wins policy spec.md permits as an alternative to treating
// every such coincidence as a BuildError; adopting it is required for
// scenarios 4 and 5 to build at all, since a shorter, lower-priority
// pattern's acceptance coinciding with a longer pattern's interior state
// is not itself an authoring mistake.
func (b *builder) stateFor(ps bitset.Bitset) (StateID, error) {
	if id, ok := b.powerSetIndex[ps]; ok {
		return id, nil
	}
	if len(b.states) >= MaxStates {
		return NoState, &BuildError{Message: "DFA exceeds maximum state count"}
	}

	accepting := false
	outputValue := 0
	ps.Iterate(func(i int) {
		q := b.nfa.State(nfa.StateID(i))
		if !q.Accepting() {
			return
		}
		if !accepting || q.OutputValue() < outputValue {
			accepting = true
			outputValue = q.OutputValue()
		}
	})

	id := StateID(len(b.states))
	st := State{accepting: accepting, outputValue: outputValue}
	for i := range st.transitions {
		st.transitions[i] = NoState
	}
	b.states = append(b.states, st)

	if b.powerSets == nil {
		b.powerSets = make(map[StateID]bitset.Bitset)
	}
	b.powerSets[id] = ps
	b.powerSetIndex[ps] = id
	b.queue = append(b.queue, id)
	return id, nil
}
