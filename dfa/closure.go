package dfa

import (
	"github.com/coregx/lexgen/bitset"
	"github.com/coregx/lexgen/nfa"
)

// epsilonClosure returns the smallest set of NFA states containing s that
// is closed under following epsilon transitions, per spec.md §4.4:
// implemented by iterating a worklist until no new member is added. The
// result always includes s itself.
func epsilonClosure(n *nfa.NFA, s nfa.StateID) bitset.Bitset {
	var closure bitset.Bitset
	closure.Insert(int(s))

	worklist := []nfa.StateID{s}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		n.State(cur).Epsilon().Iterate(func(i int) {
			if !closure.Contains(i) {
				closure.Insert(i)
				worklist = append(worklist, nfa.StateID(i))
			}
		})
	}
	return closure
}
