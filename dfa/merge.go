package dfa

// mergeEquivalentStates compacts states by repeatedly folding together
// any two states that are observationally equal, per spec.md §4.4: two
// DFA states are equal when they share accepting, outputValue, and all
// 256 transition targets exactly. This is an equivalence-merge
// optimization, not Myhre-Nerode minimization (spec.md explicitly scopes
// out Hopcroft-style partition refinement).
//
// On each merge: every transition pointing at j is rewritten to point at
// i; slot j is then overwritten with the current last state, and every
// transition pointing at that last slot is rewritten to point at j, so
// the state count can shrink by exactly one without leaving a hole.
// Scanning resumes at the same j (the state swapped into j may itself be
// equivalent to i), and the whole scan repeats to a fixpoint: termination
// is guaranteed because the live state count strictly decreases on every
// merge.
func mergeEquivalentStates(states []State) []State {
	n := len(states)
	for {
		mergedThisPass := false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !statesEqual(states[i], states[j]) {
					continue
				}
				redirect(states, n, StateID(j), StateID(i))

				last := n - 1
				if j != last {
					states[j] = states[last]
					redirect(states, n, StateID(last), StateID(j))
				}
				n--
				mergedThisPass = true
				j-- // rescan this index; the swapped-in state may also equal i
			}
		}
		if !mergedThisPass {
			break
		}
	}
	return states[:n]
}

func statesEqual(a, b State) bool {
	return a.accepting == b.accepting &&
		a.outputValue == b.outputValue &&
		a.transitions == b.transitions
}

// redirect rewrites every transition among the first n live states that
// points at "from" to instead point at "to".
func redirect(states []State, n int, from, to StateID) {
	for k := 0; k < n; k++ {
		for c := 0; c < 256; c++ {
			if states[k].transitions[c] == from {
				states[k].transitions[c] = to
			}
		}
	}
}
