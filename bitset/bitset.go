// Package bitset provides a fixed-width set of small non-negative integers
// backed by a single machine word.
//
// It is used throughout the compiler pipeline to represent epsilon-closures
// and DFA power sets, where the universe of values is bounded by the
// automaton state-count cap (see Width).
package bitset

import (
	"fmt"
	"math/bits"
)

// Width is the fixed capacity of a Bitset: the maximum member value plus one.
// It matches the hard NFA/DFA state-count cap enforced by the nfa and dfa
// packages.
const Width = 64

// Bitset is a set of integers in [0, Width) represented as a single 64-bit
// word. The zero value is the empty set.
type Bitset uint64

// New returns an empty Bitset.
func New() Bitset {
	return Bitset(0)
}

// Insert adds i to the set. It panics if i is outside [0, Width) — an
// out-of-range index is a programmer error, not a recoverable condition.
func (b *Bitset) Insert(i int) {
	checkRange(i)
	*b |= Bitset(1) << uint(i)
}

// Contains reports whether i is a member of the set. It panics if i is
// outside [0, Width).
func (b Bitset) Contains(i int) bool {
	checkRange(i)
	return b&(Bitset(1)<<uint(i)) != 0
}

// Iterate calls f once for every member of the set, in ascending order.
func (b Bitset) Iterate(f func(i int)) {
	for w := uint64(b); w != 0; {
		i := bits.TrailingZeros64(w)
		f(i)
		w &= w - 1 // clear the lowest set bit
	}
}

// Members returns the set's members as a sorted slice. It is a convenience
// wrapper around Iterate for callers that want a concrete slice (debug
// printers, tests).
func (b Bitset) Members() []int {
	members := make([]int, 0, b.Len())
	b.Iterate(func(i int) { members = append(members, i) })
	return members
}

// Len returns the number of members in the set.
func (b Bitset) Len() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether the set has no members.
func (b Bitset) IsEmpty() bool {
	return b == 0
}

// Union returns the set union of b and other, without modifying either.
func (b Bitset) Union(other Bitset) Bitset {
	return b | other
}

// Equal reports whether b and other contain exactly the same members.
func (b Bitset) Equal(other Bitset) bool {
	return b == other
}

// String renders the set as its ascending member list, e.g. "{0, 3, 5}".
func (b Bitset) String() string {
	s := "{"
	first := true
	b.Iterate(func(i int) {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%d", i)
	})
	return s + "}"
}

func checkRange(i int) {
	if i < 0 || i >= Width {
		panic(fmt.Sprintf("bitset: index %d out of range [0, %d)", i, Width))
	}
}
