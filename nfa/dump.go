package nfa

import (
	"fmt"
	"io"
)

// Dump writes a deterministic text listing of every state in n to w: its
// accepting status/output value, its epsilon targets, and its non-empty
// byte transitions. It is a read-only debug observer (spec.md §6); no
// consumer depends on its exact format.
func Dump(w io.Writer, n *NFA) {
	fmt.Fprintf(w, "NFA: %d states, start=%d\n", n.NumStates(), n.Start())
	for i := 0; i < n.NumStates(); i++ {
		s := n.State(StateID(i))
		fmt.Fprintf(w, "  state %d:", i)
		if s.Accepting() {
			fmt.Fprintf(w, " accept(%d)", s.OutputValue())
		}
		if !s.Epsilon().IsEmpty() {
			fmt.Fprintf(w, " eps->%s", s.Epsilon())
		}
		fmt.Fprintln(w)
		for c := 0; c < 256; c++ {
			if t := s.Transition(byte(c)); t != NoState {
				fmt.Fprintf(w, "    %s -> %d\n", byteLabel(byte(c)), t)
			}
		}
	}
}

func byteLabel(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return fmt.Sprintf("%q", string(c))
	}
	return fmt.Sprintf("0x%02x", c)
}
