package dfa

import (
	"fmt"
	"io"
)

// Dump writes a deterministic text listing of every state in d to w: its
// accepting status/output value and its non-empty byte transitions. It is
// a read-only debug observer (spec.md §6); no consumer depends on its
// exact format.
func Dump(w io.Writer, d *DFA) {
	fmt.Fprintf(w, "DFA: %d states, start=%d\n", d.NumStates(), d.Start())
	for i := 0; i < d.NumStates(); i++ {
		s := d.State(StateID(i))
		fmt.Fprintf(w, "  state %d:", i)
		if s.Accepting() {
			fmt.Fprintf(w, " accept(%d)", s.OutputValue())
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
