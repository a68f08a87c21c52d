package main

import (
	"gopkg.in/yaml.v3"

	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/internal/conv"
)

// dumpState and dumpDFA are the --dump artifact's on-disk shape: a
// compact state table keyed by numeric index, narrowing StateID (an int)
// to uint16 the way a serialized bytecode format would, since MaxStates
// (64) always fits. Grounded on the teacher's internal/conv narrowing
// helpers, adapted here from regex-engine internals to the one place
// this repository actually serializes a state table for an external
// reader.
type dumpState struct {
	Accepting   bool    `yaml:"accepting"`
	OutputValue int     `yaml:"output_value,omitempty"`
	Transitions []trans `yaml:"transitions,omitempty"`
}

type trans struct {
	Byte byte   `yaml:"byte"`
	To   uint16 `yaml:"to"`
}

type dumpDFA struct {
	Start  uint16      `yaml:"start"`
	States []dumpState `yaml:"states"`
}

// marshalDFA renders d as YAML for the --dump flag.
func marshalDFA(d *dfa.DFA) ([]byte, error) {
	out := dumpDFA{
		Start:  conv.IntToUint16(int(d.Start())),
		States: make([]dumpState, d.NumStates()),
	}
	for i := 0; i < d.NumStates(); i++ {
		s := d.State(dfa.StateID(i))
		ds := dumpState{Accepting: s.Accepting()}
		if s.Accepting() {
			ds.OutputValue = s.OutputValue()
		}
		for c := 0; c < 256; c++ {
			if t := s.Transition(byte(c)); t != dfa.NoState {
				ds.Transitions = append(ds.Transitions, trans{
					Byte: byte(c),
					To:   conv.IntToUint16(int(t)),
				})
			}
		}
		out.States[i] = ds
	}
	return yaml.Marshal(out)
}
