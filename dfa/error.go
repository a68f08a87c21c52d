package dfa

import "fmt"

// BuildError reports a failure during DFA construction: capacity
// overflow (spec.md §4.4). Conflicting output values within one power
// set are not a BuildError — the lowest output value wins, per
// stateFor's priority-wins policy. Grounded on the teacher's dfa/lazy
// error conventions (a plain message-carrying error type, no wrapped
// cause needed since the DFA builder never calls into code that returns
// foreign errors).
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("dfa build error: %s", e.Message)
}
