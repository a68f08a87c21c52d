package nfa

import "fmt"

// BuildError reports a failure while constructing an NFA: currently only
// capacity overflow (spec.md §4.3: "The NFA has a hard capacity (64
// states); exceeding it is a build-time error"). Grounded on the
// teacher's nfa.BuildError, which pairs a message with the state at
// which construction failed.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa build error: %s", e.Message)
}
