package lexgen

import "fmt"

// SpecError wraps a failure that occurred while compiling one named
// Spec, identifying which one so a caller driving a multi-pattern
// lexicon can report which entry is malformed. Grounded on the
// teacher's CompileError (pattern + wrapped cause).
type SpecError struct {
	// Name is the offending Spec's Name.
	Name string
	// Index is the offending Spec's position in the input slice.
	Index int
	// Err is the underlying *lexsyntax.ParseError. Build errors of the
	// combined NFA or DFA belong to no single Spec and are returned by
	// GenerateLexer unwrapped.
	Err error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("spec %d (%q): %s", e.Index, e.Name, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}
