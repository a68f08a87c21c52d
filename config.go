package lexgen

// Config holds the compile-time limits applied while generating a
// lexer, in the teacher's Config/DefaultConfig idiom (coregx-coregex's
// meta.Config, a plain struct of tunables with a constructor that fills
// in spec-mandated defaults). Every field here defaults to the exact
// constant spec.md §6 names; Config exists so a caller can lower (never
// raise) those ceilings for their own embedding without this package
// hard-coding a single global constant.
type Config struct {
	// MaxExprLength is the maximum byte length of a single pattern
	// string, per spec.md §4.2.
	MaxExprLength int
	// MaxTokensPerExpr is the maximum number of tokens a single pattern
	// may tokenize into, per spec.md §4.2.
	MaxTokensPerExpr int
	// MaxSequenceChildren is the maximum number of children a Sequence
	// or OneOf AST node may hold, per spec.md §3.
	MaxSequenceChildren int
	// MaxNFAStates is the maximum number of states the combined NFA may
	// contain, per spec.md §4.3/§6.
	MaxNFAStates int
	// MaxDFAStates is the maximum number of states the resulting DFA may
	// contain, per spec.md §4.4/§6.
	MaxDFAStates int
}

// DefaultConfig returns the spec-mandated limits: 100 for every
// string/token/child ceiling, 64 for both automaton state caps.
func DefaultConfig() Config {
	return Config{
		MaxExprLength:       100,
		MaxTokensPerExpr:    100,
		MaxSequenceChildren: 100,
		MaxNFAStates:        64,
		MaxDFAStates:        64,
	}
}

// Option mutates a Config. Grounded on the teacher's functional-option
// pattern for Compile (coregx-coregex's regex.Option over Config).
type Option func(*Config)

// WithMaxExprLength overrides the maximum pattern length.
func WithMaxExprLength(n int) Option {
	return func(c *Config) { c.MaxExprLength = n }
}

// WithMaxTokensPerExpr overrides the maximum token count per pattern.
func WithMaxTokensPerExpr(n int) Option {
	return func(c *Config) { c.MaxTokensPerExpr = n }
}

// WithMaxSequenceChildren overrides the maximum Sequence/OneOf arity.
func WithMaxSequenceChildren(n int) Option {
	return func(c *Config) { c.MaxSequenceChildren = n }
}

// WithMaxNFAStates overrides the NFA capacity.
func WithMaxNFAStates(n int) Option {
	return func(c *Config) { c.MaxNFAStates = n }
}

// WithMaxDFAStates overrides the DFA capacity.
func WithMaxDFAStates(n int) Option {
	return func(c *Config) { c.MaxDFAStates = n }
}
