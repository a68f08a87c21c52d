// Command lexgen drives the compilation pipeline (lexsyntax -> nfa -> dfa)
// from a YAML lexicon file, following the teacher's root-package-as-
// library / cmd-as-thin-CLI split (coregx-coregex keeps regex.go's public
// API free of any I/O, leaving every CLI concern to callers).
package main

import "github.com/projectdiscovery/gologger"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// gologger's Fatal level terminates the process itself.
		gologger.Fatal().Msgf("%v", err)
	}
}
