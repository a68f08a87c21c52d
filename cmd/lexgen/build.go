package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/coregx/lexgen"
)

func newBuildCmd() *cobra.Command {
	var dump bool
	var out string

	cmd := &cobra.Command{
		Use:   "build <lexicon.yaml>",
		Short: "Compile a lexicon into a lexer DFA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := loadLexicon(args[0])
			if err != nil {
				return err
			}
			gologger.Info().Msgf("loaded %d pattern(s) from %s", len(specs), args[0])

			d, err := lexgen.GenerateLexer(specs)
			if err != nil {
				color.Red("build failed: %v", err)
				return err
			}
			gologger.Info().Msgf("%s built: %d states",
				color.GreenString("DFA"), d.NumStates())

			if !dump {
				return nil
			}
			rendered, err := marshalDFA(d)
			if err != nil {
				return fmt.Errorf("rendering dump: %w", err)
			}
			if out == "" {
				_, err = os.Stdout.Write(rendered)
				return err
			}
			return os.WriteFile(out, rendered, 0o644)
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "write the DFA's state table as YAML")
	cmd.Flags().StringVar(&out, "out", "", "destination file for --dump (default: stdout)")
	return cmd
}
