package main

import (
	"github.com/fatih/color"
	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/coregx/lexgen"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <lexicon.yaml>",
		Short: "Validate that a lexicon compiles, without emitting a dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := loadLexicon(args[0])
			if err != nil {
				return err
			}
			if _, err := lexgen.GenerateLexer(specs); err != nil {
				color.Red("%v", err)
				return err
			}
			gologger.Info().Msgf("%s: %d pattern(s) compile cleanly", args[0], len(specs))
			return nil
		},
	}
	return cmd
}
