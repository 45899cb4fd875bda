// Command spagc is a thin demonstration CLI over the core compilers: it
// loads a scanner source and a set of BNF grammar sources from a YAML file
// and reports the compiled DFA/LL(1) table summaries. The CLI, its config
// loading and its logging are explicitly out of scope for the core
// (spec.md §1); this package is the "generator"-side consumer the core's
// read-only artifact interface (spec.md §6.3) is designed for.
//
// Grounded on projectdiscovery/alterx/cmd/alterx/main.go (gologger usage)
// and opal-lang-opal's cobra root-command tree shape.
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/spag/spag/bnf"
	"github.com/spag/spag/config"
	"github.com/spag/spag/grammar"
	"github.com/spag/spag/scanner"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "spagc",
		Short: "Compile regex scanner sets and BNF grammars",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFilePath, "path to the YAML input file")
	root.AddCommand(scanCmd(), parseCmd(), sampleCmd())

	if err := root.Execute(); err != nil {
		gologger.Fatal().Msgf("%v", err)
		os.Exit(1)
	}
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [input]",
		Short: "Compile the configured scanner, optionally classifying one input string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.NewConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", configPath, err)
			}
			if spec.Scanner == nil {
				return fmt.Errorf("%s declares no scanner", configPath)
			}

			d, shadows, err := scanner.Compile(spec.Scanner.ToSource())
			if err != nil {
				return err
			}
			for _, s := range shadows {
				gologger.Warning().Msgf("pattern %q is shadowed by earlier-declared %q on overlapping input", s.Shadowed, s.Winner)
			}
			gologger.Info().Msgf("compiled scanner %q: %d states, %d-character alphabet",
				d.Name(), d.NumStates(), len(d.Alphabet()))

			if len(args) == 1 {
				if name, ok := d.AcceptedAs(args[0]); ok {
					gologger.Info().Msgf("%q accepted as %s", args[0], name)
				} else {
					gologger.Info().Msgf("%q rejected", args[0])
				}
			}
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse",
		Short: "Compile every configured BNF grammar into an LL(1) table",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := config.NewConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading %s: %w", configPath, err)
			}
			if len(spec.Grammars) == 0 {
				return fmt.Errorf("%s declares no grammars", configPath)
			}

			for _, gc := range spec.Grammars {
				src, err := gc.ToSource()
				if err != nil {
					return fmt.Errorf("grammar %q: %w", gc.Name, err)
				}
				g, err := bnf.Internalize(src)
				if err != nil {
					return fmt.Errorf("grammar %q: %w", gc.Name, err)
				}
				table, err := grammar.Compile(g)
				if err != nil {
					return fmt.Errorf("grammar %q: %w", gc.Name, err)
				}
				gologger.Info().Msgf("grammar %q: %d nonterminals, %d terminals, %d productions",
					table.Name(), len(table.Nonterminals()), len(table.Terminals()), len(table.Productions()))
				for _, c := range table.Conflicts() {
					gologger.Warning().Msgf("LL(1) conflict at (%s, %s): productions %v", c.Nonterminal, c.Terminal, c.Productions)
				}
			}
			return nil
		},
	}
}

func sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Write a worked example input file to the configured path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.GenerateSample(configPath); err != nil {
				return err
			}
			gologger.Info().Msgf("wrote sample configuration to %s", configPath)
			return nil
		},
	}
}
