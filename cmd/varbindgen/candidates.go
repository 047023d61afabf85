package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"varbind/internal/analyze"
	"varbind/internal/resolve"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates [patterns...]",
	Short: "List detected annotated fields without generating code",
	RunE:  runCandidates,
}

func init() {
	candidatesCmd.Flags().Bool("debug", false, "dump resolved generation info")
}

func runCandidates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	scan, err := analyze.Load(patterns...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, c := range scan.Candidates {
		fmt.Fprintf(out, "%s.%s", c.Type.FullName(), c.FieldName)

		switch {
		case c.NotExtensible:
			fmt.Fprint(out, " (not extensible)")
		case c.MissingObservable:
			fmt.Fprint(out, " (missing observable)")
		}

		if c.OptionsSource != "" {
			fmt.Fprintf(out, " options=%s", c.OptionsSource)
		}

		if c.SuggestionsSource != "" {
			fmt.Fprintf(out, " suggestions=%s", c.SuggestionsSource)
		}

		fmt.Fprintln(out)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		generations, diags := resolve.Resolve(scan.Candidates, scan.Catalog)
		printDiagnostics(cmd.ErrOrStderr(), diags)
		spew.Fdump(out, generations)
	}

	return nil
}
