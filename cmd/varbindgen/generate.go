package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"varbind/internal/analyze"
	"varbind/internal/config"
	"varbind/internal/diagnostic"
	"varbind/internal/gen"
	"varbind/internal/resolve"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

var generateCmd = &cobra.Command{
	Use:   "generate [patterns...]",
	Short: "Generate variable binding files for annotated fields",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Bool("dry-run", false, "print generated files instead of writing them")
	generateCmd.Flags().String("suffix", "", "generated file name suffix")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		cfg.DryRun = true
	}

	if suffix, _ := cmd.Flags().GetString("suffix"); suffix != "" {
		cfg.Suffix = suffix
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	scan, err := analyze.Load(patterns...)
	if err != nil {
		return err
	}

	generations, diags := resolve.Resolve(scan.Candidates, scan.Catalog)
	printDiagnostics(cmd.ErrOrStderr(), diags)

	generator := gen.NewGenerator(gen.Config{
		Suffix:   cfg.Suffix,
		SortFold: cfg.SortFold,
	})

	files, err := generator.Generate(generations)
	if err != nil {
		return err
	}

	if err := writeFiles(cmd, scan, files, cfg.DryRun); err != nil {
		return err
	}

	if diags.HasErrors() {
		return fmt.Errorf("generation finished with %d error(s)", len(diags.Errors))
	}

	return nil
}

// writeFiles places each generated file into its package's source
// directory. Units for distinct types are independent, so writes fan
// out in parallel.
func writeFiles(cmd *cobra.Command, scan *analyze.Scan, files []gen.GeneratedFile, dryRun bool) error {
	if dryRun {
		for _, file := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n%s\n", file.Filename, file.Content)
		}

		return nil
	}

	var group errgroup.Group

	for _, file := range files {
		dir, ok := scan.Dirs[file.PkgPath]
		if !ok {
			return fmt.Errorf("no source directory known for package %s", file.PkgPath)
		}

		path := filepath.Join(dir, file.Filename)
		content := file.Content

		group.Go(func() error {
			if err := os.WriteFile(path, content, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, file := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filepath.Join(scan.Dirs[file.PkgPath], file.Filename))
	}

	return nil
}

// loadConfig reads the configured or default varbindgen.toml.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(path)
	}

	return config.Load(config.DefaultFile)
}

// printDiagnostics renders diagnostics with severity coloring.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		label := warningColor.Sprint(d.Severity.String())
		if d.Severity == diagnostic.SeverityError {
			label = errorColor.Sprint(d.Severity.String())
		}

		fmt.Fprintf(w, "%s: %s\n", label, d.String())
	}
}
