// Package main provides the CLI entrypoint for varbindgen.
//
// varbindgen is a codegen tool that:
//   - Parses Go packages (go/types) to find variable-annotated fields
//   - Validates candidates and resolves their option/suggestion sources
//   - Generates one companion bindings file per containing type
//   - Reports precise, source-attributed diagnostics
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "varbindgen",
	Short: "Variable binding code generator",
	Long:  "varbindgen generates variable binding accessors and bulk helpers for annotated struct fields.",
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(candidatesCmd)

	rootCmd.PersistentFlags().String("config", "", "path to varbindgen.toml (default: ./varbindgen.toml when present)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
