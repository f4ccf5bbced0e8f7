package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "aksoscript",
	Short: "akso-script evaluator and static type analyzer",
	Long: `aksoscript evaluates and analyzes akso-script definition graphs.

akso-script is a small, purely-functional expression language whose
programs arrive pre-built as a JSON graph of named definitions rather
than source text. This tool reads such a graph and either evaluates one
or more top-level identifiers to concrete values, or statically analyzes
them to report their inferred types.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print each identifier to stderr as it is processed")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
