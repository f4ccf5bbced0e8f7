package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-aksoscript/internal/analyzer"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

var analyzeConfigPath string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <graph.json> [ident...]",
	Short: "Statically infer the type of one or more top-level identifiers",
	Long: `Read a JSON definition graph and print "id :: signature" for the
given top-level identifiers. With no identifiers, every top-level
identifier in the graph is analyzed.

Examples:
  aksoscript analyze program.json main
  aksoscript analyze program.json --config local.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "optional YAML config file (form-value overrides)")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	layer, cfg, err := loadGraphAndConfig(args[0], analyzeConfigPath)
	if err != nil {
		exitWithError("%v", err)
	}

	formTypes := formValueTyper(cfg.FormValueLookup())
	layers := []graph.Layer{layer}

	ids := args[1:]
	exitCode := 0
	if len(ids) == 0 {
		reports := analyzer.AnalyzeAll(layers, formTypes)
		names := make([]string, 0, len(reports))
		byName := make(map[string]*analyzer.Report, len(reports))
		for id, r := range reports {
			names = append(names, id.String())
			byName[id.String()] = r
		}
		sort.Strings(names)
		for _, name := range names {
			if !printReport(name, byName[name]) {
				exitCode = 1
			}
		}
	} else {
		for _, name := range ids {
			if verbose {
				fmt.Fprintf(os.Stderr, "analyzing %s\n", name)
			}
			r := analyzer.Analyze(layers, graph.Name(name), formTypes)
			if !printReport(name, r) {
				exitCode = 1
			}
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func printReport(name string, r *analyzer.Report) bool {
	if !r.Valid {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, r.Err)
		return false
	}
	fmt.Printf("%s :: %s\n", name, r.Type.Signature())
	if tags := sortedTags(r.DefTypes); len(tags) > 0 {
		fmt.Printf("  tags: %s\n", strings.Join(tags, ", "))
	}
	if names := sortedNames(r.StdUsage); len(names) > 0 {
		fmt.Printf("  stdlib: %s\n", strings.Join(names, ", "))
	}
	return true
}

func sortedTags(tags map[graph.Tag]struct{}) []string {
	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return out
}

func sortedNames(names map[string]struct{}) []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
