package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-aksoscript/internal/config"
	"github.com/cwbudde/go-aksoscript/internal/evaluator"
	"github.com/cwbudde/go-aksoscript/pkg/graph"
)

var (
	evalConfigPath string
)

var evalCmd = &cobra.Command{
	Use:   "eval <graph.json> [ident...]",
	Short: "Evaluate one or more top-level identifiers of a definition graph",
	Long: `Read a JSON definition graph and evaluate the given top-level
identifiers to concrete values. With no identifiers, every top-level
identifier in the graph is evaluated.

Examples:
  aksoscript eval program.json main
  aksoscript eval program.json --config local.yaml greeting farewell`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&evalConfigPath, "config", "", "optional YAML config file (halt timeout, form-value overrides)")
}

func runEval(_ *cobra.Command, args []string) error {
	layer, cfg, err := loadGraphAndConfig(args[0], evalConfigPath)
	if err != nil {
		return err
	}

	ids := args[1:]
	if len(ids) == 0 {
		for id := range layer {
			ids = append(ids, id.Text())
		}
	}

	getFormValue := formValueGetter(cfg.FormValueLookup())
	opts := evaluator.Options{ShouldHalt: cfg.HaltDeadline(), Debug: verbose}

	exitCode := 0
	for _, name := range ids {
		id := graph.Name(name)
		if verbose {
			fmt.Fprintf(os.Stderr, "evaluating %s\n", name)
		}
		v, err := evaluator.Evaluate([]graph.Layer{layer}, id, getFormValue, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			exitCode = 1
			continue
		}
		fmt.Printf("%s -> %s\n", name, v.String())
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func loadGraphAndConfig(graphPath, configPath string) (graph.Layer, *config.Config, error) {
	data, err := os.ReadFile(graphPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", graphPath, err)
	}
	layer, err := graph.DecodeLayer(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", graphPath, err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
	} else {
		cfg = &config.Config{}
	}
	return layer, cfg, nil
}
