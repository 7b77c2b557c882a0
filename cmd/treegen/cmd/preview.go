package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/treegen/internal/tree/ast"
	"github.com/msto63/treegen/internal/tree/parser"
)

var (
	previewFormat string
	previewASCII  bool
	previewStrict bool
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Parse a tree diagram and show the resulting structure",
	Long: `Parses a tree diagram without touching the filesystem and prints the
structure that create would produce. The diagram is read from the given
file, or from stdin when no file (or "-") is given.

The output format is a normalized tree rendering by default; --format
json or yaml emit the structure for further processing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewFormat, "format", "f", "text", "output format: text, json or yaml")
	previewCmd.Flags().BoolVar(&previewASCII, "ascii", false, "render with ASCII connectors")
	previewCmd.Flags().BoolVar(&previewStrict, "strict", false, "reject entries nested under a file instead of inferring a directory")
}

// previewEntry is the serializable shape of one parsed node
type previewEntry struct {
	Name     string         `json:"name" yaml:"name"`
	Kind     string         `json:"kind" yaml:"kind"`
	Children []previewEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

func toPreviewEntries(nodes []*ast.Node) []previewEntry {
	if len(nodes) == 0 {
		return nil
	}
	entries := make([]previewEntry, len(nodes))
	for i, node := range nodes {
		entries[i] = previewEntry{
			Name:     node.Name,
			Kind:     node.Kind.String(),
			Children: toPreviewEntries(node.Children),
		}
	}
	return entries
}

func runPreview(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	p := parser.New(parser.Options{
		Logger:      logger,
		StrictKinds: previewStrict,
	})
	forest, err := p.Parse(text)
	if err != nil {
		printError("parsing failed", err)
		return err
	}

	out := cmd.OutOrStdout()

	switch previewFormat {
	case "text":
		ascii := previewASCII || appConfig.GetBool("render.ascii", false)
		fmt.Fprint(out, ast.RenderWithOptions(forest, ast.RenderOptions{ASCII: ascii}))
		fmt.Fprintln(out, ast.Count(forest).String())

	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toPreviewEntries(forest)); err != nil {
			return err
		}

	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(toPreviewEntries(forest)); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", previewFormat)
	}

	return nil
}
