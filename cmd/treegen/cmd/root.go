package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/treegen/foundation/core/config"
	"github.com/msto63/treegen/foundation/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig *config.Config
	logger    *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "treegen",
	Short: "treegen - turn tree diagrams into real directory structures",
	Long: `treegen parses the tree diagrams found in READMEs, design documents
and the output of the tree command, and creates the corresponding
directories and empty files on disk.

Commands:
  create    - create the structure from a tree diagram
  preview   - parse a diagram and show what would be created
  snapshot  - render an existing directory as a tree diagram
  tui       - interactive terminal session`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./treegen.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text or console")
}

// setup loads the configuration and wires the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.Discover()
	}
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	level := log.LevelWarn
	if s := appConfig.GetString("log.level"); s != "" {
		level, err = log.ParseLevel(s)
		if err != nil {
			return err
		}
	}
	if verbose {
		level = log.LevelDebug
	}

	formatName := appConfig.GetString("log.format", "console")
	if logFormat != "" {
		formatName = logFormat
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger = log.New().
		WithName("treegen").
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr)
	log.SetDefault(logger)

	return nil
}

// readInput returns the tree text from the file argument or stdin
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("cannot read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	return string(data), nil
}

// parseMode converts an octal permission string like "755" into a FileMode
func parseMode(s string, fallback os.FileMode) (os.FileMode, error) {
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission mode %q: %w", s, err)
	}
	return os.FileMode(v), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
