package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/treegen/foundation/utils/filex"
	"github.com/msto63/treegen/internal/tree/executor"
	"github.com/msto63/treegen/internal/tree/parser"
)

var (
	createTarget   string
	createDryRun   bool
	createStrict   bool
	createOverlap  bool
	createDirMode  string
	createFileMode string
)

var createCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Create the directory structure from a tree diagram",
	Long: `Parses a tree diagram and creates the corresponding directories and
empty files under the target directory. The diagram is read from the
given file, or from stdin when no file (or "-") is given.

Existing paths are skipped and reported; the rest of the structure is
still created. With --dry-run nothing is written and the planned
actions are listed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createTarget, "target", "t", "", "target directory (default: current directory)")
	createCmd.Flags().BoolVarP(&createDryRun, "dry-run", "n", false, "show planned actions without creating anything")
	createCmd.Flags().BoolVar(&createStrict, "strict", false, "reject entries nested under a file instead of inferring a directory")
	createCmd.Flags().BoolVar(&createOverlap, "fail-existing", false, "treat existing paths as failures instead of skipping them")
	createCmd.Flags().StringVar(&createDirMode, "dir-mode", "", "octal permission mode for created directories (default 755)")
	createCmd.Flags().StringVar(&createFileMode, "file-mode", "", "octal permission mode for created files (default 644)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	target := createTarget
	if target == "" {
		target = appConfig.GetString("create.target", ".")
	}
	target, err = filex.ExpandPath(target)
	if err != nil {
		return fmt.Errorf("cannot resolve target: %w", err)
	}

	dirMode, err := parseMode(firstNonEmpty(createDirMode, appConfig.GetString("create.dir_mode")), executor.DefaultDirMode)
	if err != nil {
		return err
	}
	fileMode, err := parseMode(firstNonEmpty(createFileMode, appConfig.GetString("create.file_mode")), executor.DefaultFileMode)
	if err != nil {
		return err
	}

	p := parser.New(parser.Options{
		Logger:      logger,
		StrictKinds: createStrict,
	})
	forest, err := p.Parse(text)
	if err != nil {
		printError("parsing failed", err)
		return err
	}
	if len(forest) == 0 {
		return fmt.Errorf("no entries found in input")
	}

	engine, err := executor.New(executor.Options{
		Logger:       logger,
		TargetDir:    target,
		DryRun:       createDryRun,
		FailExisting: createOverlap || appConfig.GetBool("create.fail_existing", false),
		DirMode:      dirMode,
		FileMode:     fileMode,
	})
	if err != nil {
		return err
	}

	report, err := engine.Execute(cmd.Context(), forest)
	if err != nil {
		printError("execution failed", err)
		return err
	}

	printReport(cmd, report)

	if len(report.Failed) > 0 {
		return fmt.Errorf("%d entries could not be created", len(report.Failed))
	}
	return nil
}

// printReport writes the run outcome to stdout
func printReport(cmd *cobra.Command, report *executor.Report) {
	out := cmd.OutOrStdout()

	if report.DryRun || verbose {
		for _, action := range report.Actions() {
			if action.Reason != "" {
				fmt.Fprintf(out, "%-8s %s (%s)\n", action.Status, action.Path, action.Reason)
			} else {
				fmt.Fprintf(out, "%-8s %s\n", action.Status, action.Path)
			}
		}
	} else {
		for _, action := range report.Skipped {
			fmt.Fprintf(out, "skipped  %s (%s)\n", action.Path, action.Reason)
		}
		for _, action := range report.Failed {
			fmt.Fprintf(out, "failed   %s (%s)\n", action.Path, action.Reason)
		}
	}

	fmt.Fprintln(out, report.Summary())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
