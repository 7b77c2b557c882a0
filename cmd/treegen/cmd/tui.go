package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/treegen/foundation/utils/filex"
	"github.com/msto63/treegen/internal/tree/executor"
	"github.com/msto63/treegen/internal/tui"
)

var (
	tuiTarget string
	tuiASCII  bool
	tuiStrict bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal session",
	Long: `Starts the interactive terminal session: paste a tree diagram, pick
the target directory, inspect the preview and create the structure.

Navigation:
  Ctrl+D    - parse the pasted diagram
  Enter     - confirm the target directory
  c / d     - create / dry run from the preview
  Esc       - one view back
  Ctrl+C    - quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVarP(&tuiTarget, "target", "t", "", "pre-filled target directory")
	tuiCmd.Flags().BoolVar(&tuiASCII, "ascii", false, "render the preview with ASCII connectors")
	tuiCmd.Flags().BoolVar(&tuiStrict, "strict", false, "reject entries nested under a file instead of inferring a directory")
}

func runTUI(cmd *cobra.Command, args []string) error {
	target := tuiTarget
	if target == "" {
		target = appConfig.GetString("create.target", ".")
	}
	if expanded, err := filex.ExpandPath(target); err == nil {
		target = expanded
	}

	dirMode, err := parseMode(appConfig.GetString("create.dir_mode"), executor.DefaultDirMode)
	if err != nil {
		return err
	}
	fileMode, err := parseMode(appConfig.GetString("create.file_mode"), executor.DefaultFileMode)
	if err != nil {
		return err
	}

	err = tui.Run(tui.Options{
		Logger:       logger,
		TargetDir:    target,
		DirMode:      dirMode,
		FileMode:     fileMode,
		FailExisting: appConfig.GetBool("create.fail_existing", false),
		ASCII:        tuiASCII || appConfig.GetBool("render.ascii", false),
		StrictKinds:  tuiStrict,
	})
	if err != nil {
		printError("interactive session failed", err)
	}
	return err
}
