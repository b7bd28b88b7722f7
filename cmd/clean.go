package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/ui/modals"
	"github.com/zhubert/tally/internal/workbook"
)

var skipConfirm bool

// clearLogs is swapped out in tests.
var clearLogs = logger.ClearLogs

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the saved workbook and log files",
	Long: `Deletes the stored workbook snapshot so the next start shows the
built-in sheets, and removes tally's log files.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !skipConfirm {
		ok, err := confirm(fmt.Sprintf("Delete the workbook stored at %s?", cfg.GetStoragePath()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	store, kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	return clean(cmd.OutOrStdout(), store)
}

// confirm asks a yes/no question. Aborting the prompt counts as no.
func confirm(prompt string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Keep").
				Value(&ok),
		),
	).WithTheme(modals.ModalTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// clean removes the snapshot and the log files, reporting to out.
func clean(out io.Writer, store *workbook.Store) error {
	if err := store.Clear(); err != nil {
		return fmt.Errorf("error clearing workbook: %w", err)
	}
	fmt.Fprintln(out, "Workbook cleared.")

	logsCleared, err := clearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "Removed %d log file(s).\n", logsCleared)
	}
	return nil
}
