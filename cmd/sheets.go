package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/workbook"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List the sheets in the workbook",
	Long: `Lists every sheet with its id, tab name, title and row count.
The active sheet is marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: runSheets,
}

func init() {
	rootCmd.AddCommand(sheetsCmd)
}

func runSheets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	book, status := store.Load()
	if status == workbook.DefaultCorrupt || status == workbook.DefaultReadError {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", status)
	}
	return listSheets(cmd.OutOrStdout(), book)
}

// listSheets writes one aligned line per sheet.
func listSheets(w io.Writer, book workbook.Workbook) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tTITLE\tROWS")
	for _, s := range book.Sheets() {
		mark := ""
		if s.ID == book.ActiveID() {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", mark, s.ID, s.Name, s.Title, len(s.Rows))
	}
	return tw.Flush()
}
