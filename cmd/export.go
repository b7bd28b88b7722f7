package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/export"
	"github.com/zhubert/tally/internal/workbook"
)

var (
	exportFormat  string
	exportSheetID string
	exportOutDir  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a sheet to a JSON, CSV or XLSX file",
	Long: `Exports one sheet without opening the TUI. The active sheet is used
unless --sheet names another. Files are written to the configured export
directory unless --out is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatJSON), "Export format: json, csv or xlsx")
	exportCmd.Flags().StringVarP(&exportSheetID, "sheet", "s", "", "Sheet id to export (default: the active sheet)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "Output directory (default: export_dir from the config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	dir := exportOutDir
	if dir == "" {
		dir = cfg.GetExportDir()
	}
	book, _ := store.Load()
	path, err := exportSheet(book, exportSheetID, format, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

// exportSheet writes sheet id (or the active sheet when id is empty) to dir.
func exportSheet(book workbook.Workbook, id string, format export.Format, dir string) (string, error) {
	s := book.Active()
	if id != "" {
		var err error
		if s, err = book.Sheet(id); err != nil {
			return "", err
		}
	}
	return export.WriteFile(dir, s, format)
}
