package cmd

import (
	"errors"
	"fmt"
	"time"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/export"
	"github.com/zhubert/tally/internal/sheet"
	"github.com/zhubert/tally/internal/ui/modals"
	"github.com/zhubert/tally/internal/workbook"
)

var importFile string

var importCmd = &cobra.Command{
	Use:   "import [template-id]",
	Short: "Add a sheet from a built-in template or a file",
	Long: `Appends a sheet to the workbook and makes it active.

With a template id (template-1, template-2, template-3) the built-in template
is copied. With --file a sheet is read from a .json, .yaml or .yml file. With
neither, an interactive picker lists the templates.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFile, "file", "", "Read the sheet from a JSON or YAML file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importFile != "" && len(args) > 0 {
		return fmt.Errorf("give a template id or --file, not both")
	}

	tpl, err := resolveImport(args)
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

	book, _ := store.Load()
	book, err = importSheet(store, book, tpl, time.Now())
	if err != nil {
		return err
	}
	active := book.Active()
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as %s\n", active.Name, active.ID)
	return nil
}

// resolveImport picks the sheet to import from the arguments, --file, or
// the interactive picker.
func resolveImport(args []string) (sheet.Sheet, error) {
	switch {
	case importFile != "":
		return export.ReadSheetFile(importFile)
	case len(args) == 1:
		return sheet.Template(args[0])
	default:
		id, err := pickTemplate()
		if err != nil {
			return sheet.Sheet{}, err
		}
		return sheet.Template(id)
	}
}

// pickTemplate asks which built-in template to import.
func pickTemplate() (string, error) {
	templates := sheet.Templates()
	options := make([]huh.Option[string], len(templates))
	for i, t := range templates {
		options[i] = huh.NewOption(fmt.Sprintf("%s - %s", t.Name, t.Title), t.ID)
	}
	id := templates[0].ID

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Import template").
				Options(options...).
				Value(&id),
		),
	).WithTheme(modals.ModalTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", fmt.Errorf("import cancelled")
		}
		return "", err
	}
	return id, nil
}

// importSheet appends tpl to book, activates it and saves the workbook.
func importSheet(store *workbook.Store, book workbook.Workbook, tpl sheet.Sheet, now time.Time) (workbook.Workbook, error) {
	book = book.Import(tpl, now)
	if err := store.Save(book); err != nil {
		return book, fmt.Errorf("error saving workbook: %w", err)
	}
	return book, nil
}
