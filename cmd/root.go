package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/app"
	"github.com/zhubert/tally/internal/clipboard"
	"github.com/zhubert/tally/internal/config"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/storage"
	"github.com/zhubert/tally/internal/workbook"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Spreadsheet-style job request tracker for the terminal",
	Long: `Tally is a TUI for tracking job requests in a spreadsheet-style grid.
Sheets live in tabs, cells are edited in place, and columns can be grouped
under colored action headers. The workbook is saved after every change.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to "+logger.DefaultLogPath)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.tally/config.json)")
}

func initConfig() {
	if quietMode {
		logger.SetLevel(logger.LevelWarn)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("tally %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("tally %s\n", version)
}

// loadConfig reads --config when given, the default location otherwise.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured key-value backend and wraps it as a sheet
// store. The caller closes the returned storage.Store.
func openStore(cfg *config.Config) (*workbook.Store, storage.Store, error) {
	kv, err := storage.OpenConfigured(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening storage: %w", err)
	}
	logger.WithComponent("cmd").Debug("opened storage",
		"backend", cfg.GetStorageBackend(), "path", cfg.GetStoragePath())
	return workbook.NewStore(kv), kv, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	store, kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	clipboard.Init()

	m := app.New(cfg, store, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
