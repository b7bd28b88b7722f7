package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/tally/internal/demo"
	"github.com/zhubert/tally/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay scripted demos of tally",
	Long: `Replay scripted demos of tally against built-in sheets, without touching
the saved workbook.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print its frames
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available demo scenarios:")
		fmt.Fprintln(out)
		for _, s := range scenarios.All() {
			fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
		}
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print its frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 120, "Terminal width")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 40, "Terminal height")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'tally demo list' to see available scenarios", name)
	}

	// Work on a copy so flag overrides don't leak into the registry
	s := *scenario
	if demoWidth > 0 {
		s.Width = demoWidth
	}
	if demoHeight > 0 {
		s.Height = demoHeight
	}
	return &s, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	frames, err := demo.NewExecutor(execCfg).Run(scenario)
	if err != nil {
		return nil, fmt.Errorf("error running scenario: %w", err)
	}
	return frames, nil
}

// demoWriter returns --output when set, out otherwise, and a closer for it.
func demoWriter(out io.Writer, fallback string) (io.Writer, string, func() error, error) {
	path := demoOutput
	if path == "" {
		path = fallback
	}
	if path == "" {
		return out, "", func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, path, f.Close, nil
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}
	frames, err := executeScenario(scenario)
	if err != nil {
		return err
	}

	w, _, closeFn, err := demoWriter(cmd.OutOrStdout(), "")
	if err != nil {
		return err
	}
	if err := demo.WriteFrames(w, frames); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]
	scenario, err := getScenario(scenarioName)
	if err != nil {
		return err
	}
	frames, err := executeScenario(scenario)
	if err != nil {
		return err
	}

	w, path, closeFn, err := demoWriter(cmd.OutOrStdout(), scenarioName+".cast")
	if err != nil {
		return err
	}
	if err := demo.GenerateASCIICast(w, frames, scenario.Width, scenario.Height, "tally "+scenarioName); err != nil {
		closeFn()
		return fmt.Errorf("error generating cast file: %w", err)
	}
	if err := closeFn(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", path, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", path)
	return nil
}
