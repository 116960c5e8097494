package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/chatshell/internal/demo"
	"github.com/zhubert/chatshell/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
	demoPlain      bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of chatshell",
	Long: `Generate demo recordings of chatshell for documentation and presentations.

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
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default from scenario)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default from scenario)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}
	demoRunCmd.Flags().BoolVar(&demoPlain, "plain", false, "Strip ANSI escape sequences")
	demoCastCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file (default <scenario>.cast)")

	demoCmd.AddCommand(demoListCmd, demoRunCmd, demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func getScenario(name string) (*demo.Scenario, error) {
	base := scenarios.Get(name)
	if base == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'chatshell demo list' to see available scenarios", name)
	}

	// Copy so flag overrides do not leak into the shared scenario.
	scenario := *base
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	return &scenario, nil
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

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}
	frames, err := executeScenario(scenario)
	if err != nil {
		return err
	}
	return demo.WriteFrames(cmd.OutOrStdout(), frames, demoPlain)
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

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenarioName + ".cast"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := demo.GenerateASCIICast(f, frames, scenario.Width, scenario.Height); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)
	return nil
}
