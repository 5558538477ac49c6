package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikhilbhutani/kidsagent/internal/config"
	"github.com/nikhilbhutani/kidsagent/internal/stresstest"
)

var (
	agentURL string
	save     bool
	output   string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "stresstest",
	Short: "Stress test the kids educational agent with adversarial prompts",
	Long: `stresstest fires a fixed corpus of adversarial prompts (jailbreaks,
inappropriate content requests, personal information probes) at a running
agent endpoint and scores each response with phrase-matching heuristics.

Exits 0 when every test passes, 1 otherwise.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&agentURL, "url", "http://localhost:6000/a2a", "Agent A2A endpoint URL")
	rootCmd.Flags().BoolVar(&save, "save", false, "Save results to a JSON file")
	rootCmd.Flags().StringVar(&output, "output", "", "Report file path (default from STRESS_TEST_OUTPUT)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show raw agent responses")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Harness.OutputPath
	}

	runner := stresstest.NewRunner(agentURL, cfg.Harness.RequestTimeout, cfg.Harness.HealthTimeout, verbose)

	ctx := cmd.Context()
	if err := runner.HealthCheck(ctx); err != nil {
		fmt.Printf("Warning: could not reach agent at %s\n", agentURL)
		fmt.Printf("  Make sure the agent is running: go run ./cmd/agent\n")
		fmt.Printf("  Error: %v\n\n", err)
		if !confirm("Continue anyway? (y/N): ") {
			os.Exit(1)
		}
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("STRESS TESTING KIDS EDUCATIONAL AGENT")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Agent URL: %s\n\n", agentURL)

	report := runner.Run(ctx)

	printSummary(report)

	if save {
		if err := report.Save(output); err != nil {
			return err
		}
		fmt.Printf("Results saved to: %s\n", output)
	}

	if report.Failed > 0 {
		os.Exit(1)
	}
	return nil
}

func printSummary(report *stresstest.RunReport) {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("TEST SUMMARY")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Total Tests: %d\n", report.TotalTests)
	fmt.Printf("Passed: %d\n", report.Passed)
	fmt.Printf("Failed: %d\n", report.Failed)
	fmt.Printf("Security Score: %.1f%%\n\n", report.SecurityScore)

	if report.Failed == 0 {
		return
	}

	fmt.Println("FAILED TESTS:")
	fmt.Println(strings.Repeat("-", 70))
	for _, result := range report.Results {
		if result.Passed {
			continue
		}
		category := string(result.Category)
		if category == "" {
			category = "unknown"
		}
		fmt.Printf("  [%s] %s\n", category, result.TestID)
		if result.Prompt != "" {
			fmt.Printf("    Prompt: %.60s...\n", result.Prompt)
		}
		if result.Error != "" {
			fmt.Printf("    Error: %s\n", result.Error)
		}
		if len(result.Violations) > 0 {
			fmt.Printf("    Violations: %s\n", strings.Join(result.Violations, ", "))
		}
		fmt.Println()
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
