package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opsdiag/domain/diagnosis"
	"opsdiag/domain/intake"
	"opsdiag/domain/pattern"
	"opsdiag/internal/testkit"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsdiag-cli",
		Short: "Run the bottleneck diagnostic engine without a server or database",
	}

	rootCmd.AddCommand(
		newDiagnoseCmd(),
		newPatternsCmd(),
		newDemoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDiagnoseCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "diagnose <answers.json>",
		Short: "Diagnose a single questionnaire answer file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading answers: %w", err)
			}

			var answers map[string]any
			if err := json.Unmarshal(raw, &answers); err != nil {
				return fmt.Errorf("parsing answers: %w", err)
			}

			rs, err := intake.New(answers)
			if err != nil {
				return err
			}

			d := diagnosis.NewAssembler(nil).Assemble(rs)
			return printJSON(d, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", true, "indent the JSON output")
	return cmd
}

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the bottleneck pattern catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := pattern.Default()
			for _, key := range catalog.Keys() {
				p, _ := catalog.Get(key)
				fmt.Printf("%-35s %s (%d triggers)\n", p.Key, p.Name, len(p.Triggers))
			}
			return nil
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the engine over the built-in example submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			assembler := diagnosis.NewAssembler(nil)
			examples := []struct {
				name    string
				answers map[string]any
			}{
				{"time-bound service", testkit.TimeBoundAnswers()},
				{"decision-heavy service", testkit.DecisionHeavyAnswers()},
				{"founder-led sales", testkit.FounderLedAnswers()},
			}

			for _, ex := range examples {
				d := assembler.Assemble(testkit.MustResponses(ex.answers))
				fmt.Printf("=== %s ===\n", ex.name)
				fmt.Printf("track:     %s\n", d.Track)
				fmt.Printf("primary:   %s (score %d)\n", d.Match.Primary.Name, d.Match.Primary.Score)
				if d.Match.HasSecondary() {
					fmt.Printf("secondary: %s (score %d)\n", d.Match.Secondary.Name, d.Match.Secondary.Score)
				}
				fmt.Printf("annual:    $%d - $%d (mid $%d)\n\n",
					d.Cost.AnnualCostLow, d.Cost.AnnualCostHigh, d.Cost.AnnualCostMid)
			}
			return nil
		},
	}
}

func printJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
