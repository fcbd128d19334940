package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/state"
)

// progressCmd analyzes one exercise's weight trend and draws a small bar
// chart of its most recent records.
var progressCmd = &cobra.Command{
	Use:   "progress [exercise-name]",
	Short: "Show the weight trend and recent records for an exercise",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		app, _ := loadApp()

		var group *state.ExerciseHistory
		for _, g := range state.GroupHistory(app.History) {
			if strings.EqualFold(g.ExerciseName, name) {
				group = g
				break
			}
		}
		if group == nil {
			return fmt.Errorf("No history for exercise %q", name)
		}

		state.SortRecords(group.Records, true)
		analysis := state.AnalyzeProgress(group.Records)

		badge := sheetColor(group.Sheet).Sprintf("[%s]", group.Sheet)
		fmt.Printf("%s %s\n\n", badge, group.ExerciseName)

		printTrend(analysis)
		fmt.Println()

		// Bar chart over the last 10 records, scaled to the heaviest one.
		records := group.Records
		if len(records) > 10 {
			records = records[len(records)-10:]
		}
		var max float64
		for _, r := range group.Records {
			if r.Weight > max {
				max = r.Weight
			}
		}
		bar := color.New(color.FgBlue).SprintFunc()
		for _, r := range records {
			width := 1
			if max > 0 {
				width = int(r.Weight / max * 30)
				if width < 1 {
					width = 1
				}
			}
			fmt.Printf("  %s  %6.1f kg %s\n", r.Date, r.Weight, bar(strings.Repeat("█", width)))
		}
		fmt.Println()

		first := group.Records[0]
		last := group.Records[len(group.Records)-1]
		printMetric("Current", fmt.Sprintf("%.1f kg", last.Weight))
		printMetric("Max", fmt.Sprintf("%.1f kg", max))
		printMetric("Since first record", fmt.Sprintf("%+.1f kg", last.Weight-first.Weight))
		return nil
	},
}

func printTrend(analysis state.ProgressAnalysis) {
	switch analysis.Trend {
	case state.TrendUp:
		fmt.Printf("  Trend: %s (%+.1f%%)\n", color.New(color.FgGreen, color.Bold).Sprint("↑ up"), analysis.Change)
	case state.TrendDown:
		fmt.Printf("  Trend: %s (%+.1f%%)\n", color.New(color.FgRed, color.Bold).Sprint("↓ down"), analysis.Change)
	default:
		fmt.Printf("  Trend: %s\n", color.New(color.FgHiBlack).Sprint("→ stable"))
	}
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
