package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
	"github.com/cavanisc/ficha-treino/internal/utils"
)

// statusCmd shows the running session timer (if any) plus overall numbers:
// session count, total gym time, history size and this week's completion.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running session and overall training numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := loadApp()

		printBoxedHeader("STATUS")

		if app.ActiveSession != nil {
			start, err := time.Parse(time.RFC3339, app.ActiveSession.StartTime)
			elapsed := "??:??"
			if err == nil {
				elapsed = utils.FormatElapsed(time.Since(start))
			}
			timer := color.New(color.FgHiBlue, color.Bold).Sprint(elapsed)
			fmt.Printf("  🏋️  Training %s on %s — %s elapsed\n\n",
				sheetColor(app.ActiveSession.Sheet).Sprintf("Ficha %s", app.ActiveSession.Sheet),
				app.ActiveSession.Day, timer)
		}

		var totalMinutes int
		for _, s := range app.Sessions {
			totalMinutes += s.Duration
		}

		completed, total := 0, 0
		for _, day := range models.WeekDays {
			for _, ex := range state.MergedExercises(app, day) {
				total++
				if ex.Completed {
					completed++
				}
			}
		}

		printMetric("Total sessions", len(app.Sessions))
		printMetric("Total time at gym", utils.FormatDuration(totalMinutes))
		printMetric("Weight records", len(app.History))
		printMetric("This week", fmt.Sprintf("%d/%d exercises completed", completed, total))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
