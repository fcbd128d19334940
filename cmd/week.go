package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
)

// weekCmd shows the current week: which sheet each day runs and how far along
// its completion is.
var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the current week's day-to-sheet assignments and completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := loadApp()

		printBoxedHeader("SEMANA " + app.WeekStartDate)

		for _, day := range models.WeekDays {
			dw := app.CurrentWeek[day]
			sheet, _ := app.WorkoutSheets.Get(dw.SelectedSheet)

			completed := 0
			for _, ex := range state.MergedExercises(app, day) {
				if ex.Completed {
					completed++
				}
			}

			badge := sheetColor(dw.SelectedSheet).Sprintf("[%s]", dw.SelectedSheet)
			fmt.Printf("  %-8s %s %s (%d/%d)\n",
				day, badge, sheet.Name, completed, len(sheet.Exercises))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
