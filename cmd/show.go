package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/state"
)

// showCmd lists a day's exercises with overrides applied: completion mark,
// sets x reps, logged weight and notes.
var showCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show a day's exercise list with this week's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}

		app, _ := loadApp()
		dw := app.CurrentWeek[day]
		sheet, _ := app.WorkoutSheets.Get(dw.SelectedSheet)

		header := sheetColor(dw.SelectedSheet).Sprintf("%s", sheet.Name)
		fmt.Printf("%s (%s)\n\n", header, day)

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		gray := color.New(color.FgHiBlack).SprintFunc()

		for _, ex := range state.MergedExercises(app, day) {
			mark := gray("[ ]")
			if ex.Completed {
				mark = green("[x]")
			}
			line := fmt.Sprintf("  %s %-22s %dx%-6s", mark, ex.Name, ex.Sets, ex.Reps)
			if ex.Weight > 0 {
				line += fmt.Sprintf(" %.1f kg", ex.Weight)
			}
			fmt.Println(line)
			if ex.Notes != "" {
				fmt.Printf("      %s\n", gray(ex.Notes))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
