package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/state"
)

var (
	filterSheet    string
	filterExercise string
)

// historyCmd shows the weight history grouped by sheet and exercise, newest
// first, optionally filtered by sheet and/or exercise name.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display weight history grouped by exercise, optionally filtered by sheet and/or exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := loadApp()

		groups := state.GroupHistory(app.History)
		if len(groups) == 0 {
			fmt.Println("No weight history yet. Complete exercises with a weight to build it.")
			return nil
		}

		var keys []string
		for key, g := range groups {
			if filterSheet != "" && !strings.EqualFold(g.Sheet, filterSheet) {
				continue
			}
			if filterExercise != "" && !strings.EqualFold(g.ExerciseName, filterExercise) {
				continue
			}
			keys = append(keys, key)
		}
		sort.Strings(keys)

		if len(keys) == 0 {
			fmt.Println("No history matches the given filters.")
			return nil
		}

		gray := color.New(color.FgHiBlack).SprintFunc()
		for _, key := range keys {
			g := groups[key]
			badge := sheetColor(g.Sheet).Sprintf("[%s]", g.Sheet)
			fmt.Printf("%s %s (%d records)\n", badge, g.ExerciseName, len(g.Records))

			state.SortRecords(g.Records, false)
			for _, rec := range g.Records {
				fmt.Printf("  %s  %.1f kg  %s\n", rec.Date, rec.Weight, gray(rec.Day))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&filterSheet, "sheet", "s", "", "Filter by sheet (A, B or C)")
	historyCmd.Flags().StringVarP(&filterExercise, "exercise", "e", "", "Filter by exercise name (case insensitive)")
}
