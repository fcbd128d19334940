package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
)

var (
	logWeight float64
	logNotes  string
	logUndone bool
)

// logExCmd records progress on one exercise: weight, notes and completion.
// The exercise starts from its current merged value (template or this week's
// override), so flags only change what they set. Completing with a new weight
// is what lands a row in the durable history log.
var logExCmd = &cobra.Command{
	Use:   "log-ex [day] [exercise-id]",
	Short: "Log weight/notes for an exercise and mark it completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}
		exerciseID := args[1]

		app, st := loadApp()

		var exercise *models.Exercise
		for _, ex := range state.MergedExercises(app, day) {
			if ex.ID == exerciseID {
				ex := ex
				exercise = &ex
				break
			}
		}
		if exercise == nil {
			return fmt.Errorf("Exercise %q is not on %s's sheet", exerciseID, day)
		}

		if cmd.Flags().Changed("weight") {
			exercise.Weight = logWeight
		}
		if cmd.Flags().Changed("notes") {
			exercise.Notes = logNotes
		}
		exercise.Completed = !logUndone

		state.UpdateExercise(app, day, *exercise, time.Now())
		st.SaveState(app)

		if exercise.Completed {
			fmt.Printf("✅ %s logged", exercise.Name)
			if exercise.Weight > 0 {
				fmt.Printf(" at %.1f kg", exercise.Weight)
			}
			fmt.Println()
		} else {
			fmt.Printf("↩️  %s unmarked\n", exercise.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logExCmd)

	logExCmd.Flags().Float64VarP(&logWeight, "weight", "w", 0, "Weight in kg")
	logExCmd.Flags().StringVarP(&logNotes, "notes", "n", "", "Notes for the exercise")
	logExCmd.Flags().BoolVarP(&logUndone, "undone", "u", false, "Unmark the exercise instead of completing it")
}
