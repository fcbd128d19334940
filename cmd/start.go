package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/state"
)

var startCmd = &cobra.Command{
	Use:   "start-session [day]",
	Short: "Start timing a workout for the given day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}

		app, st := loadApp()

		active, ok := state.StartSession(app, day, time.Now())
		if !ok {
			return fmt.Errorf("A session is already running (started %s), end or cancel it first", app.ActiveSession.StartTime)
		}
		st.SaveState(app)

		sheet, _ := app.WorkoutSheets.Get(active.Sheet)
		fmt.Printf("✅ Started session %s (%s)\n", active.ID, sheet.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
