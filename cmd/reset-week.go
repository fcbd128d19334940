package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/state"
)

var resetYes bool

var resetWeekCmd = &cobra.Command{
	Use:   "reset-week",
	Short: "Clear every day's completion state (history and sessions are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("This clears all completion marks for the week; re-run with --yes to confirm")
		}

		app, st := loadApp()
		state.ResetWeek(app, time.Now())
		st.SaveState(app)

		fmt.Println("✅ Week reset, sheets and history untouched")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetWeekCmd)

	resetWeekCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Confirm the reset")
}
