package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/state"
	"github.com/cavanisc/ficha-treino/internal/utils"
)

var sessionNotes string

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Stop the running workout and record the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, st := loadApp()

		session, ok := state.StopSession(app, sessionNotes, time.Now())
		if !ok {
			return fmt.Errorf("No active session")
		}
		st.SaveState(app)

		fmt.Printf("✅ Session saved: %s, %s, %d/%d exercises\n",
			session.SheetName,
			utils.FormatDuration(session.Duration),
			session.CompletedExercises,
			session.TotalExercises,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)

	endSessionCmd.Flags().StringVarP(&sessionNotes, "notes", "n", "", "Notes for the finished session")
}
