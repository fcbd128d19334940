package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/state"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Drop the running workout without recording it",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, st := loadApp()

		if !state.CancelSession(app) {
			return fmt.Errorf("No active session to cancel")
		}
		st.SaveState(app)

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
