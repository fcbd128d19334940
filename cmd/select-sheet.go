package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/models"
	"github.com/cavanisc/ficha-treino/internal/state"
)

var selectSheetCmd = &cobra.Command{
	Use:   "select-sheet [day] [A|B|C]",
	Short: "Assign a sheet to a weekday (clears that day's progress)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}

		sheet := strings.ToUpper(args[1])
		if !models.ValidSheet(sheet) {
			return fmt.Errorf("Invalid sheet %q (expected A, B or C)", args[1])
		}

		app, st := loadApp()
		state.SelectSheet(app, day, sheet)
		st.SaveState(app)

		name, _ := app.WorkoutSheets.Get(sheet)
		fmt.Printf("✅ %s now runs %s\n", day, name.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectSheetCmd)
}
