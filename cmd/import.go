package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/storage"
)

// importSheetsCmd replaces the three sheets from a JSON file. Everything else
// in the file is ignored: the current week, history and sessions stay as
// persisted.
var importSheetsCmd = &cobra.Command{
	Use:   "import-sheets [file]",
	Short: "Import workout sheets from a JSON export (week and history are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read %s: %w", args[0], err)
		}

		st := storage.NewStorage()
		if err := st.ImportSheets(data); err != nil {
			return fmt.Errorf("Import rejected, stored data untouched: %w", err)
		}

		fmt.Println("✅ Sheets imported successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importSheetsCmd)
}
