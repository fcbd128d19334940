package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cavanisc/ficha-treino/internal/storage"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the whole tracker state as pretty-printed JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := fmt.Sprintf("ficha-treino-%s.json", time.Now().Format("2006-01-02"))
		if len(args) == 1 {
			outputFile = args[0]
		}

		st := storage.NewStorage()
		data, err := st.ExportState()
		if err != nil {
			return fmt.Errorf("Failed to export state: %w", err)
		}

		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("Failed to write export file: %w", err)
		}

		fmt.Printf("✅ State exported successfully to %s\n", outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
