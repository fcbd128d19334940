package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite" // required for SQLite

	"github.com/cavanisc/ficha-treino/internal/config"
	"github.com/cavanisc/ficha-treino/internal/storage"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the local database file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetDataPath()
		if err != nil {
			return fmt.Errorf("Failed to resolve data path: %w", err)
		}

		db, err := sql.Open("sqlite", path)
		if err != nil {
			return fmt.Errorf("Failed to open database: %w", err)
		}
		defer db.Close()

		if err := storage.InitializeDB(db); err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		fmt.Printf("✅ Database initialized successfully at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
