package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ficha",
	Short: "CLI workout tracker built around the classic A/B/C training sheets",
}

func Execute() error {
	return rootCmd.Execute()
}
