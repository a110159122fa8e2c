package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grid",
	Short: "grid inspects column-based grid layouts",
	Long: `grid computes and visualizes layouts described in YAML: a fixed number
of columns, a gap, padding, and one (min, pref, flex) hint pair per cell.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
