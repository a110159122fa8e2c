package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of grid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("grid version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
