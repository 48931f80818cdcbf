package main

import (
	"fmt"

	"github.com/spf13/cobra"

	shapecheck "github.com/shapecheck/shapecheck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of shapecheck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shapecheck version %s\n", shapecheck.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
