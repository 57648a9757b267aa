package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tapeline"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tapeline",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tapeline version %s\n", strings.TrimSpace(tapeline.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
