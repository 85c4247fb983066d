package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gymbuddy/gymbuddy"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gymbuddy",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gymbuddy version %s\n", strings.TrimSpace(gymbuddy.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
