package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gymbuddy/gymbuddy/internal/presentation/graph"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

// pageCmd represents the page command
var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Print the coach page structure as a Mermaid diagram",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(graph.GenerateMermaid(ui.NewCoachPage(), nil))
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
}
