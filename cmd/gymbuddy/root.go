package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gymbuddy",
	Short: "GymBuddy is a terminal client for the fitness coach API",
	Long:  `GymBuddy onboards your fitness profile and chats with the coach, all from the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("server", "", "Base URL of the coach API (default from config)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default gymbuddy.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
