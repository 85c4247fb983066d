package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gymbuddy/gymbuddy/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive coaching session",
	Long:  `Starts the onboarding form when no profile exists, then drops into the chat loop.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		opts.ServerURL, _ = cmd.Flags().GetString("server")
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.SessionID, _ = cmd.Flags().GetString("session")
		opts.RedisURL, _ = cmd.Flags().GetString("redis")
		opts.Fresh, _ = cmd.Flags().GetBool("fresh")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")

		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("session", "", "Session id for transcript persistence")
	runCmd.Flags().String("redis", "", "Redis URL for transcript persistence (e.g. redis://localhost:6379/0)")
	runCmd.Flags().Bool("fresh", false, "Discard any stored transcript before starting")
	runCmd.Flags().Bool("no-banner", false, "Skip the startup banner")

	// Make 'run' the default if no command is provided
	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
