package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gymbuddy/gymbuddy"
	"github.com/gymbuddy/gymbuddy/internal/config"
	"github.com/gymbuddy/gymbuddy/pkg/adapters/mcp"
	"github.com/gymbuddy/gymbuddy/pkg/api"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the coach API operations (profile lookup, onboarding, chat) as MCP
tools over stdio, so AI agents can drive a coaching session.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		serverURL, _ := cmd.Flags().GetString("server")

		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)

		client := api.NewClient(cfg.ServerURL, api.WithLogger(logger))
		srv := mcp.NewServer(client, strings.TrimSpace(gymbuddy.Version))

		slog.Info("Starting GymBuddy MCP Server (Stdio)", "server", cfg.ServerURL)
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
