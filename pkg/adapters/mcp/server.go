// Package mcp exposes the coach client operations as MCP tools, so
// agent hosts can look up a profile, run onboarding and chat on behalf
// of a user.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/gymbuddy/gymbuddy/pkg/controller"
	"github.com/gymbuddy/gymbuddy/pkg/domain"
)

// ProfileResult is the structured output of the get_profile tool.
type ProfileResult struct {
	OK      bool            `json:"ok" jsonschema_description:"Whether a profile is stored"`
	Profile *domain.Profile `json:"profile,omitempty" jsonschema_description:"The stored onboarding profile"`
	Summary string          `json:"summary,omitempty" jsonschema_description:"Human-readable profile summary"`
}

// SummaryResult is the structured output of the submit_onboarding tool.
type SummaryResult struct {
	Summary string `json:"summary" jsonschema_description:"Human-readable profile summary"`
}

// ReplyResult is the structured output of the send_chat tool.
type ReplyResult struct {
	Reply string `json:"reply" jsonschema_description:"Assistant reply text"`
}

// Server wraps the coach API client and exposes it as an MCP Server.
type Server struct {
	client    controller.CoachAPI
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance over the given client.
func NewServer(client controller.CoachAPI, version string) *Server {
	s := &Server{
		client:    client,
		mcpServer: server.NewMCPServer("gymbuddy-mcp", version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: get_profile
	profileTool := mcp.NewTool("get_profile",
		mcp.WithDescription("Look up the stored fitness profile and its summary."),
		mcp.WithOutputSchema[ProfileResult](),
	)
	s.mcpServer.AddTool(profileTool, mcp.NewStructuredToolHandler(s.handleGetProfile))

	// TOOL: submit_onboarding
	onboardingTool := mcp.NewTool("submit_onboarding",
		mcp.WithDescription("Submit the onboarding payload and create a fitness profile."),
		mcp.WithNumber("weight_kg", mcp.Required(), mcp.Description("Body weight in kilograms")),
		mcp.WithNumber("height_cm", mcp.Required(), mcp.Description("Height in centimeters")),
		mcp.WithNumber("age", mcp.Required(), mcp.Description("Age in years")),
		mcp.WithString("gender", mcp.Required(), mcp.Description("One of: male, female, other")),
		mcp.WithString("main_goal", mcp.Required(), mcp.Description("One of: hypertrophy, strength, fat_loss, endurance")),
		mcp.WithString("experience", mcp.Required(), mcp.Description("One of: beginner, intermediate, advanced")),
		mcp.WithNumber("days_per_week", mcp.Required(), mcp.Description("Training days per week (1-7)")),
		mcp.WithNumber("minutes_per_workout", mcp.Required(), mcp.Description("Minutes per workout")),
		mcp.WithBoolean("injuries_yes_no", mcp.Description("Whether any injuries exist")),
		mcp.WithString("injuries_details", mcp.Description("Free-text injury details")),
		mcp.WithOutputSchema[SummaryResult](),
	)
	s.mcpServer.AddTool(onboardingTool, mcp.NewStructuredToolHandler(s.handleSubmitOnboarding))

	// TOOL: send_chat
	chatTool := mcp.NewTool("send_chat",
		mcp.WithDescription("Send one chat message to the coach and return the reply."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The user message")),
		mcp.WithOutputSchema[ReplyResult](),
	)
	s.mcpServer.AddTool(chatTool, mcp.NewStructuredToolHandler(s.handleSendChat))
}

func (s *Server) handleGetProfile(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ProfileResult, error) {
	lookup, err := s.client.FetchProfile(ctx)
	if err != nil {
		return ProfileResult{}, fmt.Errorf("profile lookup failed: %w", err)
	}
	return ProfileResult{OK: lookup.OK, Profile: lookup.Profile, Summary: lookup.Summary}, nil
}

func (s *Server) handleSubmitOnboarding(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (SummaryResult, error) {
	var payload domain.Profile
	if err := mapstructure.WeakDecode(args, &payload); err != nil {
		return SummaryResult{}, fmt.Errorf("invalid onboarding arguments: %w", err)
	}

	summary, err := s.client.SubmitOnboarding(ctx, payload)
	if err != nil {
		return SummaryResult{}, fmt.Errorf("onboarding failed: %w", err)
	}
	return SummaryResult{Summary: summary}, nil
}

func (s *Server) handleSendChat(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (ReplyResult, error) {
	message, _ := args["message"].(string)
	reply, err := s.client.SendChat(ctx, message)
	if err != nil {
		return ReplyResult{}, fmt.Errorf("chat failed: %w", err)
	}
	return ReplyResult{Reply: reply}, nil
}
