/*
Package gymbuddy is a client library for the GymBuddy fitness coach service, driving an onboarding form and a chat conversation over an abstract page model.

It separates the interaction surface (an element tree with synthetic events) from the orchestration (the controller) and the wire protocol (the API client), so the same client logic runs under a terminal front end, an MCP agent host, or a test harness.

# Concept

The coach page has two views. Onboarding collects a fitness profile through single-select chip groups and clamped numeric steppers; chat exchanges messages with the coach and renders them in an append-only transcript. The controller decides which view is visible from the stored profile, assembles the onboarding payload from the live form state, and mediates every send through the API client.

# Key Features

  - Abstract page model: ids, marker classes, attributes and synthetic click/key events, no browser required.
  - Single round-trip operations: profile lookup, onboarding submission and chat, with server errors surfaced verbatim.
  - Pluggable session persistence: an optional store resumes the transcript across runs (in-memory and Redis adapters included).
  - Contract-first wire format: the OpenAPI document for the three endpoints is embedded and enforced in the client tests.

# Usage

Build an App against a running coach service and drive it with events.

	package main

	import (
		"context"
		"fmt"

		"github.com/gymbuddy/gymbuddy"
		"github.com/gymbuddy/gymbuddy/pkg/ui"
	)

	func main() {
		app := gymbuddy.New("http://localhost:8000")
		app.Init(context.Background())

		input := app.Doc.ByID("chatInput")
		input.SetValue("What should I train today?")
		input.KeyDown(ui.KeyEnter)

		for _, m := range app.Controller.Transcript().Messages() {
			fmt.Printf("%s: %s\n", m.Role.Label(), m.Text)
		}
	}

For finer control use the pkg/ packages directly: pkg/ui for the page model, pkg/controller for the flows, pkg/api for the raw client.
*/
package gymbuddy
