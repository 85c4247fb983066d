package graph_test

import (
	"strings"
	"testing"

	"github.com/gymbuddy/gymbuddy/internal/presentation/graph"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

func TestGenerateMermaid(t *testing.T) {
	doc := ui.NewCoachPage()

	out := graph.GenerateMermaid(doc, nil)

	contains := []string{
		"graph TD",
		"onboarding[\"onboarding\"]",
		// Numeric inputs carry their default value
		"[/\"weight = 70\"/]",
		"[/\"height = 175\"/]",
		"[/\"age = 25\"/]",
		// Buttons render as subroutines
		"startBtn[[\"startBtn\"]]",
		"sendBtn[[\"sendBtn\"]]",
		// The chat section is hidden at build time
		"page -.-> chat",
	}
	for _, want := range contains {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\nOutput:\n%s", want, out)
		}
	}

	if strings.Contains(out, "class ") {
		t.Errorf("expected no overlay styles without overlay\nOutput:\n%s", out)
	}
}

func TestGenerateMermaidChips(t *testing.T) {
	doc := ui.NewCoachPage()

	out := graph.GenerateMermaid(doc, nil)

	// Anonymous chips are labeled by their value
	for _, v := range []string{"male", "hypertrophy", "beginner"} {
		if !strings.Contains(out, "([\""+v+"\"])") {
			t.Errorf("expected a chip labeled %q\nOutput:\n%s", v, out)
		}
	}
}

func TestGenerateMermaidOverlay(t *testing.T) {
	doc := ui.NewCoachPage()

	out := graph.GenerateMermaid(doc, &graph.Overlay{
		ActiveChips: []string{"gender", "gender"},
		CurrentView: "chat",
	})

	if got := strings.Count(out, "class gender active;"); got != 1 {
		t.Errorf("expected exactly one active style for gender, got %d", got)
	}
	if !strings.Contains(out, "class chat current;") {
		t.Errorf("expected current view style\nOutput:\n%s", out)
	}
}
