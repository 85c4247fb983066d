package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/gymbuddy/gymbuddy"
	"github.com/gymbuddy/gymbuddy/internal/config"
	"github.com/gymbuddy/gymbuddy/internal/presentation/tui"
	"github.com/gymbuddy/gymbuddy/pkg/controls"
	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ports"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

// chipPrompts names the onboarding chip groups in page order. The
// option lists come from the live document, not from here.
var chipPrompts = []struct {
	id    string
	label string
}{
	{"gender", "Gender"},
	{"main_goal", "Main goal"},
	{"experience", "Experience"},
	{"days_per_week", "Days per week"},
	{"minutes_per_workout", "Minutes per workout"},
	{"injuries_yes_no", "Any injuries?"},
}

var numberPrompts = []struct {
	id    string
	label string
}{
	{"weight", "Weight (kg)"},
	{"height", "Height (cm)"},
	{"age", "Age"},
}

// RunSession runs one interactive coaching session against the page model.
func RunSession(opts RunOptions, cfg config.Config, store ports.SessionStore, logger *slog.Logger) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if interactive && !opts.NoBanner {
		tui.PrintBanner()
	}

	render := tui.NewRenderer()

	appOpts := []gymbuddy.Option{
		gymbuddy.WithLogger(logger),
		gymbuddy.WithAlerter(ports.AlertFunc(func(msg string) {
			printSystemMessage("%s", msg)
		})),
	}
	if store != nil {
		appOpts = append(appOpts, gymbuddy.WithSessionStore(store, cfg.SessionID))
	}
	app := gymbuddy.New(cfg.ServerURL, appOpts...)

	// Echo transcript messages as they land. The user's own live input
	// is already on screen, so it is only echoed while restoring.
	restoring := true
	app.Controller.Transcript().OnAppend(func(msg domain.Message) {
		switch {
		case msg.Role == domain.RoleAssistant:
			if out, err := render(msg.Text); err == nil {
				fmt.Printf("%s:%s", msg.Role.Label(), out)
			} else {
				fmt.Printf("%s: %s\n", msg.Role.Label(), msg.Text)
			}
		case restoring:
			fmt.Printf("%s: %s\n", msg.Role.Label(), msg.Text)
		}
	})

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	app.Init(sigCtx)
	restoring = false

	logger.Info("session started", "server", cfg.ServerURL, "session_id", cfg.SessionID)

	scanner := bufio.NewScanner(os.Stdin)

	if app.Controller.Router().Current() == domain.ViewOnboarding {
		if err := runOnboarding(sigCtx, app, scanner, interactive); err != nil {
			return handleExecutionError(err)
		}
	}

	err := runChat(sigCtx, app, scanner, interactive)
	if sigCtx.Signal() != nil {
		fmt.Println()
		printSystemMessage("Interrupted. See you at the next workout.")
		return nil
	}
	return handleExecutionError(err)
}

// runOnboarding walks the onboarding form, translating typed answers
// into clicks and values on the page elements, then submits.
func runOnboarding(ctx *SignalContext, app *gymbuddy.App, scanner *bufio.Scanner, interactive bool) error {
	if interactive {
		printSystemMessage("Let's set up your profile. Press Enter to keep the suggested value.")
	}

	for app.Controller.Router().Current() == domain.ViewOnboarding {
		for _, p := range numberPrompts {
			el := app.Doc.ByID(p.id)
			if el == nil {
				continue
			}
			answer, err := prompt(ctx, scanner, fmt.Sprintf("%s [%s]", p.label, el.Value()))
			if err != nil {
				return err
			}
			if answer != "" {
				el.SetValue(answer)
			}
		}

		for _, p := range chipPrompts {
			current, _ := controls.ActiveValue(app.Doc, p.id)
			question := fmt.Sprintf("%s (%s) [%s]", p.label, strings.Join(chipValues(app.Doc, p.id), "/"), current)
			answer, err := prompt(ctx, scanner, question)
			if err != nil {
				return err
			}
			if answer != "" {
				clickChip(app.Doc, p.id, answer)
			}
		}

		if injuries, _ := controls.ActiveValue(app.Doc, "injuries_yes_no"); injuries == "yes" {
			details, err := prompt(ctx, scanner, "Injury details")
			if err != nil {
				return err
			}
			if el := app.Doc.ByID("injuries_details"); el != nil {
				el.SetValue(details)
			}
		}

		if btn := app.Doc.ByID("startBtn"); btn != nil {
			btn.Click()
		}

		if app.Controller.Router().Current() == domain.ViewOnboarding {
			// Submission failed; the alert already explained why.
			answer, err := prompt(ctx, scanner, "Try again? (y/n)")
			if err != nil {
				return err
			}
			if !strings.HasPrefix(strings.ToLower(answer), "y") {
				return nil
			}
		}
	}
	return nil
}

// runChat is the read-dispatch loop for the chat view.
func runChat(ctx *SignalContext, app *gymbuddy.App, scanner *bufio.Scanner, interactive bool) error {
	if app.Controller.Router().Current() != domain.ViewChat {
		return nil
	}
	if interactive {
		printSystemMessage("Ask me anything about training. Type /quit to leave.")
	}

	input := app.Doc.ByID("chatInput")
	for {
		line, err := prompt(ctx, scanner, ">")
		if err != nil {
			return err
		}
		if line == "/quit" || line == "/exit" {
			printSystemMessage("Good session. See you at the next workout.")
			return nil
		}
		if input != nil {
			input.SetValue(line)
			input.KeyDown(ui.KeyEnter)
		}
	}
}

// prompt prints a question and reads one trimmed line.
func prompt(ctx *SignalContext, scanner *bufio.Scanner, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Printf("%s ", question)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// chipValues lists the option values a chip group offers.
func chipValues(doc *ui.Document, groupID string) []string {
	group := doc.ByID(groupID)
	if group == nil {
		return nil
	}
	var values []string
	for _, chip := range group.Children() {
		if v, ok := chip.Attr(ui.AttrValue); ok && chip.HasClass(ui.ClassChip) {
			values = append(values, v)
		}
	}
	return values
}

// clickChip activates the chip carrying the given value, if present.
func clickChip(doc *ui.Document, groupID, value string) {
	group := doc.ByID(groupID)
	if group == nil {
		return
	}
	for _, chip := range group.Children() {
		if v, ok := chip.Attr(ui.AttrValue); ok && chip.HasClass(ui.ClassChip) && v == value {
			chip.Click()
			return
		}
	}
}
