package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gymbuddy/gymbuddy/internal/logging"
	"github.com/gymbuddy/gymbuddy/pkg/api"
	"github.com/gymbuddy/gymbuddy/pkg/controls"
	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ports"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
	"github.com/gymbuddy/gymbuddy/pkg/view"
)

// User-facing fixed strings of the two flows.
const (
	// NetworkErrorMessage is appended to the transcript when a chat
	// request never completes.
	NetworkErrorMessage = "Network error."

	// GenericOnboardingError is alerted when the server rejects the
	// onboarding submission without an error string, or when the
	// submission never reaches the server.
	GenericOnboardingError = "Could not save your profile. Please try again."
)

// chipDefaults are the pre-activated option per group, applied in order
// at initialization.
var chipDefaults = []struct {
	group string
	value string
}{
	{"gender", "male"},
	{"main_goal", "hypertrophy"},
	{"experience", "beginner"},
	{"days_per_week", "4"},
	{"minutes_per_workout", "60"},
	{"injuries_yes_no", "no"},
}

// CoachAPI is the slice of the API client the controller needs.
type CoachAPI interface {
	FetchProfile(ctx context.Context) (*api.ProfileLookup, error)
	SubmitOnboarding(ctx context.Context, payload domain.Profile) (string, error)
	SendChat(ctx context.Context, message string) (string, error)
}

// Controller owns the page lifecycle: widget configuration, the initial
// profile fetch, and the start/send flows.
type Controller struct {
	doc    *ui.Document
	b      Bindings
	client CoachAPI

	router     *view.Router
	transcript *view.Transcript

	alerter ports.Alerter
	logger  *slog.Logger

	store     ports.SessionStore
	sessionID string

	summary   string
	restoring bool
}

// Option configures the Controller.
type Option func(*Controller)

// WithAlerter routes blocking notifications (onboarding failures) to
// the given alerter. The default drops them.
func WithAlerter(a ports.Alerter) Option {
	return func(c *Controller) {
		c.alerter = a
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithSessionStore enables conversation persistence under the given
// session ID.
func WithSessionStore(store ports.SessionStore, sessionID string) Option {
	return func(c *Controller) {
		c.store = store
		c.sessionID = sessionID
	}
}

// New creates a controller over the document, resolving bindings once.
func New(doc *ui.Document, client CoachAPI, opts ...Option) *Controller {
	c := &Controller{
		doc:     doc,
		b:       ResolveBindings(doc),
		client:  client,
		alerter: ports.AlertFunc(func(string) {}),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.router = view.NewRouter(c.b.Onboarding, c.b.Chat)
	c.transcript = view.NewTranscript(doc, c.b.Messages)

	if c.store != nil && c.sessionID != "" {
		c.transcript.OnAppend(func(domain.Message) {
			if !c.restoring {
				c.persist(context.Background())
			}
		})
	}
	return c
}

// Router exposes the view router.
func (c *Controller) Router() *view.Router { return c.router }

// Transcript exposes the transcript renderer.
func (c *Controller) Transcript() *view.Transcript { return c.transcript }

// Summary returns the last profile summary reported by the server.
func (c *Controller) Summary() string { return c.summary }

// Init configures the chip groups with their defaults, wires the
// stepper buttons and the start/send flows, then fetches the stored
// profile. A present profile switches to the chat view with one
// assistant welcome message containing the summary; anything else
// leaves the onboarding view active.
func (c *Controller) Init(ctx context.Context) {
	for _, d := range chipDefaults {
		controls.ConfigureChipGroup(c.doc, d.group, d.value)
	}
	controls.WireSteppers(c.doc)
	c.wireFlows()

	if c.restoreSession(ctx) {
		return
	}

	lookup, err := c.client.FetchProfile(ctx)
	if err != nil {
		// No reachable profile is the same as no profile: start onboarding.
		c.logger.Debug("profile fetch failed", "err", err)
		c.router.ShowOnboarding()
		return
	}
	if lookup.OK {
		c.summary = lookup.Summary
		c.router.ShowChat()
		c.transcript.Append(domain.RoleAssistant, welcomeMessage(lookup.Summary))
		return
	}
	c.router.ShowOnboarding()
}

// wireFlows registers the start button, send button and Enter-key
// handlers. Enter is intercepted so the surrounding form never submits.
func (c *Controller) wireFlows() {
	if c.b.StartBtn != nil {
		c.b.StartBtn.On(ui.EventClick, func(*ui.Event) {
			c.StartOnboarding(context.Background())
		})
	}
	if c.b.SendBtn != nil {
		c.b.SendBtn.On(ui.EventClick, func(*ui.Event) {
			c.SendMessage(context.Background())
		})
	}
	if c.b.ChatInput != nil {
		c.b.ChatInput.On(ui.EventKeyDown, func(ev *ui.Event) {
			if ev.Key == ui.KeyEnter {
				ev.PreventDefault()
				c.SendMessage(context.Background())
			}
		})
	}
}

// StartOnboarding assembles the payload from the current form state and
// submits it. On failure the user is alerted and the onboarding view
// stays active for re-submission; on success the chat view opens with
// one assistant message carrying the returned summary.
func (c *Controller) StartOnboarding(ctx context.Context) {
	payload := c.assemblePayload()

	summary, err := c.client.SubmitOnboarding(ctx, payload)
	if err != nil {
		msg := GenericOnboardingError
		if se := domain.AsServerError(err); se != nil && se.Message != "" {
			msg = se.Message
		}
		c.logger.Debug("onboarding rejected", "err", err)
		c.alerter.Alert(msg)
		c.router.ShowOnboarding()
		return
	}

	c.summary = summary
	c.router.ShowChat()
	c.transcript.Append(domain.RoleAssistant, savedMessage(summary))
}

// SendMessage runs the send flow: a blank input is ignored entirely;
// otherwise the input is cleared, the user message appended, the send
// control disabled for the duration of the call, and the assistant
// reply (or failure text) appended. The send control is re-enabled
// regardless of outcome.
func (c *Controller) SendMessage(ctx context.Context) {
	if c.b.ChatInput == nil {
		return
	}
	text := strings.TrimSpace(c.b.ChatInput.Value())
	if text == "" {
		return
	}
	c.b.ChatInput.SetValue("")
	c.transcript.Append(domain.RoleUser, text)

	if c.b.SendBtn != nil {
		c.b.SendBtn.SetDisabled(true)
		defer c.b.SendBtn.SetDisabled(false)
	}

	reply, err := c.client.SendChat(ctx, text)
	switch {
	case err == nil:
		c.transcript.Append(domain.RoleAssistant, reply)
	default:
		if se := domain.AsServerError(err); se != nil {
			c.transcript.Append(domain.RoleAssistant, se.Error())
		} else {
			c.logger.Debug("chat request failed", "err", err)
			c.transcript.Append(domain.RoleAssistant, NetworkErrorMessage)
		}
	}
}

// assemblePayload reads the current form and chip state.
func (c *Controller) assemblePayload() domain.Profile {
	gender, _ := controls.ActiveValue(c.doc, "gender")
	goal, _ := controls.ActiveValue(c.doc, "main_goal")
	experience, _ := controls.ActiveValue(c.doc, "experience")
	days, _ := controls.ActiveValue(c.doc, "days_per_week")
	minutes, _ := controls.ActiveValue(c.doc, "minutes_per_workout")
	injuries, _ := controls.ActiveValue(c.doc, "injuries_yes_no")

	return domain.Profile{
		WeightKg:          inputInt(c.b.Weight),
		HeightCm:          inputInt(c.b.Height),
		Age:               inputInt(c.b.Age),
		Gender:            gender,
		MainGoal:          goal,
		Experience:        experience,
		DaysPerWeek:       atoi(days),
		MinutesPerWorkout: atoi(minutes),
		Injuries:          injuries == "yes",
		InjuriesDetails:   inputText(c.b.InjuriesDetails),
	}
}

// restoreSession replays a stored conversation, if any. A restored
// session opens the chat view directly; the profile fetch is skipped
// because the transcript already witnessed a stored profile.
func (c *Controller) restoreSession(ctx context.Context) bool {
	if c.store == nil || c.sessionID == "" {
		return false
	}
	session, err := c.store.Load(ctx, c.sessionID)
	if err != nil {
		if err != domain.ErrSessionNotFound {
			c.logger.Debug("session load failed", "session_id", c.sessionID, "err", err)
		}
		return false
	}
	if len(session.Messages) == 0 {
		return false
	}

	c.summary = session.Summary
	c.restoring = true
	for _, msg := range session.Messages {
		c.transcript.Append(msg.Role, msg.Text)
	}
	c.restoring = false
	c.router.ShowChat()
	c.logger.Debug("session resumed", "session_id", c.sessionID, "messages", len(session.Messages))
	return true
}

func (c *Controller) persist(ctx context.Context) {
	session := &domain.Session{
		Summary:  c.summary,
		Messages: c.transcript.Messages(),
	}
	if err := c.store.Save(ctx, c.sessionID, session); err != nil {
		c.logger.Debug("session save failed", "session_id", c.sessionID, "err", err)
	}
}

func welcomeMessage(summary string) string {
	return fmt.Sprintf("Welcome back! Your profile: %s", summary)
}

func savedMessage(summary string) string {
	return fmt.Sprintf("You're all set! Your profile: %s", summary)
}

func inputInt(el *ui.Element) int {
	if el == nil {
		return 0
	}
	return atoi(el.Value())
}

func inputText(el *ui.Element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Value())
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
