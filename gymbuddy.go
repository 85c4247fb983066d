package gymbuddy

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gymbuddy/gymbuddy/pkg/api"
	"github.com/gymbuddy/gymbuddy/pkg/controller"
	"github.com/gymbuddy/gymbuddy/pkg/ports"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

// Version is the client library version.
var Version = "0.1.0"

// App bundles the coach page, its controller and the underlying API
// client. Consumers that need finer control can use the pkg/ packages
// directly.
type App struct {
	Doc        *ui.Document
	Client     *api.Client
	Controller *controller.Controller

	httpClient     *http.Client
	logger         *slog.Logger
	alerter        ports.Alerter
	sessionStore   ports.SessionStore
	sessionID      string
	controllerOpts []controller.Option
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) {
		a.httpClient = hc
	}
}

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithAlerter routes user-facing alerts to a custom sink.
func WithAlerter(alerter ports.Alerter) Option {
	return func(a *App) {
		a.alerter = alerter
	}
}

// WithSessionStore enables transcript persistence under the given
// session id.
func WithSessionStore(store ports.SessionStore, sessionID string) Option {
	return func(a *App) {
		a.sessionStore = store
		a.sessionID = sessionID
	}
}

// New builds a coach page and a controller bound to the API at baseURL.
func New(baseURL string, opts ...Option) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}

	var clientOpts []api.Option
	if a.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(a.httpClient))
	}
	if a.logger != nil {
		clientOpts = append(clientOpts, api.WithLogger(a.logger))
	}
	a.Client = api.NewClient(baseURL, clientOpts...)

	if a.logger != nil {
		a.controllerOpts = append(a.controllerOpts, controller.WithLogger(a.logger))
	}
	if a.alerter != nil {
		a.controllerOpts = append(a.controllerOpts, controller.WithAlerter(a.alerter))
	}
	if a.sessionStore != nil {
		a.controllerOpts = append(a.controllerOpts, controller.WithSessionStore(a.sessionStore, a.sessionID))
	}

	a.Doc = ui.NewCoachPage()
	a.Controller = controller.New(a.Doc, a.Client, a.controllerOpts...)
	return a
}

// Init configures the page widgets and routes to the right view based
// on the stored profile. Call it once before dispatching events.
func (a *App) Init(ctx context.Context) {
	a.Controller.Init(ctx)
}
