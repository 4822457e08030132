// Package app assembles the HTTP application shared by the long-running
// server and the serverless entry point.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gavdev/portfolio/modules/contact"
	"github.com/gavdev/portfolio/pkg/clientip"
	"github.com/gavdev/portfolio/pkg/config"
	"github.com/gavdev/portfolio/pkg/email"
	"github.com/gavdev/portfolio/pkg/environment"
	"github.com/gavdev/portfolio/pkg/httpserver"
	"github.com/gavdev/portfolio/pkg/logger"
	"github.com/gavdev/portfolio/pkg/requestid"
)

// Config is the process-level configuration.
type Config struct {
	Env  environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name string                  `env:"APP_NAME" envDefault:"portfolio"`
}

// Deps are the collaborators the router is built from.
type Deps struct {
	Log     *slog.Logger
	Sender  email.Sender
	Contact contact.Config
}

// NewLogger builds the process logger for cfg with request-scoped attributes.
func NewLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
}

// LoadDeps reads mail and contact configuration from the environment and
// creates the mail transport.
func LoadDeps(log *slog.Logger) (Deps, error) {
	var mailCfg email.Config
	if err := config.Load(&mailCfg); err != nil {
		return Deps{}, fmt.Errorf("load email config: %w", err)
	}

	var contactCfg contact.Config
	if err := config.Load(&contactCfg); err != nil {
		return Deps{}, fmt.Errorf("load contact config: %w", err)
	}

	sender, err := email.New(mailCfg)
	if err != nil {
		return Deps{}, fmt.Errorf("create email sender: %w", err)
	}

	return Deps{
		Log:     log,
		Sender:  sender,
		Contact: contactCfg.WithDefaultSender(mailCfg.Username),
	}, nil
}

// NewRouter returns the application router: panic recovery, request ids,
// client IPs, the health check and the contact relay.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
	)

	r.Get("/health", httpserver.HealthCheckHandler(d.Log))

	relay := contact.NewRelay(d.Contact, d.Sender, d.Log)
	r.Mount(contact.Path, contact.NewService(d.Contact, relay, d.Log).Handle())

	return r
}
