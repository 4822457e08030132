// Package api holds the serverless entry point. The platform routes
// /api/contact requests to Handler.
package api

import (
	"net/http"
	"sync"

	"github.com/gavdev/portfolio/handler"
	"github.com/gavdev/portfolio/internal/app"
	"github.com/gavdev/portfolio/modules/contact"
	"github.com/gavdev/portfolio/pkg/config"
	"github.com/gavdev/portfolio/pkg/logger"
)

var (
	once   sync.Once
	router http.Handler
)

func setup() {
	var appCfg app.Config
	if err := config.Load(&appCfg); err != nil {
		router = unavailable(err)
		return
	}
	log := app.NewLogger(appCfg)

	deps, err := app.LoadDeps(log)
	if err != nil {
		log.Error("failed to initialize contact function", logger.Error(err))
		router = unavailable(err)
		return
	}
	router = app.NewRouter(deps)
}

// unavailable answers every request with the relay's generic failure so a
// misconfigured deployment still speaks the same contract.
func unavailable(error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(contact.MsgFailed).Render(w, r)
	})
}

// Handler is the serverless function entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	router.ServeHTTP(w, r)
}
