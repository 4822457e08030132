package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gavdev/portfolio/internal/app"
	"github.com/gavdev/portfolio/pkg/config"
	"github.com/gavdev/portfolio/pkg/httpserver"
	"github.com/gavdev/portfolio/pkg/logger"
)

func main() {
	var appCfg app.Config
	config.MustLoad(&appCfg)

	log := app.NewLogger(appCfg)
	logger.SetAsDefault(log)

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	deps, err := app.LoadDeps(log)
	if err != nil {
		log.Error("failed to initialize application", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), app.NewRouter(deps)); err != nil {
		log.Error("server stopped with error", logger.Error(err), slog.String("addr", httpCfg.Addr))
		os.Exit(1)
	}
}
