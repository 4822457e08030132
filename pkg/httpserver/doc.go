// Package httpserver runs an http.Handler with timeouts, signal handling
// and graceful shutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns nil after a clean shutdown triggered by context cancellation,
// SIGINT/SIGTERM or Shutdown.
package httpserver
