// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens, serves and blocks until the context is cancelled, SIGINT or
// SIGTERM arrives, or the listener fails. In-flight requests get the
// configured shutdown timeout to finish.
//
//	srv := httpserver.New(httpserver.WithConfig(cfg.HTTP), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
