// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// Run returns after ctx is cancelled, SIGINT or SIGTERM is received, or
// Shutdown is called, once in-flight requests have drained or the shutdown
// timeout has passed.
package httpserver
