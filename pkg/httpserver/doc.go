// Package httpserver runs an http.Handler until its context ends and then
// shuts it down gracefully.
//
// Long-lived responses such as server-sent event streams keep
// http.Server.Shutdown waiting. Register a shutdown hook that ends them
// (for a toast bridge, Unmount) with WithShutdownHook; hooks run as soon as
// shutdown begins.
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//		httpserver.WithShutdownHook(b.Unmount),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors
// with ErrShutdown.
package httpserver
