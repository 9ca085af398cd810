// Command toastdemo serves a small storefront page whose actions report back
// through toasts and ask for confirmation before destructive steps.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/toastkit/pkg/bridge"
	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/httpserver"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/metrics"
	"github.com/dmitrymomot/toastkit/pkg/notify"
	"github.com/dmitrymomot/toastkit/pkg/toastui"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestIDExtractor),
	)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("toastdemo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector, err := metrics.New(prometheus.DefaultRegisterer, "")
	if err != nil {
		return err
	}

	notify.SetDefault(notify.New(
		notify.WithLogger(log),
		notify.WithMetrics(collector),
		notify.WithDefaultDuration(cfg.Toast.DefaultDuration),
		notify.WithDefaultLabels(cfg.Toast.ConfirmLabel, cfg.Toast.CancelLabel),
		notify.WithDefaultPosition(cfg.Toast.Position),
	))

	b := bridge.Mount(notify.Default(), bridge.WithLogger(log), bridge.WithMetrics(collector))
	defer b.Unmount()

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithShutdownHook(b.Unmount),
	)

	return srv.Run(ctx, router(b, log))
}

func router(src toastui.Source, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/", pageHandler)
	r.Mount("/toasts", toastui.New(src, toastui.WithLogger(log), toastui.WithBasePath("/toasts")))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/demo", func(r chi.Router) {
		r.Post("/save", saveHandler(log))
		r.Post("/delete", deleteHandler(log))
	})

	return r
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}
