package toastui

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/pkg/broadcast"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Source is what the handler renders and forwards gestures to.
// *bridge.Bridge satisfies it.
type Source interface {
	Snapshot() toast.Snapshot
	Subscribe(ctx context.Context) broadcast.Subscriber[toast.Snapshot]
	RemoveAlert(id toast.ID) bool
	SettleConfirmation(id toast.ID, confirmed bool) bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for the Handler.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.logger = log
		}
	}
}

// WithBasePath sets the prefix the handler is mounted under.
func WithBasePath(path string) Option {
	return func(h *Handler) {
		h.basePath = strings.TrimRight(path, "/")
	}
}

// Handler serves the toast region of a single Source.
type Handler struct {
	src      Source
	basePath string
	logger   *slog.Logger
	router   chi.Router
}

// New creates a Handler for src.
func New(src Source, opts ...Option) *Handler {
	h := &Handler{
		src:    src,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("toastui"))

	r := chi.NewRouter()
	r.Get("/", h.host)
	r.Get("/stream", h.stream)
	r.Post("/alerts/{id}/dismiss", h.dismiss)
	r.Post("/confirmations/{id}/confirm", h.answer(true))
	r.Post("/confirmations/{id}/cancel", h.answer(false))
	h.router = r

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) host(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Host(h.basePath).Render(r.Context(), w); err != nil {
		h.logger.LogAttrs(r.Context(), slog.LevelError, "render host", logger.Error(err))
	}
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := logger.RequestID(middleware.GetReqID(ctx))

	sse := datastar.NewSSE(w, r)
	sub := h.src.Subscribe(ctx)
	defer sub.Close()

	h.logger.LogAttrs(ctx, slog.LevelDebug, "toast stream opened", reqID)
	defer h.logger.LogAttrs(ctx, slog.LevelDebug, "toast stream closed", reqID)

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-sub.Receive():
			if !ok {
				return
			}
			err := sse.PatchElementTempl(Toasts(snap, h.basePath),
				datastar.WithSelector("#"+RegionID),
				datastar.WithMode(datastar.ElementPatchModeInner),
			)
			if err != nil {
				h.logger.LogAttrs(ctx, slog.LevelDebug, "toast stream write failed", reqID, logger.Error(err))
				return
			}
		}
	}
}

func (h *Handler) dismiss(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	h.src.RemoveAlert(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) answer(confirmed bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		h.src.SettleConfirmation(id, confirmed)
		w.WriteHeader(http.StatusNoContent)
	}
}

// parseID reads the {id} URL parameter and answers 400 when it is malformed.
func parseID(w http.ResponseWriter, r *http.Request) (toast.ID, bool) {
	n, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || n == 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return toast.ID(n), true
}
