package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/notify"
	"github.com/dmitrymomot/toastkit/pkg/toastui"
)

const datastarScript = `https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-RC.5/bundles/datastar.js`

// page is the storefront shell with the toast region at the end of the body.
func page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!doctype html>
<html>
<head><title>Storefront</title><script type="module" src="%s"></script></head>
<body>
<button data-on-click="@post('/demo/save')">Save product</button>
<button data-on-click="@post('/demo/delete')">Delete product</button>
`, datastarScript)
		if err != nil {
			return err
		}
		if err := toastui.Host("/toasts").Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}

func pageHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page().Render(r.Context(), w); err != nil {
		slog.Default().LogAttrs(r.Context(), slog.LevelError, "render page", logger.Error(err))
	}
}

// saveHandler pretends to store a product and reports success.
func saveHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := notify.Success(r.Context(), "Product saved", notify.WithTitle("Catalog")); err != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "save notification", logger.Error(err))
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteHandler asks before deleting and reports the outcome.
// The request stays open until the user answers or the client goes away.
func deleteHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ok, err := notify.Confirm(ctx, "Delete this product? This cannot be undone.",
			notify.WithTitle("Delete product"),
			notify.WithConfirmLabel("Delete"),
			notify.WithCancelLabel("Keep"),
		)
		if err != nil {
			log.LogAttrs(ctx, slog.LevelError, "delete confirmation", logger.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if ok {
			err = notify.Warning(ctx, "Product deleted", notify.WithTitle("Catalog"))
		} else {
			err = notify.Info(ctx, "Nothing was deleted")
		}
		if err != nil {
			log.LogAttrs(ctx, slog.LevelError, "delete notification", logger.Error(err))
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
