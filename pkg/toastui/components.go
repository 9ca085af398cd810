package toastui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// RegionID is the element id the stream patches.
const RegionID = "toasts"

// Host renders the empty region and starts the stream when the page loads.
func Host(basePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="%s" class="toasts" data-on-load="@get('%s/stream')"></div>`,
			RegionID, templ.EscapeString(basePath))
		return err
	})
}

// Toasts renders the content of the region for snap: alerts grouped by screen
// corner, then the pending confirmations.
func Toasts(snap toast.Snapshot, basePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, pos := range toast.Positions {
			var group []toast.Alert
			for _, a := range snap.Alerts {
				if a.Position == pos {
					group = append(group, a)
				}
			}
			if len(group) == 0 {
				continue
			}

			if _, err := fmt.Fprintf(w, `<div class="toast-region toast-%s">`, pos); err != nil {
				return err
			}
			for _, a := range group {
				if err := AlertCard(a, basePath).Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</div>`); err != nil {
				return err
			}
		}

		if len(snap.Confirmations) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<div class="toast-confirmations">`); err != nil {
			return err
		}
		for _, c := range snap.Confirmations {
			if err := ConfirmDialog(c, basePath).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// AlertCard renders one alert with its dismiss button.
func AlertCard(a toast.Alert, basePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div id="toast-%d" class="toast toast-%s" role="status">`, a.ID, a.Kind)
		if a.Title != "" {
			fmt.Fprintf(&b, `<strong class="toast-title">%s</strong>`, templ.EscapeString(a.Title))
		}
		fmt.Fprintf(&b, `<p class="toast-message">%s</p>`, templ.EscapeString(a.Message))
		fmt.Fprintf(&b, `<button type="button" class="toast-close" aria-label="Dismiss" data-on-click="@post('%s/alerts/%d/dismiss')">&times;</button>`,
			templ.EscapeString(basePath), a.ID)
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ConfirmDialog renders one pending confirmation with both answer buttons.
func ConfirmDialog(c toast.Confirmation, basePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		base := templ.EscapeString(basePath)

		var b strings.Builder
		fmt.Fprintf(&b, `<div id="confirm-%d" class="toast-confirm" role="alertdialog">`, c.ID)
		if c.Title != "" {
			fmt.Fprintf(&b, `<strong class="toast-title">%s</strong>`, templ.EscapeString(c.Title))
		}
		fmt.Fprintf(&b, `<p class="toast-message">%s</p>`, templ.EscapeString(c.Message))
		fmt.Fprintf(&b, `<button type="button" class="toast-cancel" data-on-click="@post('%s/confirmations/%d/cancel')">%s</button>`,
			base, c.ID, templ.EscapeString(c.CancelLabel))
		fmt.Fprintf(&b, `<button type="button" class="toast-ok" data-on-click="@post('%s/confirmations/%d/confirm')">%s</button>`,
			base, c.ID, templ.EscapeString(c.ConfirmLabel))
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
