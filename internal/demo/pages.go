package demo

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
)

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8"><title>`+templ.EscapeString(title)+`</title>`); err != nil {
			return err
		}
		if err := csrf.MetaTag().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// formPage renders the guestbook form with the hidden token field.
func formPage(field templ.Component, message string) templ.Component {
	return layout("Guestbook", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message != "" {
			if _, err := io.WriteString(w, `<p class="flash">`+templ.EscapeString(message)+`</p>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<form method="post" action="/submit">`); err != nil {
			return err
		}
		if err := field.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<input type="text" name="name" required><button type="submit">Sign</button></form>`)
		return err
	}))
}
