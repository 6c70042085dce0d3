package csrf

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HiddenField renders the token issued for the current request as a hidden
// form input named after the configured body field.
//
//	<form method="post">
//	    @protector.HiddenField()
//	</form>
func (p *Protector) HiddenField() templ.Component {
	return HiddenField(p.cfg.Token.FieldName)
}

// HiddenField renders <input type="hidden" name="{name}" value="{token}">.
func HiddenField(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<input type="hidden" name="`+templ.EscapeString(name)+
			`" value="`+templ.EscapeString(TokenFromContext(ctx))+`">`)
		return err
	})
}

// MetaTag renders <meta name="csrf-token" content="{token}"> for scripts that
// echo the token through the request header.
func MetaTag() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<meta name="csrf-token" content="`+templ.EscapeString(TokenFromContext(ctx))+`">`)
		return err
	})
}
