package csrf_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestHiddenField(t *testing.T) {
	t.Parallel()

	ctx := csrf.WithToken(context.Background(), "abc-_123")
	assert.Equal(t, `<input type="hidden" name="csrf_token" value="abc-_123">`, render(t, ctx, csrf.HiddenField("csrf_token")))

	// outside a protected request the value is empty
	assert.Equal(t, `<input type="hidden" name="csrf_token" value="">`, render(t, context.Background(), csrf.HiddenField("csrf_token")))
}

func TestHiddenField_Escapes(t *testing.T) {
	t.Parallel()

	ctx := csrf.WithToken(context.Background(), `"><script>`)
	out := render(t, ctx, csrf.HiddenField(`x" onfocus="y`))
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, `x" onfocus`)
	assert.Contains(t, out, "&#34;&gt;&lt;script&gt;")
}

func TestMetaTag(t *testing.T) {
	t.Parallel()

	ctx := csrf.WithToken(context.Background(), "tok")
	assert.Equal(t, `<meta name="csrf-token" content="tok">`, render(t, ctx, csrf.MetaTag()))
}

func TestProtector_HiddenField(t *testing.T) {
	t.Parallel()

	p := newProtector(t, func(c *csrf.Config) { c.Token.FieldName = "authenticity_token" })

	var out string
	h := p.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		out = render(t, r.Context(), p.HiddenField())
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	token := w.Header().Get("X-CSRF-Token")
	require.NotEmpty(t, token)
	assert.Equal(t, `<input type="hidden" name="authenticity_token" value="`+token+`">`, out)
}

func TestTokenFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, csrf.TokenFromContext(context.Background()))
	assert.Equal(t, "t", csrf.TokenFromContext(csrf.WithToken(context.Background(), "t")))
}
