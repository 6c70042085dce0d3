package csrf_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
)

func TestPatchTokenSignal(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/stream", nil)
	w := httptest.NewRecorder()
	sse := datastar.NewSSE(w, r)

	require.NoError(t, csrf.PatchTokenSignal(sse, "csrf_token", "tok-123"))

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `{"csrf_token":"tok-123"}`)
}

func TestProtector_DatastarRoundTrip(t *testing.T) {
	t.Parallel()

	p := newProtector(t, nil)
	c := newClient(t, p.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		_ = p.PatchTokenSignal(r.Context(), sse)
	})))

	w := c.get("/stream")
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Header().Get("X-CSRF-Token")
	assert.Contains(t, w.Body.String(), `"csrf_token":"`+token+`"`)

	// the client echoes its signals back on the next action
	r := httptest.NewRequest(http.MethodPost, "/action", strings.NewReader(`{"csrf_token":"`+token+`","count":1}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set(csrf.DatastarRequestHeader, "true")
	assert.Equal(t, http.StatusOK, c.do(r).Code)
}
