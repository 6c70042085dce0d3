package csrf

import (
	"errors"
	"net/http"
)

// Middleware runs Protect before next and hands failures to the error handler.
func (p *Protector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, err := p.Protect(w, r)
		if err != nil {
			p.onError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// DefaultErrorHandler answers 403 for any verification failure, with the same
// body whatever the cause, and 500 for everything else.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, ErrTokenInvalid) {
		http.Error(w, "csrf validation error", http.StatusForbidden)
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
