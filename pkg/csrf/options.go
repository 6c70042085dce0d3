package csrf

import (
	"io"
	"log/slog"
	"net/http"
)

// ErrorHandler renders a rejected request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Option configures a Protector.
type Option func(*Protector)

// WithLogger sets the logger used for rejections and secret issuance.
// Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(p *Protector) {
		if l != nil {
			p.log = l
		}
	}
}

// WithRandom replaces crypto/rand as the entropy source for secrets and salts.
// Intended for tests.
func WithRandom(r io.Reader) Option {
	return func(p *Protector) {
		if r != nil {
			p.random = r
		}
	}
}

// WithErrorHandler overrides DefaultErrorHandler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(p *Protector) {
		if h != nil {
			p.onError = h
		}
	}
}

// WithMetrics reports outcomes to m.
func WithMetrics(m *Metrics) Option {
	return func(p *Protector) { p.metrics = m }
}
