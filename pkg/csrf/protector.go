package csrf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/csrfkit/pkg/cookie"
	"github.com/dmitrymomot/csrfkit/pkg/logger"
)

// Protector binds the token engine to HTTP requests: it keeps the secret in a
// cookie, verifies submitted tokens and issues a fresh token per response.
type Protector struct {
	cfg     Config
	engine  *Engine
	cookies *cookie.Manager
	random  io.Reader
	log     *slog.Logger
	metrics *Metrics
	onError ErrorHandler
}

// New validates cfg and builds a Protector.
func New(cfg Config, opts ...Option) (*Protector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	sameSite, _ := cfg.Cookie.sameSite()

	cookies, err := cookie.New(cfg.Cookie.SigningKeys,
		cookie.WithPath(cfg.Cookie.Path),
		cookie.WithDomain(cfg.Cookie.Domain),
		cookie.WithMaxAge(cfg.Cookie.MaxAge),
		cookie.WithSecure(cfg.Cookie.Secure),
		cookie.WithHTTPOnly(cfg.Cookie.HTTPOnly),
		cookie.WithSameSite(sameSite),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	p := &Protector{
		cfg:     cfg,
		cookies: cookies,
		log:     slog.New(slog.DiscardHandler),
		onError: DefaultErrorHandler,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.engine, err = NewEngine(cfg.SaltByteLength, p.random)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Config returns a copy of the active configuration.
func (p *Protector) Config() Config { return p.cfg }

// Protect runs the CSRF flow for one request. It returns the request to pass
// downstream, carrying the issued token in its context. Excluded paths are
// returned untouched. A failed verification yields ErrTokenInvalid; an
// entropy failure yields ErrEntropy.
func (p *Protector) Protect(w http.ResponseWriter, r *http.Request) (*http.Request, error) {
	if p.cfg.excludes(r.URL.Path) {
		p.metrics.observe(outcomeExcluded)
		return r, nil
	}

	ctx := r.Context()
	secret, err := p.secret(w, r)
	if err != nil {
		p.log.ErrorContext(ctx, "csrf secret unavailable", logger.Component("csrf"), logger.Error(err))
		return r, err
	}

	outcome := outcomeIgnored
	if !p.cfg.ignores(r.Method) {
		if err := p.verify(r, secret); err != nil {
			p.metrics.observe(outcomeRejected)
			p.log.WarnContext(ctx, "csrf token rejected",
				logger.Component("csrf"),
				logger.Outcome(string(outcomeRejected)),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
			return r, err
		}
		outcome = outcomeVerified
	}

	token, err := p.engine.CreateToken(secret)
	if err != nil {
		p.log.ErrorContext(ctx, "csrf token creation failed", logger.Component("csrf"), logger.Error(err))
		return r, err
	}
	encoded := Encode(token)
	w.Header().Set(p.cfg.Token.ResponseHeader, encoded)
	p.metrics.tokenIssued()
	p.metrics.observe(outcome)

	return r.WithContext(WithToken(ctx, encoded)), nil
}

// secret returns the client's secret, issuing a new one when the cookie is
// missing, unreadable or carries a bad signature.
func (p *Protector) secret(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	var (
		value string
		err   error
	)
	if p.cookies.CanSign() {
		value, err = p.cookies.GetSigned(r, p.cfg.Cookie.Name)
	} else {
		value, err = p.cookies.Get(r, p.cfg.Cookie.Name)
	}
	if err == nil {
		if secret, err := Decode(value); err == nil && len(secret) > 0 {
			return secret, nil
		}
	}

	secret, err := SecretGenerator{Random: p.random}.Generate(p.cfg.SecretByteLength)
	if err != nil {
		return nil, err
	}
	if p.cookies.CanSign() {
		if err := p.cookies.SetSigned(w, p.cfg.Cookie.Name, Encode(secret)); err != nil {
			return nil, err
		}
	} else {
		p.cookies.Set(w, p.cfg.Cookie.Name, Encode(secret))
	}

	p.metrics.secretIssued()
	p.log.DebugContext(r.Context(), "csrf secret issued", logger.Component("csrf"), logger.Path(r.URL.Path))
	return secret, nil
}

func (p *Protector) verify(r *http.Request, secret []byte) error {
	text, err := ResolveToken(r, p.cfg.Token.Source(), p.cfg.MaxBodyBytes)
	if err != nil {
		return errors.Join(ErrTokenInvalid, err)
	}
	if text == "" {
		return fmt.Errorf("%w: no token submitted", ErrTokenInvalid)
	}
	if !p.engine.VerifyTokenString(text, secret) {
		return ErrTokenInvalid
	}
	return nil
}
