package csrf

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Config holds every option of the protector. Start from DefaultConfig and
// override; loaders fill only the fields they find.
type Config struct {
	Cookie              CookieConfig `envPrefix:"COOKIE_" yaml:"cookie"`
	Token               TokenConfig  `envPrefix:"TOKEN_" yaml:"token"`
	SecretByteLength    int          `env:"SECRET_BYTE_LENGTH" yaml:"secret_byte_length"`
	SaltByteLength      int          `env:"SALT_BYTE_LENGTH" yaml:"salt_byte_length"`
	IgnoreMethods       []string     `env:"IGNORE_METHODS" envSeparator:"," yaml:"ignore_methods"`
	ExcludePathPrefixes []string     `env:"EXCLUDE_PATH_PREFIXES" envSeparator:"," yaml:"exclude_path_prefixes"`
	MaxBodyBytes        int64        `env:"MAX_BODY_BYTES" yaml:"max_body_bytes"`
}

// CookieConfig describes the cookie carrying the secret.
type CookieConfig struct {
	Name     string `env:"NAME" yaml:"name"`
	Path     string `env:"PATH" yaml:"path"`
	Domain   string `env:"DOMAIN" yaml:"domain"`
	MaxAge   int    `env:"MAX_AGE" yaml:"max_age"`
	Secure   bool   `env:"SECURE" yaml:"secure"`
	HTTPOnly bool   `env:"HTTP_ONLY" yaml:"http_only"`
	// SameSite is one of strict, lax, none or default.
	SameSite string `env:"SAME_SITE" yaml:"same_site"`
	// SigningKeys switches the secret cookie to HMAC-signed values.
	// The first key signs; all keys verify.
	SigningKeys []string `env:"SIGNING_KEYS" envSeparator:"," yaml:"signing_keys"`
}

// TokenConfig is the wire convention for tokens.
type TokenConfig struct {
	HeaderName     string `env:"HEADER_NAME" yaml:"header_name"`
	FieldName      string `env:"FIELD_NAME" yaml:"field_name"`
	ResponseHeader string `env:"RESPONSE_HEADER" yaml:"response_header"`
}

// Source returns where submitted tokens are looked up.
func (t TokenConfig) Source() TokenSource {
	return TokenSource{HeaderName: t.HeaderName, FieldName: t.FieldName}
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Cookie: CookieConfig{
			Name:     "_csrfSecret",
			Path:     "/",
			Secure:   true,
			HTTPOnly: true,
			SameSite: "strict",
		},
		Token: TokenConfig{
			HeaderName:     "X-CSRF-Token",
			FieldName:      "csrf_token",
			ResponseHeader: "X-CSRF-Token",
		},
		SecretByteLength: 18,
		SaltByteLength:   8,
		IgnoreMethods:    []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		MaxBodyBytes:     DefaultMaxBodyBytes,
	}
}

// Validate reports the first misconfiguration found.
func (c Config) Validate() error {
	switch {
	case c.SecretByteLength <= 0:
		return fmt.Errorf("%w: %w: secret byte length %d", ErrInvalidConfig, ErrInvalidLength, c.SecretByteLength)
	case c.SaltByteLength <= 0:
		return fmt.Errorf("%w: %w: salt byte length %d", ErrInvalidConfig, ErrInvalidLength, c.SaltByteLength)
	case c.MaxBodyBytes < 0:
		return fmt.Errorf("%w: max body bytes %d", ErrInvalidConfig, c.MaxBodyBytes)
	case c.Cookie.Name == "":
		return fmt.Errorf("%w: cookie name is empty", ErrInvalidConfig)
	case c.Token.ResponseHeader == "":
		return fmt.Errorf("%w: response header is empty", ErrInvalidConfig)
	case c.Token.HeaderName == "" && c.Token.FieldName == "":
		return fmt.Errorf("%w: token header name and field name are both empty", ErrInvalidConfig)
	}

	sameSite, err := c.Cookie.sameSite()
	if err != nil {
		return err
	}
	if sameSite == http.SameSiteNoneMode && !c.Cookie.Secure {
		return fmt.Errorf("%w: same_site=none requires a secure cookie", ErrInvalidConfig)
	}
	return nil
}

func (c CookieConfig) sameSite() (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(c.SameSite)) {
	case "strict":
		return http.SameSiteStrictMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	case "", "default":
		return http.SameSiteDefaultMode, nil
	}
	return 0, fmt.Errorf("%w: unknown same_site %q", ErrInvalidConfig, c.SameSite)
}

// ignores matches the request method exactly; methods are case-sensitive.
func (c Config) ignores(method string) bool {
	return slices.Contains(c.IgnoreMethods, method)
}

// normalized returns a copy with ignored methods upper-cased, so "get" in a
// config file still exempts GET requests.
func (c Config) normalized() Config {
	methods := make([]string, len(c.IgnoreMethods))
	for i, m := range c.IgnoreMethods {
		methods[i] = strings.ToUpper(strings.TrimSpace(m))
	}
	c.IgnoreMethods = methods
	return c
}

func (c Config) excludes(path string) bool {
	return slices.ContainsFunc(c.ExcludePathPrefixes, func(prefix string) bool {
		return prefix != "" && strings.HasPrefix(path, prefix)
	})
}
