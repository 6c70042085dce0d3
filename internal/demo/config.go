package demo

import (
	"github.com/dmitrymomot/csrfkit/pkg/config"
	"github.com/dmitrymomot/csrfkit/pkg/csrf"
	"github.com/dmitrymomot/csrfkit/pkg/httpserver"
	"github.com/dmitrymomot/csrfkit/pkg/logger"
)

// Config is the full configuration of the demo server.
type Config struct {
	Log  logger.Config     `yaml:"log"`
	HTTP httpserver.Config `yaml:"http"`
	CSRF csrf.Config       `envPrefix:"CSRF_" yaml:"csrf"`
}

// DefaultConfig returns the demo defaults. The secret cookie is not marked
// Secure so the demo works over plain HTTP on localhost.
func DefaultConfig() Config {
	cfg := Config{CSRF: csrf.DefaultConfig()}
	cfg.CSRF.Cookie.Secure = false
	cfg.CSRF.ExcludePathPrefixes = []string{"/api/public/"}
	return cfg
}

// LoadConfig layers an optional YAML file and then the environment over
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := config.LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	} else if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.CSRF.Validate()
}
