// Command csrfdemo serves a small application protected by the csrf package.
//
// Usage:
//
//	csrfdemo [-config csrfdemo.yaml]
//
// Every setting can also come from the environment (HTTP_ADDR, LOG_LEVEL,
// CSRF_COOKIE_SECURE, CSRF_EXCLUDE_PATH_PREFIXES, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/csrfkit/internal/demo"
	"github.com/dmitrymomot/csrfkit/pkg/csrf"
	"github.com/dmitrymomot/csrfkit/pkg/httpserver"
	"github.com/dmitrymomot/csrfkit/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "Path to a YAML configuration file")
	flag.Parse()

	cfg, err := demo.LoadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewFromConfig(cfg.Log,
		logger.WithContextValue("request_id", middleware.RequestIDKey),
		logger.WithRedactedKeys(cfg.CSRF.Token.FieldName, cfg.CSRF.Cookie.Name),
	)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	protector, err := csrf.New(cfg.CSRF,
		csrf.WithLogger(log),
		csrf.WithMetrics(csrf.NewMetrics(reg)),
	)
	if err != nil {
		return fmt.Errorf("init csrf: %w", err)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr net.Addr) {
			log.Info("csrfdemo ready", slog.String("url", "http://"+addr.String()))
		}),
	)
	return srv.Run(context.Background(), demo.NewRouter(protector, reg, log))
}
