// Package config loads application configuration into typed structs.
//
// Environment parsing is delegated to github.com/caarlos0/env/v11, dotenv
// files to github.com/joho/godotenv and YAML files to gopkg.in/yaml.v3.
//
// # Usage
//
// Load parses the environment once per struct type and caches the result:
//
//	type HTTPConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTPConfig
//	config.MustLoad(&cfg)
//
// LoadFile layers a YAML file and then the environment over a struct that
// already holds defaults, giving the precedence defaults < file < env:
//
//	cfg := csrf.DefaultConfig()
//	if err := config.LoadFile("csrf.yaml", &cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures wrap ErrParsingConfig, ErrReadingFile or ErrParsingFile and can be
// matched with errors.Is.
package config
