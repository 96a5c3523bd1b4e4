// Package config loads jar settings from a file and COOKIEJAR_* environment variables.
//
// Example YAML:
//
//	env: production
//	parse:
//	  strict: true
//	defaults:
//	  path: /
//	  secure: true
//	  http_only: true
//	  same_site: lax
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"github.com/UnknownOlympus/cookiejar/cookie"
	"github.com/UnknownOlympus/cookiejar/internal/lib/logger/sl"
	"github.com/UnknownOlympus/cookiejar/jar"
)

var ErrConfigNotFound = errors.New("config file does not exist")

type Config struct {
	Env      string         // Env selects the log format and level: local, development, production.
	Strict   bool           // Strict enables strict Cookie header parsing.
	Defaults DefaultsConfig // Defaults fill unset attributes of cookies added to a jar.
}

// DefaultsConfig mirrors cookie.Defaults. Nil and empty fields are not configured.
type DefaultsConfig struct {
	Domain      *string
	Path        *string
	Secure      *bool
	HTTPOnly    *bool
	Partitioned *bool
	SameSite    string
}

// Load reads the configuration file at path. Environment variables prefixed
// with COOKIEJAR_ override file values, e.g. COOKIEJAR_DEFAULTS_SECURE=true.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	vpr := viper.New()
	vpr.SetConfigFile(path)
	vpr.SetEnvPrefix("COOKIEJAR")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", sl.EnvLocal)
	vpr.SetDefault("parse.strict", false)

	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return &Config{
		Env:    vpr.GetString("env"),
		Strict: vpr.GetBool("parse.strict"),
		Defaults: DefaultsConfig{
			Domain:      optString(vpr, "defaults.domain"),
			Path:        optString(vpr, "defaults.path"),
			Secure:      optBool(vpr, "defaults.secure"),
			HTTPOnly:    optBool(vpr, "defaults.http_only"),
			Partitioned: optBool(vpr, "defaults.partitioned"),
			SameSite:    vpr.GetString("defaults.same_site"),
		},
	}, nil
}

// MustLoad loads the configuration named by the CONFIG_PATH environment variable
// and panics on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// CookieDefaults converts the configured defaults into a cookie.Defaults.
func (c *Config) CookieDefaults() (cookie.Defaults, error) {
	defaults := cookie.Defaults{
		Domain:      c.Defaults.Domain,
		Path:        c.Defaults.Path,
		Secure:      c.Defaults.Secure,
		HTTPOnly:    c.Defaults.HTTPOnly,
		Partitioned: c.Defaults.Partitioned,
	}

	if c.Defaults.SameSite != "" {
		sameSite, err := cookie.ParseSameSite(c.Defaults.SameSite)
		if err != nil {
			return cookie.Defaults{}, fmt.Errorf("invalid defaults.same_site: %w", err)
		}
		defaults.SameSite = &sameSite
	}

	if err := defaults.Validate(); err != nil {
		return cookie.Defaults{}, fmt.Errorf("invalid defaults: %w", err)
	}

	return defaults, nil
}

// JarOptions returns the jar options described by the configuration.
// Logs go to stderr; a nil reg disables metrics.
func (c *Config) JarOptions(reg prometheus.Registerer) ([]jar.Option, error) {
	defaults, err := c.CookieDefaults()
	if err != nil {
		return nil, err
	}

	return []jar.Option{
		jar.WithLogger(sl.New(c.Env, os.Stderr)),
		jar.WithRegisterer(reg),
		jar.WithDefaults(defaults),
		jar.WithStrict(c.Strict),
	}, nil
}

func optString(vpr *viper.Viper, key string) *string {
	if !vpr.IsSet(key) {
		return nil
	}
	value := vpr.GetString(key)
	return &value
}

func optBool(vpr *viper.Viper, key string) *bool {
	if !vpr.IsSet(key) {
		return nil
	}
	value := vpr.GetBool(key)
	return &value
}
