package config

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is read when Load is given an empty path.
const DefaultPath = "config.yaml"

// EnvPrefix prefixes every environment override, e.g.
// ADVISOR_SERVER__PORT=9000 or ADVISOR_VALIDATION__STRICT_NUMERIC=true.
const EnvPrefix = "ADVISOR_"

type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Tracing    TracingConfig    `koanf:"tracing"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Validation ValidationConfig `koanf:"validation"`
}

type ServerConfig struct {
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
	Path    string        `koanf:"path"` // Route for fulfillment events
}

type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

type TracingConfig struct {
	Exporter    string `koanf:"exporter"` // none, stdout
	ServiceName string `koanf:"service_name"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// ValidationConfig controls slot validation.
type ValidationConfig struct {
	// StrictNumeric rejects unparsable age/investment values. When false an
	// unparsable value passes its range check.
	StrictNumeric bool `koanf:"strict_numeric"`
}

var defaults = map[string]interface{}{
	"server.port":               8080,
	"server.timeout":            "30s",
	"server.path":               "/lex/fulfillment",
	"logging.level":             "info",
	"logging.format":            "json",
	"tracing.exporter":          "none",
	"tracing.service_name":      "lex-portfolio-advisor",
	"metrics.enabled":           true,
	"metrics.path":              "/metrics",
	"validation.strict_numeric": false,
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads configuration from the YAML file at path (DefaultPath when
// empty), then environment variables, then fills defaults for unset keys.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		// File not found is OK, we'll use env vars
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// Environment variables override the file
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	for key, value := range defaults {
		if !k.Exists(key) {
			k.Set(key, value)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.Tracing.ServiceName = substituteEnvVars(cfg.Tracing.ServiceName)
	cfg.Server.Path = substituteEnvVars(cfg.Server.Path)

	return &cfg, nil
}

func substituteEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
