// Package config loads server configuration from environment variables and
// an optional YAML file so main stays lean. Every key can be set as
// NOMEN_<SECTION>_<KEY>; a config file fills whatever the environment leaves
// unset.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	pstrings "nomen/pkg/platform/strings"
)

// Config is the full server configuration.
type Config struct {
	Server  Server  `mapstructure:"server"`
	Auth    Auth    `mapstructure:"auth"`
	Store   Store   `mapstructure:"store"`
	Ledger  Ledger  `mapstructure:"ledger"`
	Audit   Audit   `mapstructure:"audit"`
	Log     Log     `mapstructure:"log"`
	Tracing Tracing `mapstructure:"tracing"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Auth configures caller and operator authentication.
type Auth struct {
	JWTSigningKey     string `mapstructure:"jwt_signing_key"`
	JWTIssuer         string `mapstructure:"jwt_issuer"`
	JWTAudience       string `mapstructure:"jwt_audience"`
	OperatorTokenHash string `mapstructure:"operator_token_hash"`
}

// Store selects where registry state lives.
type Store struct {
	Backend     string `mapstructure:"backend"`
	PostgresURL string `mapstructure:"postgres_url"`
	RedisURL    string `mapstructure:"redis_url"`
}

// Ledger selects where the registry's account balance lives.
type Ledger struct {
	Backend    string `mapstructure:"backend"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// Audit selects the audit event sink.
type Audit struct {
	Sink    string   `mapstructure:"sink"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	Buffer  int      `mapstructure:"buffer"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Tracing configures span export.
type Tracing struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from the environment and, when path is not
// empty, from the given YAML file. A missing file at the default location
// is not an error; an explicitly named file must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NOMEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("nomen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/nomen")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Audit.Brokers = pstrings.DedupeAndTrim(cfg.Audit.Brokers)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 2*time.Minute)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	// Development default; override in production.
	v.SetDefault("auth.jwt_signing_key", "dev-secret-key-change-in-production")
	v.SetDefault("auth.jwt_issuer", "nomen")
	v.SetDefault("auth.jwt_audience", "registry")

	v.SetDefault("store.backend", "memory")
	v.SetDefault("ledger.backend", "memory")
	v.SetDefault("ledger.sqlite_path", "nomen-ledger.db")

	v.SetDefault("audit.sink", "memory")
	v.SetDefault("audit.topic", "nomen.audit")
	v.SetDefault("audit.buffer", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("tracing.enabled", false)
}

func (c Config) validate() error {
	switch c.Store.Backend {
	case "memory":
	case "postgres":
		if c.Store.PostgresURL == "" {
			return fmt.Errorf("store.postgres_url is required for the postgres backend")
		}
	case "redis":
		if c.Store.RedisURL == "" {
			return fmt.Errorf("store.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	switch c.Ledger.Backend {
	case "memory":
	case "sqlite":
		if c.Ledger.SQLitePath == "" {
			return fmt.Errorf("ledger.sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown ledger backend %q", c.Ledger.Backend)
	}

	switch c.Audit.Sink {
	case "memory":
	case "kafka":
		if len(c.Audit.Brokers) == 0 {
			return fmt.Errorf("audit.brokers is required for the kafka sink")
		}
	default:
		return fmt.Errorf("unknown audit sink %q", c.Audit.Sink)
	}

	return nil
}
