// Package config carga la configuración del proceso.
//
// Orden de precedencia (de menor a mayor): defaults, archivo YAML (--config o
// shelter.yaml en el cwd), variables SHELTER_* y flags de la línea de comandos.
// Un .env en el cwd se carga al importar el paquete.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix   = "SHELTER_"
	DefaultFile = "shelter.yaml"
)

type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=development test production"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Addr               string        `koanf:"addr" validate:"required"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
}

// DatabaseConfig: driver=memory no abre pool; el resto requiere dsn.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=memory postgres sqlite mysql"`
	DSN             string        `koanf:"dsn" validate:"required_unless=Driver memory"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	LogQueries      bool          `koanf:"log_queries"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func (c DatabaseConfig) InMemory() bool {
	return c.Driver == "memory"
}

func defaults() map[string]any {
	return map[string]any{
		"env": "development",

		"server.addr":                 ":8080",
		"server.read_timeout":         "5s",
		"server.write_timeout":        "10s",
		"server.idle_timeout":         "60s",
		"server.shutdown_timeout":     "10s",
		"server.cors_allowed_origins": []string{"*"},

		"database.driver":             "memory",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "30m",
		"database.conn_max_idle_time": "5m",
		"database.log_queries":        false,
		"database.auto_migrate":       true,

		"log.level":  "info",
		"log.format": "text",
	}
}

// flagKeys mapea flags de la CLI a keys de config.
var flagKeys = map[string]string{
	"env":          "env",
	"addr":         "server.addr",
	"db-driver":    "database.driver",
	"db-dsn":       "database.dsn",
	"auto-migrate": "database.auto_migrate",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// envKey: SHELTER_DATABASE__MAX_OPEN_CONNS -> database.max_open_conns
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// listKeys son las keys que en env vienen como lista separada por comas.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// envValue mapea la key y parte las listas: "http://a,http://b" -> []string.
func envValue(k, v string) (string, any) {
	key := envKey(k)
	if !listKeys[key] {
		return key, v
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return key, out
}

// Load arma la configuración. flags puede ser nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := configFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// configFile: un path explícito debe existir; sin path se usa shelter.yaml si está.
func configFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("config file %s: %w", DefaultFile, err)
	}
	return "", nil
}
