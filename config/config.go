// SPDX-License-Identifier: MIT

// Package config reads the salesman settings from defaults, an optional
// config file and SALESMAN_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/salesman/validation"
)

// EnvPrefix prefixes every environment override, e.g. SALESMAN_HTTP_PORT.
const EnvPrefix = "SALESMAN"

// Dataset locates and shapes the stop catalogue.
type Dataset struct {
	Path            string `mapstructure:"path" validate:"required"`
	Directed        bool   `mapstructure:"directed"`
	GeodesicWeights bool   `mapstructure:"geodesic_weights"`
}

// Route names the depot every run starts from.
type Route struct {
	Depot int `mapstructure:"depot" validate:"gte=0"`
}

// Solver mirrors the tsp options.
type Solver struct {
	ClosingEdge bool `mapstructure:"closing_edge"`
	Hamiltonian bool `mapstructure:"hamiltonian"`
	MaxVertices int  `mapstructure:"max_vertices" validate:"gte=0"`
	MaxPaths    int  `mapstructure:"max_paths" validate:"gte=0"`
}

// HTTP configures the API server.
type HTTP struct {
	Port      int           `mapstructure:"port" validate:"gte=1,lte=65535"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RateLimit float64       `mapstructure:"rate_limit" validate:"gte=0"`
	RateBurst int           `mapstructure:"rate_burst" validate:"gte=0"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

// Config is the full settings tree.
type Config struct {
	Dataset Dataset `mapstructure:"dataset"`
	Route   Route   `mapstructure:"route"`
	Solver  Solver  `mapstructure:"solver"`
	HTTP    HTTP    `mapstructure:"http"`
	Log     Log     `mapstructure:"log"`
}

// SetDefaults registers every key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "./data/stops.json")
	v.SetDefault("dataset.directed", false)
	v.SetDefault("dataset.geodesic_weights", false)

	v.SetDefault("route.depot", 0)

	v.SetDefault("solver.closing_edge", false)
	v.SetDefault("solver.hamiltonian", false)
	v.SetDefault("solver.max_vertices", 10)
	v.SetDefault("solver.max_paths", 0)

	v.SetDefault("http.port", 6060)
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("http.rate_limit", 10.0)
	v.SetDefault("http.rate_burst", 20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// New returns a viper instance with defaults and environment overrides
// wired. When file is non-empty it is read as the config file; otherwise
// "salesman.{yaml,json,toml}" is looked up in the working directory and
// ./data, and its absence is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}

		return v, nil
	}

	v.SetConfigName("salesman")
	v.AddConfigPath(".")
	v.AddConfigPath("./data/")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return v, nil
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := validation.Default().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Load is New followed by Decode.
func Load(file string) (Config, error) {
	v, err := New(file)
	if err != nil {
		return Config{}, err
	}

	return Decode(v)
}
