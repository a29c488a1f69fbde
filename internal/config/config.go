package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"cng-analyzer/internal/model"
	"cng-analyzer/internal/store"
	"cng-analyzer/internal/usagelog"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// LogFile is the CSV every analysis is appended to.
	LogFile  string         `yaml:"log_file"`
	Defaults ScenarioConfig `yaml:"defaults"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScenarioConfig holds the input values the form and CLI flags start with.
type ScenarioConfig struct {
	PetrolPrice       float64 `yaml:"petrol_price"`
	CNGPrice          float64 `yaml:"cng_price"`
	DistancePerMonth  float64 `yaml:"distance_per_month"`
	PetrolConsumption float64 `yaml:"petrol_consumption"`
	CNGConsumption    float64 `yaml:"cng_consumption"`
	ConversionCost    float64 `yaml:"conversion_cost"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// ReportTTL is how long an analysis stays downloadable by ID.
	ReportTTL      time.Duration `yaml:"report_ttl"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogFile:  usagelog.DefaultPath,
		Defaults: ScenarioFromModel(model.DefaultScenario()),
		Server: ServerConfig{
			Port:           "8080",
			ReportTTL:      store.DefaultTTL,
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, applies env overrides and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv(os.LookupEnv)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or apply env.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.merge(fileCfg)
	return c, nil
}

func (c *Config) merge(o Config) {
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	c.Defaults = MergeScenario(c.Defaults, o.Defaults)
	if o.Server.Port != "" {
		c.Server.Port = o.Server.Port
	}
	if o.Server.ReportTTL != 0 {
		c.Server.ReportTTL = o.Server.ReportTTL
	}
	if len(o.Server.AllowedOrigins) > 0 {
		c.Server.AllowedOrigins = o.Server.AllowedOrigins
	}
	if o.Logging.Level != "" {
		c.Logging.Level = o.Logging.Level
	}
	if o.Logging.Format != "" {
		c.Logging.Format = o.Logging.Format
	}
}

// ApplyEnv overrides file values with CNG_LOG_FILE, API_PORT, LOG_LEVEL and LOG_FORMAT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("CNG_LOG_FILE"); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup("API_PORT"); ok && v != "" {
		c.Server.Port = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.Logging.Format = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalid)
	}
	if c.LogFile == "" {
		return fmt.Errorf("%w: log_file is required", ErrInvalid)
	}
	if err := c.Defaults.ToModel().Validate(); err != nil {
		return fmt.Errorf("%w: defaults: %w", ErrInvalid, err)
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("%w: server.port %q is not a number", ErrInvalid, c.Server.Port)
	}
	if c.Server.ReportTTL < 0 {
		return fmt.Errorf("%w: server.report_ttl must be >= 0", ErrInvalid)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

func (s ScenarioConfig) ToModel() model.Scenario {
	return model.Scenario{
		PetrolPrice:       s.PetrolPrice,
		CNGPrice:          s.CNGPrice,
		DistancePerMonth:  s.DistancePerMonth,
		PetrolConsumption: s.PetrolConsumption,
		CNGConsumption:    s.CNGConsumption,
		ConversionCost:    s.ConversionCost,
	}
}

func ScenarioFromModel(s model.Scenario) ScenarioConfig {
	return ScenarioConfig{
		PetrolPrice:       s.PetrolPrice,
		CNGPrice:          s.CNGPrice,
		DistancePerMonth:  s.DistancePerMonth,
		PetrolConsumption: s.PetrolConsumption,
		CNGConsumption:    s.CNGConsumption,
		ConversionCost:    s.ConversionCost,
	}
}

// MergeScenario overlays non-zero fields from override onto base.
// A zero in a config file therefore means "keep the default"; pass 0 on the
// command line or in an API request to really use zero.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.PetrolPrice != 0 {
		out.PetrolPrice = override.PetrolPrice
	}
	if override.CNGPrice != 0 {
		out.CNGPrice = override.CNGPrice
	}
	if override.DistancePerMonth != 0 {
		out.DistancePerMonth = override.DistancePerMonth
	}
	if override.PetrolConsumption != 0 {
		out.PetrolConsumption = override.PetrolConsumption
	}
	if override.CNGConsumption != 0 {
		out.CNGConsumption = override.CNGConsumption
	}
	if override.ConversionCost != 0 {
		out.ConversionCost = override.ConversionCost
	}
	return out
}
