package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cng-analyzer/internal/model"
)

func noEnv(string) (string, bool) { return "", false }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "cng_usage_log.csv", c.LogFile)
	assert.Equal(t, model.DefaultScenario(), c.Defaults.ToModel())
	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, time.Hour, c.Server.ReportTTL)
}

func TestLoadUnchecked_EmptyPath(t *testing.T) {
	c, err := LoadUnchecked("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadUnchecked_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
log_file: /var/lib/cng/log.csv
defaults:
  petrol_price: 700
  conversion_cost: 300000
server:
  port: "9090"
  report_ttl: 15m
logging:
  format: json
`)
	c, err := LoadUnchecked(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/cng/log.csv", c.LogFile)
	assert.Equal(t, 700.0, c.Defaults.PetrolPrice)
	assert.Equal(t, 300000.0, c.Defaults.ConversionCost)
	assert.Equal(t, 230.0, c.Defaults.CNGPrice, "unset fields keep defaults")
	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, 15*time.Minute, c.Server.ReportTTL)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, "info", c.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "defaults: [\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "defaults:\n  cng_price: -1\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "cng_price")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty log file", func(c *Config) { c.LogFile = "" }},
		{"bad port", func(c *Config) { c.Server.Port = "http" }},
		{"negative ttl", func(c *Config) { c.Server.ReportTTL = -time.Second }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"negative default", func(c *Config) { c.Defaults.DistancePerMonth = -10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	var nilCfg *Config
	assert.ErrorIs(t, nilCfg.Validate(), ErrInvalid)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CNG_LOG_FILE": "/tmp/x.csv",
		"API_PORT":     "7000",
		"LOG_LEVEL":    "debug",
	}
	c := Default()
	c.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(t, "/tmp/x.csv", c.LogFile)
	assert.Equal(t, "7000", c.Server.Port)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)

	c2 := Default()
	c2.ApplyEnv(noEnv)
	assert.Equal(t, Default(), c2)
}

func TestMergeScenario(t *testing.T) {
	base := ScenarioFromModel(model.DefaultScenario())
	out := MergeScenario(base, ScenarioConfig{CNGConsumption: 7})
	assert.Equal(t, 7.0, out.CNGConsumption)
	assert.Equal(t, base.PetrolPrice, out.PetrolPrice)
}
