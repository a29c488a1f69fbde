package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cng-analyzer/internal/cli"
	"cng-analyzer/internal/usagelog"
)

// runCLI executes the root command with args against an isolated log file.
func runCLI(t *testing.T, logPath string, args ...string) (string, error) {
	t.Helper()
	vars := map[string]string{
		"CNG_LOG_FILE": logPath,
		"LOG_LEVEL":    "error",
	}
	lookup := func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}

	var buf bytes.Buffer
	cmd := cli.NewRootCmdWithEnv(lookup)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAnalyze_DefaultsLogsOneRow(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.csv")

	out, err := runCLI(t, logPath, "analyze")
	require.NoError(t, err, out)

	assert.Contains(t, out, "₦70,050.00")
	assert.Contains(t, out, "3.6 months")
	assert.Contains(t, out, "[STRONGLY_RECOMMENDED]")
	assert.Contains(t, out, cli.LoggedMessage)

	entries, err := usagelog.ReadAll(logPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1000.0, entries[0].DistancePerMonth)
}

func TestAnalyze_FlagsOverrideDefaults(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.csv")

	out, err := runCLI(t, logPath, "analyze", "--cng-price", "1308", "--cng-consumption", "6.5")
	require.NoError(t, err, out)

	// 1308 * 6.5 / 100 = 85.02 per km, dearer than petrol.
	assert.Contains(t, out, "No Payback (No Savings)")
	assert.Contains(t, out, "[NOT_COST_EFFECTIVE]")
	assert.Contains(t, out, "Warning: No savings from CNG")

	entries, err := usagelog.ReadAll(logPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Payback.IsNone())
}

func TestAnalyze_NoLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.csv")

	out, err := runCLI(t, logPath, "analyze", "--no-log")
	require.NoError(t, err, out)
	assert.NotContains(t, out, cli.LoggedMessage)

	_, statErr := os.Stat(logPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestAnalyze_RejectsNegative(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.csv")

	_, err := runCLI(t, logPath, "analyze", "--distance=-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance")

	_, statErr := os.Stat(logPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestAnalyze_LogFailureStillPrintsResult(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "missing", "log.csv")

	out, err := runCLI(t, logPath, "analyze")
	require.Error(t, err)
	assert.Contains(t, out, "₦70,050.00")
	assert.NotContains(t, out, cli.LoggedMessage)
}

func TestAnalyze_Exports(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "r.pdf")
	xlsxPath := filepath.Join(dir, "r.xlsx")
	chartsDir := filepath.Join(dir, "charts")

	out, err := runCLI(t, filepath.Join(dir, "log.csv"), "analyze",
		"--pdf", pdfPath, "--xlsx", xlsxPath, "--charts", chartsDir)
	require.NoError(t, err, out)

	for _, p := range []string{
		pdfPath,
		xlsxPath,
		filepath.Join(chartsDir, "comparison.svg"),
		filepath.Join(chartsDir, "cumulative.svg"),
	} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size(), p)
		assert.Contains(t, out, "Wrote "+p)
	}
}

func TestAnalyze_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("defaults:\n  distance_per_month: 2000\n"), 0o644))

	out, err := runCLI(t, filepath.Join(dir, "log.csv"), "--config", cfgPath, "analyze")
	require.NoError(t, err, out)
	// Twice the distance doubles savings.
	assert.Contains(t, out, "₦140,100.00")
}

func TestRank(t *testing.T) {
	dir := t.TempDir()
	scenarios := filepath.Join(dir, "fleet.yaml")
	body := `scenarios:
  - name: commuter
    scenario: {petrol_price: 680, cng_price: 230, distance_per_month: 500, petrol_consumption: 12.5, cng_consumption: 6.5, conversion_cost: 250000}
  - name: taxi
    scenario: {petrol_price: 680, cng_price: 230, distance_per_month: 4000, petrol_consumption: 12.5, cng_consumption: 6.5, conversion_cost: 250000}
`
	require.NoError(t, os.WriteFile(scenarios, []byte(body), 0o644))
	logPath := filepath.Join(dir, "log.csv")

	out, err := runCLI(t, logPath, "rank", "--scenarios", scenarios)
	require.NoError(t, err, out)

	assert.Less(t, bytes.Index([]byte(out), []byte("taxi")), bytes.Index([]byte(out), []byte("commuter")))
	assert.Contains(t, out, "2 scenarios, 2 with payback")

	_, statErr := os.Stat(logPath)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRank_RequiresScenarios(t *testing.T) {
	_, err := runCLI(t, filepath.Join(t.TempDir(), "log.csv"), "rank")
	require.Error(t, err)
}

func TestHistory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "log.csv")

	out, err := runCLI(t, logPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No analyses logged")

	for i := 0; i < 3; i++ {
		_, err := runCLI(t, logPath, "analyze")
		require.NoError(t, err)
	}

	out, err = runCLI(t, logPath, "history", "--limit", "2")
	require.NoError(t, err, out)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("3.6 months")))
	assert.Contains(t, out, "₦85.00")
}

func TestRank_OmittedFieldsUseConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("defaults:\n  cng_price: 1308\n"), 0o644))
	scenarios := filepath.Join(dir, "fleet.yaml")
	body := `scenarios:
  - name: cheap-gas
    scenario: {cng_price: 230}
  - name: dear-gas
    scenario: {distance_per_month: 4000}
`
	require.NoError(t, os.WriteFile(scenarios, []byte(body), 0o644))

	out, err := runCLI(t, filepath.Join(dir, "log.csv"), "--config", cfgPath, "rank", "--scenarios", scenarios)
	require.NoError(t, err, out)

	// dear-gas inherits the configured CNG price of 1308, which costs more per km than petrol.
	assert.Less(t, bytes.Index([]byte(out), []byte("cheap-gas")), bytes.Index([]byte(out), []byte("dear-gas")))
	assert.Contains(t, out, "2 scenarios, 1 with payback")
	assert.Contains(t, out, "₦70,050.00")
}

func TestAnalyze_HelpUsesSCM(t *testing.T) {
	out, err := runCLI(t, filepath.Join(t.TempDir(), "log.csv"), "analyze", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "NGN/SCM")
	assert.Contains(t, out, "SCM/100km")
	assert.NotContains(t, out, "kg")
}
