package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ReportText, cfg.ReportFormat)
	assert.Equal(t, "Ansible", cfg.ReferenceLabel)
	assert.Equal(t, "AnsiGo", cfg.CandidateLabel)
	assert.Equal(t, "compare-output", cfg.ServiceName)
	assert.False(t, cfg.TracingEnabled())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPARE_LOG_LEVEL", "DEBUG")
	t.Setenv("COMPARE_LOG_FORMAT", "json")
	t.Setenv("COMPARE_REPORT_FORMAT", "json")
	t.Setenv("COMPARE_REFERENCE_LABEL", "ansible-2.16")
	t.Setenv("COMPARE_CANDIDATE_LABEL", "ansigo-dev")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ReportJSON, cfg.ReportFormat)
	assert.Equal(t, "ansible-2.16", cfg.ReferenceLabel)
	assert.Equal(t, "ansigo-dev", cfg.CandidateLabel)
	assert.True(t, cfg.TracingEnabled())
}

func TestLoadFromEnv_InvalidReportFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPARE_REPORT_FORMAT", "yaml")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid COMPARE_REPORT_FORMAT")
}

func TestLoadFromEnv_InvalidLogFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPARE_LOG_FORMAT", "logfmt")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid COMPARE_LOG_FORMAT")
}

func TestLoadFromEnv_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPARE_LOG_LEVEL", "verbose")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid COMPARE_LOG_LEVEL")
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"COMPARE_LOG_LEVEL", "COMPARE_LOG_FORMAT", "COMPARE_REPORT_FORMAT",
		"COMPARE_REFERENCE_LABEL", "COMPARE_CANDIDATE_LABEL", "COMPARE_SERVICE_NAME",
		"OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		orig, wasSet := os.LookupEnv(key)
		if wasSet {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}
