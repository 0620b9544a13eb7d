// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// ReportFormat selects how the comparison verdict is written to stdout.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
)

// Config holds all application configuration.
type Config struct {
	LogLevel     string
	LogFormat    string
	ReportFormat ReportFormat

	// Labels used in discrepancy messages.
	ReferenceLabel string
	CandidateLabel string

	// Telemetry settings. Tracing is enabled only when OTLPEndpoint is set.
	ServiceName  string
	OTLPEndpoint string
}

// LoadFromEnv reads configuration from environment variables with sensible defaults.
func LoadFromEnv() (Config, error) {
	cfg := Config{
		LogLevel:       strings.ToLower(envOr("COMPARE_LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(envOr("COMPARE_LOG_FORMAT", "text")),
		ReportFormat:   ReportFormat(strings.ToLower(envOr("COMPARE_REPORT_FORMAT", string(ReportText)))),
		ReferenceLabel: envOr("COMPARE_REFERENCE_LABEL", "Ansible"),
		CandidateLabel: envOr("COMPARE_CANDIDATE_LABEL", "AnsiGo"),
		ServiceName:    envOr("COMPARE_SERVICE_NAME", "compare-output"),
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.ReportFormat != ReportText && cfg.ReportFormat != ReportJSON {
		return Config{}, fmt.Errorf("config: invalid COMPARE_REPORT_FORMAT %q (must be text or json)", cfg.ReportFormat)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("config: invalid COMPARE_LOG_FORMAT %q (must be text or json)", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("config: invalid COMPARE_LOG_LEVEL %q", cfg.LogLevel)
	}

	return cfg, nil
}

// TracingEnabled reports whether an OTLP endpoint was configured.
func (c Config) TracingEnabled() bool { return c.OTLPEndpoint != "" }

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
