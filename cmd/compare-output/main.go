// compare-output compares an Ansible ad-hoc transcript with an AnsiGo transcript
// of the same command, ignoring fields that vary between runs.
//
// Usage:
//
//	compare-output <ansible-output> <ansigo-output>
//
// Exit code 0 = outputs match. Exit code 1 = differences found, usage error,
// unreadable input or invalid configuration.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ansigo/compare-output/internal/config"
	"github.com/ansigo/compare-output/internal/observability"
	"github.com/ansigo/compare-output/internal/shadow"
)

const usage = "usage: compare-output <ansible-output> <ansigo-output>"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := observability.InitLogger(stderr, cfg.LogLevel, cfg.LogFormat)

	if cfg.TracingEnabled() {
		shutdown, err := observability.InitTracer(ctx, cfg.ServiceName)
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("otel shutdown failed", "error", err)
				}
			}()
		}
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		logger.Error("create metrics", "error", err)
		return 1
	}

	refPath, candPath := args[0], args[1]
	refContent, err := os.ReadFile(refPath)
	if err != nil {
		logger.Error("failed to read transcript", "transcript", cfg.ReferenceLabel, "path", refPath, "error", err)
		return 1
	}
	candContent, err := os.ReadFile(candPath)
	if err != nil {
		logger.Error("failed to read transcript", "transcript", cfg.CandidateLabel, "path", candPath, "error", err)
		return 1
	}

	ex := shadow.NewExtractor(logger)
	refHosts := normalize(ctx, ex, metrics, logger, cfg.ReferenceLabel, string(refContent))
	candHosts := normalize(ctx, ex, metrics, logger, cfg.CandidateLabel, string(candContent))

	_, span := observability.Tracer().Start(ctx, "compare")
	result := shadow.NewComparator(cfg.ReferenceLabel, cfg.CandidateLabel).Evaluate(refHosts, candHosts)
	span.SetAttributes(
		attribute.Int("discrepancies", len(result.Discrepancies)),
		attribute.Bool("match", result.AllMatch),
	)
	span.End()
	metrics.RecordComparison(ctx, len(result.Discrepancies), result.AllMatch)

	write := shadow.WriteText
	if cfg.ReportFormat == config.ReportJSON {
		write = shadow.WriteJSON
	}
	if err := write(stdout, result); err != nil {
		logger.Error("write report", "error", err)
		return 1
	}

	logger.Debug("comparison finished", "summary", result.Summary)
	if !result.AllMatch {
		return 1
	}
	return 0
}

func normalize(ctx context.Context, ex *shadow.Extractor, metrics *observability.Metrics, logger *slog.Logger, label, content string) shadow.TranscriptIndex {
	ctx, span := observability.Tracer().Start(ctx, "normalize",
		trace.WithAttributes(attribute.String("transcript", label)),
	)
	defer span.End()

	hosts := ex.Normalize(content)
	span.SetAttributes(attribute.Int("hosts", hosts.Hosts()))
	metrics.RecordTranscript(ctx, label, hosts.Hosts(), hosts.ParseFailures())

	if hosts.Hosts() == 0 {
		logger.Warn("no hosts found in transcript", "transcript", label)
	}
	return hosts
}
