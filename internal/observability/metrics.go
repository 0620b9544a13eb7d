package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OTel metric instruments for transcript comparison.
type Metrics struct {
	HostsExtracted metric.Int64Counter
	ParseFailures  metric.Int64Counter
	Discrepancies  metric.Int64Counter
}

// NewMetrics creates the comparison metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("compare-output")

	hostsExtracted, err := meter.Int64Counter("compare.hosts.extracted",
		metric.WithDescription("Number of host blocks extracted from a transcript"),
	)
	if err != nil {
		return nil, err
	}

	parseFailures, err := meter.Int64Counter("compare.payload.parse_failures",
		metric.WithDescription("Number of host payloads that were not valid JSON"),
	)
	if err != nil {
		return nil, err
	}

	discrepancies, err := meter.Int64Counter("compare.discrepancies",
		metric.WithDescription("Number of discrepancies reported by a comparison"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		HostsExtracted: hostsExtracted,
		ParseFailures:  parseFailures,
		Discrepancies:  discrepancies,
	}, nil
}

// RecordTranscript records the hosts and parse failures of one transcript.
func (m *Metrics) RecordTranscript(ctx context.Context, label string, hosts, parseFailures int) {
	attrs := metric.WithAttributes(attribute.String("transcript", label))
	m.HostsExtracted.Add(ctx, int64(hosts), attrs)
	m.ParseFailures.Add(ctx, int64(parseFailures), attrs)
}

// RecordComparison records the outcome of a comparison.
func (m *Metrics) RecordComparison(ctx context.Context, discrepancies int, match bool) {
	m.Discrepancies.Add(ctx, int64(discrepancies),
		metric.WithAttributes(attribute.Bool("match", match)),
	)
}
