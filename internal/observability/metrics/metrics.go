// Package metrics exposes the OpenTelemetry instruments of the ledger and
// the content pipeline.
package metrics

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/heartmarshall/waxworks/internal/config"
)

// Token directions reported on usage_tokens.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Outcomes reported on content_upserts.
const (
	OutcomeInserted = "inserted"
	OutcomeExisting = "existing"
	OutcomeReplaced = "replaced"
	OutcomeAppended = "appended"
)

// maxConflictAttempt caps the attempt attribute on tx_conflicts; later
// attempts are reported under this value.
const maxConflictAttempt = 5

// Metrics holds the application instruments. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	usageEvents      metric.Int64Counter
	usageTokens      metric.Int64Counter
	budgetRejections metric.Int64Counter
	txConflicts      metric.Int64Counter
	contentUpserts   metric.Int64Counter
}

// ShutdownFunc flushes and stops a meter provider.
type ShutdownFunc func(ctx context.Context) error

// NewProvider configures and registers the global meter provider. When
// metrics are disabled a no-op provider is returned.
func NewProvider(ctx context.Context, cfg config.MetricsConfig, log *slog.Logger) (metric.MeterProvider, ShutdownFunc, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, func(context.Context) error { return nil }, nil
	}

	opts := []otlpmetrichttp.Option{}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.Interval))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	log.InfoContext(ctx, "metrics initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.Duration("interval", cfg.Interval),
	)

	return provider, provider.Shutdown, nil
}

// New creates the instruments on provider.
func New(cfg config.MetricsConfig, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "waxworks"
	}
	meter := provider.Meter(name)

	usageEvents, err := meter.Int64Counter("waxworks_usage_events_total",
		metric.WithDescription("Usage events committed to the ledger."))
	if err != nil {
		return nil, err
	}
	usageTokens, err := meter.Int64Counter("waxworks_usage_tokens_total",
		metric.WithDescription("Tokens committed to the ledger."))
	if err != nil {
		return nil, err
	}
	budgetRejections, err := meter.Int64Counter("waxworks_budget_rejections_total",
		metric.WithDescription("Daily token budget checks that refused a call."))
	if err != nil {
		return nil, err
	}
	txConflicts, err := meter.Int64Counter("waxworks_tx_conflicts_total",
		metric.WithDescription("Transactions retried after lock contention."))
	if err != nil {
		return nil, err
	}
	contentUpserts, err := meter.Int64Counter("waxworks_content_upserts_total",
		metric.WithDescription("Hash-keyed content upserts by outcome."))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		usageEvents:      usageEvents,
		usageTokens:      usageTokens,
		budgetRejections: budgetRejections,
		txConflicts:      txConflicts,
		contentUpserts:   contentUpserts,
	}, nil
}

// RecordUsageEvent counts one committed event and its tokens.
func (m *Metrics) RecordUsageEvent(ctx context.Context, model string, tokensIn, tokensOut int64) {
	if m == nil {
		return
	}
	model = strings.TrimSpace(model)
	m.usageEvents.Add(ctx, 1, metric.WithAttributes(FilterAttributes(attribute.String("model", model))...))
	m.usageTokens.Add(ctx, tokensIn, metric.WithAttributes(FilterAttributes(
		attribute.String("model", model),
		attribute.String("direction", DirectionIn),
	)...))
	m.usageTokens.Add(ctx, tokensOut, metric.WithAttributes(FilterAttributes(
		attribute.String("model", model),
		attribute.String("direction", DirectionOut),
	)...))
}

// RecordBudgetRejection counts a refused budget check.
func (m *Metrics) RecordBudgetRejection(ctx context.Context, model string) {
	if m == nil {
		return
	}
	m.budgetRejections.Add(ctx, 1, metric.WithAttributes(FilterAttributes(
		attribute.String("model", strings.TrimSpace(model)),
	)...))
}

// RecordTxConflict counts a retried transaction by attempt number. It
// satisfies postgres.ConflictObserver.
func (m *Metrics) RecordTxConflict(ctx context.Context, attempt int) {
	if m == nil {
		return
	}
	m.txConflicts.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("attempt", min(max(attempt, 1), maxConflictAttempt)),
	))
}

// RecordContentUpsert counts a hash-keyed upsert of kind ("wax", "world").
func (m *Metrics) RecordContentUpsert(ctx context.Context, kind, outcome string) {
	if m == nil {
		return
	}
	m.contentUpserts.Add(ctx, 1, metric.WithAttributes(FilterAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	)...))
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"model":     {},
	"direction": {},
	"kind":      {},
	"outcome":   {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
