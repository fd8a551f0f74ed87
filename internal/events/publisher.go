// Package events delivers committed ledger events to the log and to metrics.
package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/inventory_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_ledger_app/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// LogPublisher writes every event as one structured audit line.
type LogPublisher struct{}

var _ portssvc.EventPublisher = LogPublisher{}

func (LogPublisher) Publish(ctx context.Context, event domain.LedgerEvent) {
	attrs := []any{
		slog.String("event_type", string(event.Type)),
		slog.String("actor_id", event.ActorID),
		slog.String("entity_id", event.EntityID),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.ItemID != "" {
		attrs = append(attrs, slog.String("item_id", event.ItemID))
	}
	if event.Reference != "" {
		attrs = append(attrs, slog.String("reference", event.Reference))
	}
	if len(event.Attributes) > 0 {
		group := make([]any, 0, len(event.Attributes))
		for k, v := range event.Attributes {
			group = append(group, slog.String(k, v))
		}
		attrs = append(attrs, slog.Group("attributes", group...))
	}
	middleware.GetLoggerFromCtx(ctx).InfoContext(ctx, "ledger event", attrs...)
}

// MetricsPublisher counts events by type.
type MetricsPublisher struct {
	counter *prometheus.CounterVec
}

var _ portssvc.EventPublisher = (*MetricsPublisher)(nil)

// NewMetricsPublisher counts into counter, which must have a single "type" label.
func NewMetricsPublisher(counter *prometheus.CounterVec) *MetricsPublisher {
	return &MetricsPublisher{counter: counter}
}

func (p *MetricsPublisher) Publish(_ context.Context, event domain.LedgerEvent) {
	p.counter.WithLabelValues(string(event.Type)).Inc()
}

// Fanout delivers each event to every publisher in order. Nil publishers are skipped.
func Fanout(publishers ...portssvc.EventPublisher) portssvc.EventPublisher {
	out := make(multiPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

type multiPublisher []portssvc.EventPublisher

func (m multiPublisher) Publish(ctx context.Context, event domain.LedgerEvent) {
	for _, p := range m {
		p.Publish(ctx, event)
	}
}
