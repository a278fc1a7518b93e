package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"neontanks/game"
)

const instrumentationName = "neontanks/internal/telemetry"

// Meter returns the meter from the global OTel provider (no-op if not configured).
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Recorder turns game events into metrics. It implements game.Listener.
type Recorder struct {
	events     metric.Int64Counter
	finalScore metric.Int64Histogram
	score      metric.Int64ObservableGauge

	current atomic.Int64
}

// New creates the recorder's instruments on m.
func New(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}

	var err error
	r.events, err = m.Int64Counter(
		"game.events",
		metric.WithDescription("Game events by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating events counter: %w", err)
	}

	r.finalScore, err = m.Int64Histogram(
		"game.run.score",
		metric.WithDescription("Score at game over"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score histogram: %w", err)
	}

	r.score, err = m.Int64ObservableGauge(
		"game.score",
		metric.WithDescription("Score of the current run"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(r.score, r.current.Load())
			return nil
		},
		r.score,
	)
	if err != nil {
		return nil, fmt.Errorf("registering score callback: %w", err)
	}

	return r, nil
}

// HandleEvent implements game.Listener.
func (r *Recorder) HandleEvent(ev game.Event) {
	ctx := context.Background()
	attrs := []attribute.KeyValue{attribute.String("event", ev.Kind.String())}
	switch ev.Kind {
	case game.EventShot:
		attrs = append(attrs, attribute.String("owner", ev.Owner.String()))
	case game.EventPickupCollected, game.EventPickupExpired:
		attrs = append(attrs, attribute.String("pickup", ev.Pickup.String()))
	}
	r.events.Add(ctx, 1, metric.WithAttributes(attrs...))

	r.current.Store(int64(ev.Score))
	if ev.Kind == game.EventGameOver {
		r.finalScore.Record(ctx, int64(ev.Score))
	}
}

// Score returns the last score seen
func (r *Recorder) Score() int64 {
	return r.current.Load()
}
