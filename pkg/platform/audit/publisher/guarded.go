package publisher

import (
	"context"
	"log/slog"
	"sync/atomic"

	"nomen/pkg/platform/audit"
	"nomen/pkg/platform/circuit"
)

// While the circuit is open, one event in probeInterval is still tried
// against the primary so consecutive successes can close it again.
const probeInterval = 8

// GuardedSink writes events to a primary sink until consecutive failures
// open a circuit breaker, then fails over to a fallback sink. Events routed
// to the fallback are not replayed to the primary after recovery.
type GuardedSink struct {
	breaker  *circuit.Breaker
	primary  audit.Sink
	fallback audit.Sink
	logger   *slog.Logger
	seen     atomic.Int64
}

// NewGuardedSink wraps primary with failover to fallback. Breaker thresholds
// can be tuned through opts.
func NewGuardedSink(name string, primary, fallback audit.Sink, logger *slog.Logger, opts ...circuit.Option) *GuardedSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuardedSink{
		breaker:  circuit.New(name, opts...),
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Append delivers the event to whichever sink the breaker selects.
func (g *GuardedSink) Append(ctx context.Context, event audit.Event) error {
	if g.breaker.IsOpen() && g.seen.Add(1)%probeInterval != 0 {
		return g.fallback.Append(ctx, event)
	}

	err := g.primary.Append(ctx, event)
	if err == nil {
		if _, change := g.breaker.RecordSuccess(); change.Closed {
			g.logger.InfoContext(ctx, "audit sink recovered, circuit closed",
				slog.String("sink", g.breaker.Name()),
			)
		}
		return nil
	}

	useFallback, change := g.breaker.RecordFailure()
	if change.Opened {
		g.logger.WarnContext(ctx, "audit sink failing, circuit opened",
			slog.String("sink", g.breaker.Name()),
			slog.String("error", err.Error()),
		)
	}
	if useFallback {
		return g.fallback.Append(ctx, event)
	}
	return err
}
