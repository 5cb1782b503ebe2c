// Package publisher delivers audit events to a sink, synchronously by
// default or through a bounded buffer with a background drain goroutine.
package publisher

import (
	"context"
	"sync"
	"sync/atomic"

	"nomen/pkg/platform/audit"
	"nomen/pkg/requestcontext"
)

// Publisher emits audit events. In async mode Emit never blocks: when the
// buffer is full the event is dropped and counted.
type Publisher struct {
	sink    audit.Sink
	inbox   chan audit.Event
	wg      sync.WaitGroup
	dropped atomic.Int64
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with the given
// buffer capacity.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.inbox = make(chan audit.Event, size)
		}
	}
}

// NewPublisher constructs a publisher for the given sink.
func NewPublisher(sink audit.Sink, opts ...Option) *Publisher {
	p := &Publisher{sink: sink}
	for _, opt := range opts {
		opt(p)
	}
	if p.inbox != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit records an event, stamping timestamp and request ID from the context
// when absent.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if p.inbox == nil {
		return p.sink.Append(ctx, event)
	}
	select {
	case p.inbox <- event:
	default:
		p.dropped.Add(1)
	}
	return nil
}

// Dropped reports how many events were discarded because the buffer was
// full.
func (p *Publisher) Dropped() int64 {
	return p.dropped.Load()
}

// Close drains any buffered events and stops the background goroutine. It
// is a no-op in sync mode.
func (p *Publisher) Close() {
	if p.inbox == nil {
		return
	}
	close(p.inbox)
	p.wg.Wait()
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	// The emitting request's context may already be gone when a buffered
	// event is persisted.
	for event := range p.inbox {
		_ = p.sink.Append(context.Background(), event)
	}
}
