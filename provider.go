package mailroom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/fogfish/opts"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mailroomlabs/mailroom/pkg/shared"
	"github.com/mailroomlabs/mailroom/pkg/slogx"
)

// Provider is the mediator between publishers and subscribers. It owns two
// structures nothing else may touch: the subscriber registry (topic to ordered
// list of reactors, insertion order preserved on both axes) and the pending
// queue of undelivered notifications.
//
// All methods are safe for concurrent use. A single mutex guards both
// structures; reactions run outside it, so they may re-enter Notify and
// Subscribe during a drain.
type Provider struct {
	mu       sync.Mutex
	registry *orderedmap.OrderedMap[string, []Reactor]
	queue    []Envelope
	seq      uint64

	policy DeliveryPolicy
	log    *slog.Logger
	stats  *shared.Cell[Stats]
}

var (
	_ Router    = (*Provider)(nil)
	_ Notifier  = (*Provider)(nil)
	_ Deliverer = (*Provider)(nil)
)

// New creates a provider. By default it isolates reaction failures and logs
// through slog.Default; see WithPolicy, WithLogger and WithStats.
func New(options ...opts.Option[Provider]) *Provider {
	p := &Provider{
		registry: orderedmap.New[string, []Reactor](),
		policy:   IsolateFailures(),
		log:      slog.Default().With(slogx.LoggerName("mailroom")),
		stats:    shared.NewCell(Stats{}),
	}
	if err := opts.Apply(p, options); err != nil {
		panic(err)
	}
	return p
}

// Notify appends topic to the pending queue. It never fails and triggers no
// delivery; the notification sits until the next drain.
func (p *Provider) Notify(topic string) {
	p.mu.Lock()
	p.seq++
	env := newEnvelope(topic, p.seq)
	p.queue = append(p.queue, env)
	p.mu.Unlock()

	p.stats.Update(func(s Stats) Stats { s.Published++; return s })
	p.log.Debug("queued notification", slog.String("topic", topic), slogx.Stringer("id", env.ID))
}

// Subscribe appends r to topic's ordered list, creating the list if absent.
// Re-subscribing the same handle is not suppressed and yields duplicate
// deliveries.
func (p *Provider) Subscribe(topic string, r Reactor) {
	p.mu.Lock()
	list, _ := p.registry.Get(topic)
	p.registry.Set(topic, append(list, r))
	p.mu.Unlock()

	p.log.Debug("subscribed", slog.String("topic", topic))
}

// Unsubscribe removes the first occurrence of r from topic's list. It returns
// an error wrapping ErrNotSubscribed when topic has no registered list or r is
// not on it, leaving the registry unchanged.
func (p *Provider) Unsubscribe(topic string, r Reactor) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	list, ok := p.registry.Get(topic)
	if !ok {
		return fmt.Errorf("no subscriber list for topic %q: %w", topic, ErrNotSubscribed)
	}
	for i, existing := range list {
		if sameReactor(existing, r) {
			p.registry.Set(topic, append(list[:i:i], list[i+1:]...))
			return nil
		}
	}
	return fmt.Errorf("handle not subscribed to topic %q: %w", topic, ErrNotSubscribed)
}

// Deliver drains the pending queue: notifications go out in FIFO order, and
// for each one the subscribers registered for its topic at delivery time react
// in subscription order, synchronously. A topic with no subscribers is a
// silent no-op. The drained batch is never redelivered, including when
// reactions fail.
//
// Failed reactions are reported as joined ReactionError values; whether a
// failure also aborts the drain is the DeliveryPolicy's call. Cancelling ctx
// stops the drain between notifications, returns the context error, and puts
// the undelivered remainder back at the head of the queue.
func (p *Provider) Deliver(ctx context.Context) error {
	p.mu.Lock()
	batch := p.queue
	p.queue = nil
	p.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	var errs []error
	for i, env := range batch {
		if err := ctx.Err(); err != nil {
			p.requeue(batch[i:])
			p.log.Warn("drain interrupted", slog.Int("retained", len(batch)-i), slogx.Error(err))
			return errors.Join(append(errs, err)...)
		}

		for _, r := range p.reactorsFor(env.Topic) {
			p.stats.Update(func(s Stats) Stats { s.Reactions++; return s })
			err := r.React(ctx, env.Topic)
			if err == nil {
				continue
			}
			rerr := &ReactionError{Subscriber: reactorName(r), Topic: env.Topic, Err: err}
			errs = append(errs, rerr)
			p.stats.Update(func(s Stats) Stats { s.Failures++; return s })
			if perr := p.policy.OnReactionError(ctx, rerr); perr != nil {
				p.log.Warn("drain aborted", slog.Int("discarded", len(batch)-i-1), slogx.Error(perr))
				return errors.Join(errs...)
			}
		}
		p.stats.Update(func(s Stats) Stats { s.Delivered++; return s })
	}

	return errors.Join(errs...)
}

// Topics returns the topic names with a registered subscriber list, in the
// order the lists were created.
func (p *Provider) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, p.registry.Len())
	for pair := p.registry.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Subscribers returns the number of handles registered for topic, counting
// duplicates.
func (p *Provider) Subscribers(topic string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	list, _ := p.registry.Get(topic)
	return len(list)
}

// Pending returns the number of queued, undelivered notifications.
func (p *Provider) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// PendingEnvelopes returns a snapshot of the pending queue in enqueue order.
func (p *Provider) PendingEnvelopes() []Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := make([]Envelope, len(p.queue))
	copy(snapshot, p.queue)
	return snapshot
}

// Stats returns a snapshot of the delivery counters.
func (p *Provider) Stats() Stats {
	return p.stats.Load()
}

func (p *Provider) reactorsFor(topic string) []Reactor {
	p.mu.Lock()
	defer p.mu.Unlock()

	list, ok := p.registry.Get(topic)
	if !ok || len(list) == 0 {
		return nil
	}
	snapshot := make([]Reactor, len(list))
	copy(snapshot, list)
	return snapshot
}

// requeue puts rest back at the head of the queue, ahead of anything enqueued
// while the interrupted drain was running.
func (p *Provider) requeue(rest []Envelope) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(append(make([]Envelope, 0, len(rest)+len(p.queue)), rest...), p.queue...)
}

type named interface {
	Name() string
}

func reactorName(r Reactor) string {
	if n, ok := r.(named); ok {
		return n.Name()
	}
	return ""
}

// sameReactor reports whether two reactor handles are the same registration
// target. Comparable dynamic types use plain equality; function adapters such
// as ReactorFunc are matched by code pointer.
func sameReactor(a, b Reactor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}
