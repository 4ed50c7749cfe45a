// Package reaction provides reusable delivery callbacks and a registry for
// constructing them by name. Registration is dynamic: anything that can build
// a mailroom.Reactor may register a factory under a kind string, and callers
// that only know the kind at runtime construct reactors through New without
// touching this package again.
package reaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mailroomlabs/mailroom"
	"github.com/mailroomlabs/mailroom/internal/registry"
)

// Factory builds a reactor. The label becomes the reactor's display identity
// where the built kind has one.
type Factory func(label string) mailroom.Reactor

var factories = registry.New[Factory]()

// Register makes factory available to New under kind, replacing any previous
// registration for that kind.
func Register(kind string, factory Factory) {
	factories.Add(kind, factory)
}

// New builds a reactor of the registered kind.
func New(kind, label string) (mailroom.Reactor, error) {
	factory, ok := factories.Get(kind)
	if !ok {
		return nil, fmt.Errorf("reaction: unknown kind %q (registered: %v)", kind, factories.Names())
	}
	return factory(label), nil
}

// Kinds returns the registered kind names in lexical order.
func Kinds() []string {
	return factories.Names()
}

func init() {
	Register("log", func(label string) mailroom.Reactor { return Log(label) })
	Register("collect", func(label string) mailroom.Reactor { return NewCollector(label) })
}

// Log returns a reactor that logs the label and the received topic, the
// observable side effect the pattern's default subscriber produces.
func Log(label string) mailroom.Reactor {
	return logReactor{label: label}
}

type logReactor struct {
	label string
}

func (l logReactor) Name() string { return l.label }

func (l logReactor) React(ctx context.Context, topic string) error {
	slog.InfoContext(ctx, "received topic",
		slog.String("subscriber", l.label),
		slog.String("topic", topic),
	)
	return nil
}

// Collector records received topics in delivery order. Handy in tests and
// anywhere the reaction order matters more than the side effect.
type Collector struct {
	label string

	mu     sync.Mutex
	topics []string
}

// NewCollector returns an empty collector labeled label.
func NewCollector(label string) *Collector {
	return &Collector{label: label}
}

func (c *Collector) Name() string { return c.label }

func (c *Collector) React(_ context.Context, topic string) error {
	c.mu.Lock()
	c.topics = append(c.topics, topic)
	c.mu.Unlock()
	return nil
}

// Topics returns a copy of everything collected so far, in delivery order.
func (c *Collector) Topics() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.topics))
	copy(out, c.topics)
	return out
}

// Forward returns a reactor that republishes every received topic as to. The
// forwarded notification lands in the provider's queue and goes out on the
// next drain.
func Forward(n mailroom.Notifier, to string) mailroom.Reactor {
	return mailroom.ReactorFunc(func(_ context.Context, _ string) error {
		n.Notify(to)
		return nil
	})
}

// Fanout combines several reactors into one: each receives the topic in order,
// and their failures are joined.
func Fanout(reactors ...mailroom.Reactor) mailroom.Reactor {
	return mailroom.ReactorFunc(func(ctx context.Context, topic string) error {
		var errs []error
		for _, r := range reactors {
			if err := r.React(ctx, topic); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
