package mailroom

import (
	"context"
	"log/slog"

	"github.com/fogfish/opts"
	"github.com/google/uuid"
)

// Subscriber is a named handle that registers interest in topics with a Router
// and reacts when the provider fans a matching notification out to it. The
// reaction is the single customization point; the default one logs the
// subscriber's name and the received topic.
//
// Subscribers never see publishers and publishers never see subscribers; both
// depend only on the provider's capability surface.
type Subscriber struct {
	id       uuid.UUID
	name     string
	router   Router
	reaction ReactorFunc
	log      *slog.Logger
}

var _ Reactor = (*Subscriber)(nil)

// NewSubscriber returns a subscriber handle named name, bound to router.
func NewSubscriber(name string, router Router, options ...opts.Option[Subscriber]) *Subscriber {
	s := &Subscriber{
		id:     uuid.Must(uuid.NewV7()),
		name:   name,
		router: router,
		log:    slog.Default(),
	}
	if err := opts.Apply(s, options); err != nil {
		panic(err)
	}
	return s
}

// ID returns the handle's unique identity. Two handles with the same name are
// still distinct registrations.
func (s *Subscriber) ID() string { return s.id.String() }

// Name returns the subscriber's display name.
func (s *Subscriber) Name() string { return s.name }

// Subscribe registers this handle for topic. Calling it twice for the same
// topic registers the handle twice.
func (s *Subscriber) Subscribe(topic string) {
	s.router.Subscribe(topic, s)
}

// Unsubscribe removes this handle's earliest registration for topic. It
// returns an error wrapping ErrNotSubscribed when the handle is not registered
// for topic.
func (s *Subscriber) Unsubscribe(topic string) error {
	return s.router.Unsubscribe(topic, s)
}

// React is the delivery callback invoked by the provider during a drain.
func (s *Subscriber) React(ctx context.Context, topic string) error {
	if s.reaction != nil {
		return s.reaction(ctx, topic)
	}
	s.log.InfoContext(ctx, "received topic",
		slog.String("subscriber", s.name),
		slog.String("topic", topic),
	)
	return nil
}
