package mailroom

import "context"

// Reactor is the delivery callback capability. The provider invokes React once
// per matching notification during a drain, synchronously and in subscription
// order. Returning an error marks the reaction as failed; how the drain
// responds to that is decided by the provider's DeliveryPolicy.
type Reactor interface {
	React(ctx context.Context, topic string) error
}

// ReactorFunc adapts a plain function to the Reactor interface.
type ReactorFunc func(ctx context.Context, topic string) error

func (f ReactorFunc) React(ctx context.Context, topic string) error {
	return f(ctx, topic)
}

// Router is the subscription-management capability implemented by Provider.
// Subscribers depend on this interface rather than on the concrete provider.
type Router interface {
	// Subscribe appends r to the ordered list for topic, creating the list if
	// absent. No deduplication: subscribing the same handle twice yields two
	// deliveries per matching notification.
	Subscribe(topic string, r Reactor)

	// Unsubscribe removes the first occurrence of r from topic's list. It
	// returns an error wrapping ErrNotSubscribed when the topic has no list or
	// r is not on it; the registry is left unchanged in that case.
	Unsubscribe(topic string, r Reactor) error
}

// Notifier accepts topic notifications for later delivery. Publishers depend
// on this interface rather than on the concrete provider.
type Notifier interface {
	// Notify appends topic to the pending queue. It never fails and has no
	// immediate delivery side effect.
	Notify(topic string)
}

// Deliverer drains the pending queue. Pump depends on this interface.
type Deliverer interface {
	Deliver(ctx context.Context) error
}
