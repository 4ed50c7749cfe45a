/*
Package mailroom implements an in-memory publish/subscribe broker with deferred
delivery. Publishers drop topic notifications into a pending queue, subscribers
register interest in topics, and nothing moves until somebody drains the queue.

The package is built around three capability interfaces and one mediator:

  - Notifier: accepts topic notifications for later delivery (consumed by Publisher)
  - Router: manages topic subscriptions (consumed by Subscriber)
  - Reactor: the delivery callback (implemented by any subscriber)
  - Provider: the mediator owning the subscriber registry and the pending queue

# Basic Usage

A typical session wires two subscribers and a publisher to one provider, then
drains the queue explicitly:

	provider := mailroom.New()

	first := mailroom.NewSubscriber("First", provider)
	second := mailroom.NewSubscriber("Second", provider)
	first.Subscribe("ping")
	second.Subscribe("ping")

	publisher := mailroom.NewPublisher(provider)
	publisher.Publish("ping")
	publisher.Publish("ping")

	if err := provider.Deliver(ctx); err != nil {
		// one or more reactions failed
	}

# Delivery semantics

Notifications are delivered in FIFO order, and within a notification the
registered subscribers react in subscription order. A drained notification is
never redelivered: Deliver removes the batch from the queue before fanning out,
so delivery is at-most-once per drain. Subscribing the same handle twice yields
two reactions per matching notification; the registry does no deduplication.

Reactions run synchronously on the caller's goroutine. What happens when a
reaction fails is a pluggable strategy (DeliveryPolicy): the default isolates
failures and keeps delivering, so one faulty subscriber cannot starve the rest.
See FailFast for the propagate-and-abort alternative.

The provider is safe for concurrent use. Reactions may re-enter Notify or
Subscribe during a drain; notifications enqueued mid-drain are picked up by the
next drain.

For hands-off operation, Pump runs Deliver on an interval and/or an explicit
Kick signal under a context.
*/
package mailroom
