package mailroom

// Publisher is a thin handle that forwards topic notifications to a Notifier.
// It holds no state beyond that reference and knows nothing about subscribers;
// the provider in the middle keeps both sides decoupled.
type Publisher struct {
	provider Notifier
}

// NewPublisher returns a publisher bound to provider.
func NewPublisher(provider Notifier) *Publisher {
	return &Publisher{provider: provider}
}

// Publish forwards topic to the provider. Any topic string is accepted.
func (p *Publisher) Publish(topic string) {
	p.provider.Notify(topic)
}
