package mailroom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherDelegates(t *testing.T) {
	p := New()
	pub := NewPublisher(p)

	pub.Publish("ping")
	pub.Publish("ping")
	pub.Publish("") // no validation, even the empty topic is accepted

	require.Equal(t, 3, p.Pending())

	envs := p.PendingEnvelopes()
	assert.Equal(t, "ping", envs[0].Topic)
	assert.Equal(t, "ping", envs[1].Topic)
	assert.Equal(t, "", envs[2].Topic)
}

func TestPublisherIsStateless(t *testing.T) {
	p := New()
	var tr tracker

	sub := NewSubscriber("A", p, WithReaction(tr.reaction("A")))
	sub.Subscribe("ping")

	// Two publishers against the same provider are indistinguishable.
	NewPublisher(p).Publish("ping")
	NewPublisher(p).Publish("ping")

	require.NoError(t, p.Deliver(context.Background()))
	assert.Equal(t, []string{"A:ping", "A:ping"}, tr.entries())
}
