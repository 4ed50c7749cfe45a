package mailroom

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberIdentity(t *testing.T) {
	p := New()
	a := NewSubscriber("same", p)
	b := NewSubscriber("same", p)

	assert.Equal(t, "same", a.Name())
	assert.Equal(t, "same", b.Name())
	assert.NotEqual(t, a.ID(), b.ID(), "handles are distinct even with equal names")
}

func TestSubscriberDefaultReaction(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := New()
	sub := NewSubscriber("First", p, WithSubscriberLogger(logger))

	require.NoError(t, sub.React(context.Background(), "ping"))

	out := buf.String()
	assert.Contains(t, out, "subscriber=First")
	assert.Contains(t, out, "topic=ping")
}

func TestSubscriberCustomReaction(t *testing.T) {
	boom := errors.New("boom")

	p := New()
	var got []string
	sub := NewSubscriber("custom", p, WithReaction(func(_ context.Context, topic string) error {
		got = append(got, topic)
		return boom
	}))

	err := sub.React(context.Background(), "ping")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"ping"}, got)
}

func TestSubscriberLifecycle(t *testing.T) {
	p := New()
	var tr tracker

	sub := NewSubscriber("A", p, WithReaction(tr.reaction("A")))
	sub.Subscribe("ping")

	p.Notify("ping")
	require.NoError(t, p.Deliver(context.Background()))

	require.NoError(t, sub.Unsubscribe("ping"))

	p.Notify("ping")
	require.NoError(t, p.Deliver(context.Background()))

	assert.Equal(t, []string{"A:ping"}, tr.entries(), "no deliveries after unsubscribing")
}
