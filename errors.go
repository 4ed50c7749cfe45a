package mailroom

import (
	"errors"
	"fmt"
)

// ErrNotSubscribed is returned by Unsubscribe when the topic has no registered
// list or the handle is not on it. Callers can match it with errors.Is.
var ErrNotSubscribed = errors.New("mailroom: not subscribed")

// ReactionError wraps a failure returned by a subscriber's reaction during a
// drain. Deliver reports reaction failures as joined ReactionError values, one
// per failed reaction.
type ReactionError struct {
	Subscriber string
	Topic      string
	Err        error
}

func (e *ReactionError) Error() string {
	if e.Subscriber == "" {
		return fmt.Sprintf("mailroom: reaction to %q failed: %v", e.Topic, e.Err)
	}
	return fmt.Sprintf("mailroom: %s reacting to %q failed: %v", e.Subscriber, e.Topic, e.Err)
}

func (e *ReactionError) Unwrap() error { return e.Err }
