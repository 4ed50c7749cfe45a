package mailroom

import (
	"context"
	"log/slog"

	"github.com/mailroomlabs/mailroom/pkg/slogx"
)

// DeliveryPolicy decides how a drain responds to a failed reaction. The
// provider consults the policy once per failure; returning a non-nil error
// aborts the drain, returning nil lets it continue with the remaining
// subscribers and notifications.
//
// Either way the failure itself is recorded: Deliver returns every
// ReactionError joined, and the provider's failure counter is bumped.
type DeliveryPolicy interface {
	OnReactionError(ctx context.Context, rerr *ReactionError) error
}

// IsolateFailures returns the default policy: log the failure and keep
// delivering, so one faulty subscriber cannot block fan-out to the others.
func IsolateFailures() DeliveryPolicy {
	return isolateFailures{}
}

type isolateFailures struct{}

func (isolateFailures) OnReactionError(ctx context.Context, rerr *ReactionError) error {
	slog.WarnContext(ctx, "reaction failed, continuing delivery",
		slog.String("topic", rerr.Topic),
		slog.String("subscriber", rerr.Subscriber),
		slogx.Error(rerr.Err),
	)
	return nil
}

// FailFast returns the propagate-and-abort policy: the first failed reaction
// stops the drain. The rest of the drained batch is discarded, matching the
// unconditional queue clear of the deferred-delivery pattern.
func FailFast() DeliveryPolicy {
	return failFast{}
}

type failFast struct{}

func (failFast) OnReactionError(_ context.Context, rerr *ReactionError) error {
	return rerr
}
