package mailroom

import (
	"log/slog"
	"time"

	"github.com/fogfish/opts"

	"github.com/mailroomlabs/mailroom/pkg/shared"
)

// WithPolicy selects the DeliveryPolicy a provider consults when a reaction
// fails during a drain. The default is IsolateFailures.
var WithPolicy = opts.ForName[Provider, DeliveryPolicy]("policy")

// WithLogger replaces the provider's logger.
var WithLogger = opts.ForName[Provider, *slog.Logger]("log")

// WithStats makes the provider publish its counters through the given cell.
// Handing the same cell to several providers (or to unrelated observers) gives
// all of them one live view of the numbers.
var WithStats = opts.ForName[Provider, *shared.Cell[Stats]]("stats")

// WithReaction overrides a subscriber's delivery callback. Without it the
// subscriber logs its name and the received topic.
var WithReaction = opts.ForName[Subscriber, ReactorFunc]("reaction")

// WithSubscriberLogger replaces the logger the default reaction emits through.
var WithSubscriberLogger = opts.ForName[Subscriber, *slog.Logger]("log")

// WithInterval sets how often a pump drains on its own, in addition to
// explicit kicks. Zero disables interval draining.
var WithInterval = opts.ForName[Pump, time.Duration]("interval")

// WithPumpLogger replaces the pump's logger.
var WithPumpLogger = opts.ForName[Pump, *slog.Logger]("log")
