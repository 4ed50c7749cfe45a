package mailroom

import (
	"context"
	"log/slog"
	"time"

	"github.com/fogfish/opts"

	"github.com/mailroomlabs/mailroom/pkg/slogx"
)

// Pump drives a Deliverer without anyone calling Deliver by hand. Run drains
// on every Kick and, when an interval is configured, on a ticker as well.
// Reaction failures are logged and do not stop the pump; only context
// cancellation does.
type Pump struct {
	target   Deliverer
	interval time.Duration
	kicks    chan struct{}
	log      *slog.Logger
}

// NewPump returns a pump for target. Without WithInterval it drains only on
// explicit kicks.
func NewPump(target Deliverer, options ...opts.Option[Pump]) *Pump {
	p := &Pump{
		target: target,
		kicks:  make(chan struct{}, 1),
		log:    slog.Default().With(slogx.LoggerName("mailroom.pump")),
	}
	if err := opts.Apply(p, options); err != nil {
		panic(err)
	}
	return p
}

// Kick requests a drain. It never blocks; a kick while one is already pending
// folds into it.
func (p *Pump) Kick() {
	select {
	case p.kicks <- struct{}{}:
	default:
	}
}

// Run drains until ctx is cancelled and returns the context's error. Draining
// stops between notifications on cancellation, so a slow batch does not pin
// the pump past its deadline.
func (p *Pump) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if p.interval > 0 {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.kicks:
		case <-tick:
		}

		if err := p.target.Deliver(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.log.Warn("drain completed with failures", slogx.Error(err))
		}
	}
}
