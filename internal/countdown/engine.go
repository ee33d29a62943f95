package countdown

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/garrettladley/arctimer/internal/xslog"
)

const (
	TickInterval = time.Second

	updateBuffer = 16
)

type request struct {
	event Event
	query bool
	reply chan reply
}

type reply struct {
	snapshot Snapshot
	err      error
}

// Engine owns a Machine on a single goroutine. Callers submit events over a
// channel and observe the timer through the Snapshots published on Updates.
type Engine struct {
	clock    Clock
	interval time.Duration
	logger   *slog.Logger
	newID    func() string

	requests chan request
	updates  chan Snapshot
	done     chan struct{}
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		e.interval = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

func WithSessionIDs(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:    SystemClock,
		interval: TickInterval,
		logger:   slog.Default(),
		newID:    uuid.NewString,
		requests: make(chan request),
		updates:  make(chan Snapshot, updateBuffer),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Updates carries one Snapshot per state change, in order.
func (e *Engine) Updates() <-chan Snapshot { return e.updates }

// Done is closed once Run has returned.
func (e *Engine) Done() <-chan struct{} { return e.done }

// Run drives the engine until ctx is cancelled. It must be called exactly once.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)

	var (
		machine Machine
		session string
		ticker  Ticker
		tickC   <-chan time.Time
	)

	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tickC = nil
		}
	}
	defer stopTicker()

	apply := func(ev Event) (Snapshot, error) {
		tr, err := machine.Apply(ev)
		if err != nil {
			e.logger.DebugContext(ctx, "rejected event",
				xslog.Event(ev.Kind.String()),
				xslog.Error(err))
			return machine.State().snapshot(session), err
		}

		if tr.Started {
			session = e.newID()
		}
		if tr.StopTicker {
			stopTicker()
		}
		if tr.StartTicker && ticker == nil {
			ticker = e.clock.NewTicker(e.interval)
			tickC = ticker.C()
		}

		snap := machine.State().snapshot(session)
		snap.Expired = tr.Expired

		if tr.Changed {
			e.log(ctx, ev, snap)
			select {
			case e.updates <- snap:
			case <-ctx.Done():
			}
		}
		return snap, nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-e.requests:
			if req.query {
				req.reply <- reply{snapshot: machine.State().snapshot(session)}
				continue
			}
			snap, err := apply(req.event)
			req.reply <- reply{snapshot: snap, err: err}
		case <-tickC:
			_, _ = apply(Event{Kind: EventTick})
		}
	}
}

func (e *Engine) log(ctx context.Context, ev Event, snap Snapshot) {
	attrs := []any{
		xslog.SessionID(snap.Session),
		xslog.Event(ev.Kind.String()),
		xslog.Phase(snap.PhaseName),
		xslog.Remaining(snap.Remaining),
		xslog.Fraction(snap.Fraction),
	}
	switch {
	case snap.Expired:
		e.logger.InfoContext(ctx, "countdown expired", attrs...)
	case ev.Kind == EventTick:
		e.logger.DebugContext(ctx, "countdown tick", attrs...)
	default:
		e.logger.InfoContext(ctx, "countdown transition", append(attrs, xslog.Total(snap.Total))...)
	}
}

func (e *Engine) Start(ctx context.Context, hours, minutes, seconds string) (Snapshot, error) {
	return e.submit(ctx, request{event: StartEvent(hours, minutes, seconds)})
}

func (e *Engine) Pause(ctx context.Context) (Snapshot, error) {
	return e.submit(ctx, request{event: Event{Kind: EventPause}})
}

func (e *Engine) Resume(ctx context.Context) (Snapshot, error) {
	return e.submit(ctx, request{event: Event{Kind: EventResume}})
}

func (e *Engine) Reset(ctx context.Context) (Snapshot, error) {
	return e.submit(ctx, request{event: Event{Kind: EventReset}})
}

// Snapshot returns the current state without changing it.
func (e *Engine) Snapshot(ctx context.Context) (Snapshot, error) {
	return e.submit(ctx, request{query: true})
}

func (e *Engine) submit(ctx context.Context, req request) (Snapshot, error) {
	req.reply = make(chan reply, 1)

	select {
	case e.requests <- req:
	case <-e.done:
		return Snapshot{}, ErrStopped
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}

	select {
	case r := <-req.reply:
		return r.snapshot, r.err
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}
