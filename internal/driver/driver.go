// Package driver runs a timer.State against a real clock without a terminal
// UI. It owns the periodic ticker and applies actions one at a time.
package driver

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/studytimer/internal/config"
	"github.com/akyairhashvil/studytimer/internal/timer"
)

// Ticker is the subset of *time.Ticker the driver needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

func newStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Option configures a Driver.
type Option func(*Driver)

// WithInterval overrides the tick period.
func WithInterval(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.interval = d
		}
	}
}

// WithTicker replaces the clock, mainly for tests.
func WithTicker(f TickerFactory) Option {
	return func(dr *Driver) {
		if f != nil {
			dr.newTicker = f
		}
	}
}

// WithOnChange registers a callback run after every transition that changed
// the state. It runs on the Run goroutine and must not call Dispatch.
func WithOnChange(fn func(prev, next timer.State)) Option {
	return func(dr *Driver) { dr.onChange = fn }
}

// WithStopOnComplete makes Run return once the countdown reaches zero.
func WithStopOnComplete() Option {
	return func(dr *Driver) { dr.stopOnComplete = true }
}

// Driver serialises actions onto a single timer.State.
type Driver struct {
	mu    sync.Mutex
	state timer.State

	actions chan timer.Action
	done    chan struct{}

	interval       time.Duration
	newTicker      TickerFactory
	onChange       func(prev, next timer.State)
	stopOnComplete bool
}

// New creates a driver starting from initial. Run must be called exactly once.
func New(initial timer.State, opts ...Option) *Driver {
	d := &Driver{
		state:     initial,
		actions:   make(chan timer.Action),
		done:      make(chan struct{}),
		interval:  config.TickInterval,
		newTicker: newStdTicker,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns a snapshot of the current state.
func (d *Driver) State() timer.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Dispatch hands a to the Run loop and waits until it is accepted. It
// reports false when Run has already returned.
func (d *Driver) Dispatch(a timer.Action) bool {
	select {
	case d.actions <- a:
		return true
	case <-d.done:
		return false
	}
}

// Done is closed when Run returns.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Run applies dispatched actions and ticks until ctx ends or, with
// WithStopOnComplete, the countdown finishes. The ticker only exists while
// the state is running.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)

	var ticker Ticker
	var tickC <-chan time.Time
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tickC = nil, nil
		}
	}
	defer stopTicker()

	syncTicker := func() {
		running := d.State().Running
		switch {
		case running && ticker == nil:
			ticker = d.newTicker(d.interval)
			tickC = ticker.C()
		case !running:
			stopTicker()
		}
	}

	syncTicker()
	for {
		var finished bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-d.actions:
			finished = d.apply(a)
		case <-tickC:
			finished = d.apply(timer.Tick())
		}
		if finished && d.stopOnComplete {
			return nil
		}
		syncTicker()
	}
}

// apply runs one transition and reports whether it completed the countdown.
func (d *Driver) apply(a timer.Action) bool {
	d.mu.Lock()
	prev := d.state
	next := timer.Transition(prev, a)
	d.state = next
	d.mu.Unlock()

	if next != prev && d.onChange != nil {
		d.onChange(prev, next)
	}
	return timer.Completed(prev, next)
}
