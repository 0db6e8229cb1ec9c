// Package loadable models a remote read that may not have been issued yet,
// may be in flight, or has finished with a value or an error.
package loadable

import "context"

type Status int

const (
	StatusNotRequested Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "not_requested"
	}
}

type State[T any] struct {
	status Status
	value  T
	err    error
}

func NotRequested[T any]() State[T] {
	return State[T]{status: StatusNotRequested}
}

func Loading[T any]() State[T] {
	return State[T]{status: StatusLoading}
}

func Loaded[T any](value T) State[T] {
	return State[T]{status: StatusLoaded, value: value}
}

func Failed[T any](err error) State[T] {
	return State[T]{status: StatusFailed, err: err}
}

func (s State[T]) Status() Status { return s.status }

func (s State[T]) IsLoaded() bool { return s.status == StatusLoaded }

func (s State[T]) IsFailed() bool { return s.status == StatusFailed }

// IsPending reports a state that a view renders as a placeholder.
func (s State[T]) IsPending() bool {
	return s.status == StatusNotRequested || s.status == StatusLoading
}

func (s State[T]) Value() (T, bool) {
	return s.value, s.status == StatusLoaded
}

// Get returns the loaded value or the zero value.
func (s State[T]) Get() T {
	return s.value
}

func (s State[T]) Err() error { return s.err }

func Fetch[T any](ctx context.Context, fetch func(context.Context) (T, error)) State[T] {
	value, err := fetch(ctx)
	if err != nil {
		return Failed[T](err)
	}
	return Loaded(value)
}

// Then runs fetch with the upstream value once it is loaded. Any other upstream
// status is carried over without calling fetch.
func Then[T, U any](ctx context.Context, upstream State[T], fetch func(context.Context, T) (U, error)) State[U] {
	switch upstream.status {
	case StatusLoaded:
		return Fetch(ctx, func(ctx context.Context) (U, error) {
			return fetch(ctx, upstream.value)
		})
	case StatusFailed:
		return Failed[U](upstream.err)
	case StatusLoading:
		return Loading[U]()
	default:
		return NotRequested[U]()
	}
}

// When loads a dependent value only if ready reports the upstream value usable.
// An unusable upstream leaves the dependent not requested.
func When[T, U any](ctx context.Context, upstream State[T], ready func(T) bool, fetch func(context.Context, T) (U, error)) State[U] {
	if value, ok := upstream.Value(); ok && !ready(value) {
		return NotRequested[U]()
	}
	return Then(ctx, upstream, fetch)
}

func Map[T, U any](state State[T], transform func(T) U) State[U] {
	if state.status != StatusLoaded {
		return State[U]{status: state.status, err: state.err}
	}
	return Loaded(transform(state.value))
}

// Pending is a fetch running in the background. Until it finishes it reads as Loading.
type Pending[T any] struct {
	done  chan struct{}
	state State[T]
}

func Go[T any](ctx context.Context, fetch func(context.Context) (T, error)) *Pending[T] {
	pending := &Pending[T]{done: make(chan struct{})}
	go func() {
		defer close(pending.done)
		pending.state = Fetch(ctx, fetch)
	}()
	return pending
}

// GoWhen runs When in the background so independent dependents of one
// upstream can load side by side.
func GoWhen[T, U any](ctx context.Context, upstream State[T], ready func(T) bool, fetch func(context.Context, T) (U, error)) *Pending[U] {
	pending := &Pending[U]{done: make(chan struct{})}
	go func() {
		defer close(pending.done)
		pending.state = When(ctx, upstream, ready, fetch)
	}()
	return pending
}

func (p *Pending[T]) State() State[T] {
	select {
	case <-p.done:
		return p.state
	default:
		return Loading[T]()
	}
}

// Wait blocks until the fetch finishes or ctx ends, in which case the state fails with ctx's error.
func (p *Pending[T]) Wait(ctx context.Context) State[T] {
	select {
	case <-p.done:
		return p.state
	case <-ctx.Done():
		return Failed[T](ctx.Err())
	}
}
