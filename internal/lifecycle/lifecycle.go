// Package lifecycle models the fetch-and-render state of one page view:
// loading, then either error or loaded.
package lifecycle

import (
	"context"
	"sync"
	"sync/atomic"
)

type Phase int

const (
	Loading Phase = iota
	Failed
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Failed:
		return "error"
	case Loaded:
		return "loaded"
	default:
		return "loading"
	}
}

// Snapshot is an immutable copy of the view state.
type Snapshot[T any] struct {
	Phase   Phase
	Data    T
	Message string
}

// Messenger turns a fetch error into the text shown to the viewer.
type Messenger func(error) string

// View holds the state of one mounted view. It starts loading and mounted.
type View[T any] struct {
	mu      sync.Mutex
	state   Snapshot[T]
	started atomic.Bool
	mounted atomic.Bool
	message Messenger
}

func NewView[T any](message Messenger) *View[T] {
	v := &View[T]{message: message}
	v.mounted.Store(true)
	return v
}

// Unmount stops all later state changes. A fetch already in flight still
// returns, but its result is discarded.
func (v *View[T]) Unmount() {
	v.mounted.Store(false)
}

func (v *View[T]) Mounted() bool {
	return v.mounted.Load()
}

// Load performs the view's single read. Calls after the first are ignored,
// and nothing is recorded once the view is unmounted.
func (v *View[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) Snapshot[T] {
	if !v.started.CompareAndSwap(false, true) {
		return v.Snapshot()
	}
	data, err := fetch(ctx)
	if !v.mounted.Load() {
		return v.Snapshot()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state = Snapshot[T]{Phase: Failed, Message: v.describe(err)}
	} else {
		v.state = Snapshot[T]{Phase: Loaded, Data: data}
	}
	return v.state
}

func (v *View[T]) describe(err error) string {
	if v.message != nil {
		if msg := v.message(err); msg != "" {
			return msg
		}
	}
	return err.Error()
}

func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Mount binds a view to ctx: the view is unmounted as soon as ctx is done,
// and before Mount returns when ctx is already done. The returned stop
// function releases the binding.
func Mount[T any](ctx context.Context, message Messenger) (*View[T], func() bool) {
	v := NewView[T](message)
	if ctx.Err() != nil {
		v.Unmount()
	}
	stop := context.AfterFunc(ctx, v.Unmount)
	return v, stop
}
