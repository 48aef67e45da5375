package crash

import (
	"sync"
	"sync/atomic"

	"github.com/midian/base/errors"
)

// Registry holds the process-wide uncaught failure handler. Create one at
// startup and pass it to the code that installs or dispatches to it.
type Registry struct {
	mu      sync.RWMutex
	handler Handler
	nextID  atomic.Int64
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDefault pre-installs h, typically the platform's own handler.
func WithDefault(h Handler) RegistryOption {
	return func(r *Registry) {
		r.handler = h
	}
}

// NewRegistry creates a registry. Without WithDefault no handler is installed
// and dispatched failures are dropped.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default returns the installed handler, or nil.
func (r *Registry) Default() Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handler
}

// SetDefault installs h and returns the handler it replaced.
func (r *Registry) SetDefault(h Handler) Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := r.handler
	r.handler = h
	return prev
}

// Dispatch hands failure to the installed handler. It reports false when no
// handler is installed.
func (r *Registry) Dispatch(t *Thread, failure any) bool {
	h := r.Default()
	if h == nil {
		return false
	}
	h.Uncaught(t, failure)
	return true
}

// NewThread returns a Thread with a fresh ID.
func (r *Registry) NewThread(name string) *Thread {
	return &Thread{ID: r.nextID.Add(1), Name: name}
}

// Go runs fn on a new goroutine guarded by Guard.
func (r *Registry) Go(name string, fn func()) *Thread {
	t := r.NewThread(name)
	go func() {
		defer r.Guard(t)
		fn()
	}()
	return t
}

// Guard recovers a panic and dispatches it as a *Panic. When no handler is
// installed the original value is panicked again. It must be called directly
// by defer:
//
//	defer reg.Guard(reg.NewThread("main"))
func (r *Registry) Guard(t *Thread) {
	v := recover()
	if v == nil {
		return
	}
	if !r.Dispatch(t, &Panic{Value: v, Stack: errors.Callers(1)}) {
		panic(v)
	}
}
