package ui

import (
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultQueueSize is the task queue capacity used when none is given.
const DefaultQueueSize = 16

// Looper runs posted tasks one at a time, in order, on its own goroutine.
type Looper struct {
	tasks  chan func()
	done   chan struct{}
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// LooperOption configures a Looper.
type LooperOption func(*Looper)

// WithLogger sets the logger that receives recovered task panics.
func WithLogger(logger *slog.Logger) LooperOption {
	return func(l *Looper) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLooper starts a looper with room for size pending tasks. A size below
// one uses DefaultQueueSize.
func NewLooper(size int, opts ...LooperOption) *Looper {
	if size < 1 {
		size = DefaultQueueSize
	}
	l := &Looper{
		tasks:  make(chan func(), size),
		done:   make(chan struct{}),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	go l.loop()
	return l
}

// Post queues task without blocking. It returns false if the queue is full,
// the looper is closed or task is nil.
func (l *Looper) Post(task func()) bool {
	if task == nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return false
	}
	select {
	case l.tasks <- task:
		return true
	default:
		l.logger.Warn("ui task dropped, queue full", "capacity", cap(l.tasks))
		return false
	}
}

// Close stops accepting tasks, runs the ones already queued and waits for
// the looper goroutine to exit. It is safe to call more than once, but not
// from inside a task.
func (l *Looper) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.tasks)
	}
	l.mu.Unlock()
	<-l.done
}

func (l *Looper) loop() {
	defer close(l.done)
	for task := range l.tasks {
		l.run(task)
	}
}

func (l *Looper) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("ui task panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	task()
}
