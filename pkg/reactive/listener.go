package reactive

import "sync/atomic"

// Listener is anything that can be notified when an observed value changes.
type Listener interface {
	// MarkDirty notifies the listener that a value it subscribed to has
	// changed. Implementations typically schedule a re-render or re-read.
	MarkDirty()

	// ID returns a unique identifier for this listener.
	// Used to deduplicate subscriptions and batched notifications.
	ID() uint64
}

// funcListener adapts a plain function to the Listener interface.
type funcListener struct {
	id uint64
	fn func()
}

func (l *funcListener) MarkDirty() { l.fn() }
func (l *funcListener) ID() uint64 { return l.id }

// ListenerFunc wraps fn as a Listener with a fresh unique ID.
// Each call returns a distinct listener, even for the same function.
func ListenerFunc(fn func()) Listener {
	return &funcListener{id: nextID(), fn: fn}
}

// idCounter is the source of unique IDs for values and listeners.
var idCounter uint64

// nextID returns a monotonically increasing, never reused ID.
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
