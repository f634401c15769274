package reactive

import "sync"

// batchState holds the open-batch depth and the listeners queued while a
// batch is open. Guarded by a mutex so that subscription-management
// goroutines cannot corrupt the queue, though batches themselves are
// expected to be opened and closed from one goroutine at a time.
var batchState struct {
	mu      sync.Mutex
	depth   int
	pending []Listener
}

// Batch groups writes issued inside fn into a single notification phase.
// Affected listeners are collected, deduplicated by ID, and marked dirty
// once when the outermost batch completes.
//
// Example:
//
//	reactive.Batch(func() {
//	    active.Set(tab)
//	    stack.Set(nil)
//	})
//	// each subscriber of both values is notified once
func Batch(fn func()) {
	batchState.mu.Lock()
	batchState.depth++
	batchState.mu.Unlock()

	defer func() {
		batchState.mu.Lock()
		batchState.depth--
		var flush []Listener
		if batchState.depth == 0 {
			flush = batchState.pending
			batchState.pending = nil
		}
		batchState.mu.Unlock()

		notifyUnique(flush)
	}()

	fn()
}

// deliver routes a notification either to the open batch or directly to
// the listener.
func deliver(l Listener) {
	batchState.mu.Lock()
	if batchState.depth > 0 {
		batchState.pending = append(batchState.pending, l)
		batchState.mu.Unlock()
		return
	}
	batchState.mu.Unlock()

	l.MarkDirty()
}

// notifyUnique marks each listener dirty at most once, preserving the
// order of first appearance.
func notifyUnique(listeners []Listener) {
	if len(listeners) == 0 {
		return
	}
	seen := make(map[uint64]bool, len(listeners))
	for _, l := range listeners {
		id := l.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		l.MarkDirty()
	}
}
