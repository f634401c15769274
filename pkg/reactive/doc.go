// Package reactive provides the observable value primitive used by the
// navigation core.
//
// Value[T] is a container whose writes notify subscribed listeners:
//
//	tab := reactive.NewValue("home")
//	tab.Subscribe(listener) // listener.MarkDirty() on every change
//	tab.Set("search")       // notifies
//	tab.Set("search")       // no change, no notification
//
// Subscription is explicit. Unlike auto-tracking reactive systems, a
// listener sees changes only for values it subscribed to, which keeps the
// dependency graph visible at the call site.
//
// # Batching
//
// Multiple writes can be coalesced so each listener is notified once:
//
//	reactive.Batch(func() {
//	    tab.Set("library")
//	    stack.Set(nil)
//	})
//
// Batches nest; listeners are flushed when the outermost batch ends.
package reactive
