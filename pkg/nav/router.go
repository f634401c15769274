package nav

import (
	"fmt"

	"github.com/wayfarer-ui/wayfarer/pkg/reactive"
)

// Router owns the navigation state for one configuration: the active tab,
// one push stack per tab, and at most one presented modal (sheet or
// full-screen cover, mutually exclusive).
//
// All mutating operations return the router so commands can be chained:
//
//	r.Select(TabLibrary).Push(AlbumScreen{ID: 42}).PresentSheet(Settings{})
//
// A router is created empty: every tab's stack is empty, nothing is
// presented, and the active tab is the configuration's default.
type Router[S, P, M comparable] struct {
	cfg Config[S, P, M]
	key Key

	active *reactive.Value[S]
	paths  *reactive.Value[map[S][]P]
	sheet  *reactive.Value[*M]
	cover  *reactive.Value[*M]

	observers []CommandObserver
}

// NewRouter creates an empty router for cfg. It panics if cfg declares no
// name or an empty tab set; both are startup-time misdeclarations.
func NewRouter[S, P, M comparable](cfg Config[S, P, M]) *Router[S, P, M] {
	cfg.validate()

	paths := make(map[S][]P, len(cfg.Tabs))
	for _, tab := range cfg.Tabs {
		paths[tab] = nil
	}

	return &Router[S, P, M]{
		cfg:    cfg,
		key:    KeyOf(cfg),
		active: reactive.NewValue(cfg.defaultTab()),
		paths:  reactive.NewValue(paths),
		sheet:  reactive.NewValue[*M](nil),
		cover:  reactive.NewValue[*M](nil),
	}
}

// Key returns the routing key derived from the router's configuration.
func (r *Router[S, P, M]) Key() Key { return r.key }

// Config returns the configuration the router was built from.
func (r *Router[S, P, M]) Config() Config[S, P, M] { return r.cfg }

// ActiveTab returns the currently selected tab.
func (r *Router[S, P, M]) ActiveTab() S { return r.active.Get() }

// ActivePath returns a copy of the active tab's push stack.
func (r *Router[S, P, M]) ActivePath() []P {
	return r.Path(r.active.Get())
}

// Path returns a copy of the push stack for tab, which need not be the
// active one. Unknown tabs have an empty stack.
func (r *Router[S, P, M]) Path(tab S) []P {
	stack := r.paths.Get()[tab]
	if len(stack) == 0 {
		return nil
	}
	out := make([]P, len(stack))
	copy(out, stack)
	return out
}

// PresentedSheet returns the presented sheet, if any.
func (r *Router[S, P, M]) PresentedSheet() (M, bool) {
	return deref(r.sheet.Get())
}

// PresentedCover returns the presented full-screen cover, if any.
func (r *Router[S, P, M]) PresentedCover() (M, bool) {
	return deref(r.cover.Get())
}

// Subscribe registers l for change notification on all router state:
// selection, stacks, and presentation. Mutating commands that touch
// several fields notify l once.
func (r *Router[S, P, M]) Subscribe(l reactive.Listener) {
	r.active.Subscribe(l)
	r.paths.Subscribe(l)
	r.sheet.Subscribe(l)
	r.cover.Subscribe(l)
}

// Unsubscribe removes l from all router state.
func (r *Router[S, P, M]) Unsubscribe(l reactive.Listener) {
	r.active.Unsubscribe(l)
	r.paths.Unsubscribe(l)
	r.sheet.Unsubscribe(l)
	r.cover.Unsubscribe(l)
}

// Observe registers a command observer. Observers are invoked after each
// mutating operation completes, in registration order.
func (r *Router[S, P, M]) Observe(obs CommandObserver) *Router[S, P, M] {
	if obs != nil {
		r.observers = append(r.observers, obs)
	}
	return r
}

// Select makes tab the active selection. The active path now denotes
// tab's stack. Never fails; membership of tab in the configured set is
// enforced at the type level only.
func (r *Router[S, P, M]) Select(tab S) *Router[S, P, M] {
	r.active.Set(tab)
	r.emit(OpSelect)
	return r
}

// Push appends items to the end of the active tab's stack, preserving
// call order.
func (r *Router[S, P, M]) Push(items ...P) *Router[S, P, M] {
	r.appendActive(items)
	r.emit(OpPush)
	return r
}

// SetPath appends items to the end of the active tab's stack.
//
// Despite the name this does not replace the path; it is a historical
// alias of Push kept for compatibility with existing call sites. Use
// SetPathFor to replace a stack wholesale.
func (r *Router[S, P, M]) SetPath(items ...P) *Router[S, P, M] {
	r.appendActive(items)
	r.emit(OpSetPath)
	return r
}

// Pop removes the top item of the active tab's stack. Popping an empty
// stack is a no-op; callers that need to distinguish the case should
// check ActivePath first.
func (r *Router[S, P, M]) Pop() *Router[S, P, M] {
	r.popActive(1)
	r.emit(OpPop)
	return r
}

// PopN removes n items from the top of the active tab's stack, clamped
// to [0, depth]. Negative n pops nothing; n beyond the stack depth
// empties the stack. Never fails.
func (r *Router[S, P, M]) PopN(n int) *Router[S, P, M] {
	r.popActive(n)
	r.emit(OpPop)
	return r
}

// PopToRoot empties the active tab's stack.
func (r *Router[S, P, M]) PopToRoot() *Router[S, P, M] {
	tab := r.active.Get()
	r.mutatePaths(func(paths map[S][]P) {
		paths[tab] = nil
	})
	r.emit(OpPopToRoot)
	return r
}

// SetPathFor replaces the stack for tab, which need not be the active
// one. Replacing the stack of a tab outside the configured set creates
// the entry.
func (r *Router[S, P, M]) SetPathFor(tab S, path []P) *Router[S, P, M] {
	var stack []P
	if len(path) > 0 {
		stack = make([]P, len(path))
		copy(stack, path)
	}
	r.mutatePaths(func(paths map[S][]P) {
		paths[tab] = stack
	})
	r.emit(OpReplacePath)
	return r
}

// PresentSheet presents m as a sheet. If a full-screen cover is up it is
// dismissed first; at most one modal is presented at any time.
func (r *Router[S, P, M]) PresentSheet(m M) *Router[S, P, M] {
	reactive.Batch(func() {
		r.cover.Set(nil)
		r.sheet.Set(&m)
	})
	r.emit(OpPresentSheet)
	return r
}

// PresentCover presents m as a full-screen cover, dismissing any
// presented sheet first.
func (r *Router[S, P, M]) PresentCover(m M) *Router[S, P, M] {
	reactive.Batch(func() {
		r.sheet.Set(nil)
		r.cover.Set(&m)
	})
	r.emit(OpPresentCover)
	return r
}

// Dismiss clears whichever modal is presented.
func (r *Router[S, P, M]) Dismiss() *Router[S, P, M] {
	reactive.Batch(func() {
		r.sheet.Set(nil)
		r.cover.Set(nil)
	})
	r.emit(OpDismiss)
	return r
}

// appendActive appends items to the active stack under a copied map so
// path subscribers observe the change.
func (r *Router[S, P, M]) appendActive(items []P) {
	if len(items) == 0 {
		return
	}
	tab := r.active.Get()
	r.mutatePaths(func(paths map[S][]P) {
		stack := paths[tab]
		next := make([]P, 0, len(stack)+len(items))
		next = append(next, stack...)
		next = append(next, items...)
		paths[tab] = next
	})
}

// popActive removes min(max(n,0), depth) items from the active stack.
func (r *Router[S, P, M]) popActive(n int) {
	if n <= 0 {
		return
	}
	tab := r.active.Get()
	r.mutatePaths(func(paths map[S][]P) {
		stack := paths[tab]
		if n >= len(stack) {
			paths[tab] = nil
			return
		}
		paths[tab] = stack[:len(stack)-n]
	})
}

// mutatePaths applies fn to a copy of the paths map and publishes it.
// Copy-on-write keeps the observable's change detection meaningful.
func (r *Router[S, P, M]) mutatePaths(fn func(map[S][]P)) {
	r.paths.Update(func(paths map[S][]P) map[S][]P {
		next := make(map[S][]P, len(paths))
		for tab, stack := range paths {
			next[tab] = stack
		}
		fn(next)
		return next
	})
}

// emit reports a completed command to the registered observers.
func (r *Router[S, P, M]) emit(op Op) {
	if len(r.observers) == 0 {
		return
	}
	cmd := Command{
		Context:    r.key,
		Op:         op,
		Tab:        fmt.Sprintf("%v", r.active.Get()),
		Depth:      len(r.paths.Get()[r.active.Get()]),
		Presenting: r.sheet.Get() != nil || r.cover.Get() != nil,
	}
	for _, obs := range r.observers {
		obs.NavigationChanged(cmd)
	}
}

// deref unwraps an optional pointer into the (value, ok) form.
func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
