package reactive

import (
	"reflect"
	"sync"
)

// Value is an observable container. Writes that change the value notify
// every subscribed listener; writes that leave it equal are silent.
//
// Subscription management is safe for concurrent use, but the navigation
// core mutates values from a single confined goroutine (see pkg/nav).
type Value[T any] struct {
	id uint64

	mu    sync.RWMutex
	value T

	// equal decides whether a write changed the value.
	// Nil means defaultEquals.
	equal func(T, T) bool

	subMu sync.RWMutex
	subs  []Listener
}

// NewValue creates an observable value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{id: nextID(), value: initial}
}

// WithEquals configures a custom equality function and returns the value.
// Useful where reflect.DeepEqual is too expensive or semantically wrong.
func (v *Value[T]) WithEquals(fn func(T, T) bool) *Value[T] {
	v.equal = fn
	return v
}

// ID returns the unique identifier for this value.
func (v *Value[T]) ID() uint64 { return v.id }

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and notifies subscribers if it differs from the
// current value.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	changed := !v.equals(v.value, value)
	if changed {
		v.value = value
	}
	v.mu.Unlock()

	if changed {
		v.notify()
	}
}

// Update applies fn to the current value and stores the result,
// notifying subscribers if the result differs.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	next := fn(v.value)
	changed := !v.equals(v.value, next)
	if changed {
		v.value = next
	}
	v.mu.Unlock()

	if changed {
		v.notify()
	}
}

// Subscribe adds l to this value's subscribers.
// Subscribing the same listener twice is a no-op (deduplicated by ID).
func (v *Value[T]) Subscribe(l Listener) {
	if l == nil {
		return
	}
	v.subMu.Lock()
	defer v.subMu.Unlock()

	lid := l.ID()
	for _, existing := range v.subs {
		if existing.ID() == lid {
			return
		}
	}
	v.subs = append(v.subs, l)
}

// Unsubscribe removes l from this value's subscribers.
func (v *Value[T]) Unsubscribe(l Listener) {
	if l == nil {
		return
	}
	v.subMu.Lock()
	defer v.subMu.Unlock()

	lid := l.ID()
	for i, existing := range v.subs {
		if existing.ID() == lid {
			v.subs[i] = v.subs[len(v.subs)-1]
			v.subs = v.subs[:len(v.subs)-1]
			return
		}
	}
}

// notify marks every subscriber dirty, or queues them if a batch is open.
// Subscribers are copied out first so no lock is held during MarkDirty.
func (v *Value[T]) notify() {
	v.subMu.RLock()
	subs := make([]Listener, len(v.subs))
	copy(subs, v.subs)
	v.subMu.RUnlock()

	for _, sub := range subs {
		deliver(sub)
	}
}

func (v *Value[T]) equals(a, b T) bool {
	if v.equal != nil {
		return v.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for common comparable types and falls back to
// reflect.DeepEqual for slices, maps, and structs.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case uint64:
		return av == any(b).(uint64)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
