package reactive

import (
	"sync"
	"testing"
)

// testListener counts MarkDirty calls.
type testListener struct {
	id uint64

	mu    sync.Mutex
	dirty int
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) MarkDirty() {
	l.mu.Lock()
	l.dirty++
	l.mu.Unlock()
}

func (l *testListener) ID() uint64 { return l.id }

func (l *testListener) dirtyCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dirty
}

func TestValueBasic(t *testing.T) {
	count := NewValue(0)

	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestValueNotifiesOnChange(t *testing.T) {
	count := NewValue(0)
	listener := newTestListener()
	count.Subscribe(listener)

	count.Set(1)
	if listener.dirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.dirtyCount())
	}

	// Same value should not notify
	count.Set(1)
	if listener.dirtyCount() != 1 {
		t.Errorf("same value should not notify, got %d", listener.dirtyCount())
	}

	count.Set(2)
	if listener.dirtyCount() != 2 {
		t.Errorf("expected 2 notifications, got %d", listener.dirtyCount())
	}
}

func TestValueSubscribeDeduplicates(t *testing.T) {
	count := NewValue(0)
	listener := newTestListener()

	count.Subscribe(listener)
	count.Subscribe(listener)

	count.Set(1)
	if listener.dirtyCount() != 1 {
		t.Errorf("double subscription should notify once, got %d", listener.dirtyCount())
	}
}

func TestValueUnsubscribe(t *testing.T) {
	count := NewValue(0)
	listener := newTestListener()

	count.Subscribe(listener)
	count.Set(1)
	count.Unsubscribe(listener)
	count.Set(2)

	if listener.dirtyCount() != 1 {
		t.Errorf("expected no notification after unsubscribe, got %d total", listener.dirtyCount())
	}
}

func TestValueMultipleSubscribers(t *testing.T) {
	count := NewValue(0)
	listeners := []*testListener{newTestListener(), newTestListener(), newTestListener()}
	for _, l := range listeners {
		count.Subscribe(l)
	}

	count.Set(1)
	for i, l := range listeners {
		if l.dirtyCount() != 1 {
			t.Errorf("listener %d expected 1 notification, got %d", i, l.dirtyCount())
		}
	}
}

func TestValueSliceEquality(t *testing.T) {
	path := NewValue([]string{"a"})
	listener := newTestListener()
	path.Subscribe(listener)

	// DeepEqual fallback: a fresh but equal slice is not a change
	path.Set([]string{"a"})
	if listener.dirtyCount() != 0 {
		t.Errorf("equal slice should not notify, got %d", listener.dirtyCount())
	}

	path.Set([]string{"a", "b"})
	if listener.dirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.dirtyCount())
	}
}

func TestValueWithEquals(t *testing.T) {
	// Equality on the integer part only
	v := NewValue(1.2).WithEquals(func(a, b float64) bool {
		return int(a) == int(b)
	})
	listener := newTestListener()
	v.Subscribe(listener)

	v.Set(1.9)
	if listener.dirtyCount() != 0 {
		t.Errorf("custom equality should suppress notification, got %d", listener.dirtyCount())
	}

	v.Set(2.1)
	if listener.dirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.dirtyCount())
	}
}

func TestListenerFunc(t *testing.T) {
	calls := 0
	l := ListenerFunc(func() { calls++ })

	v := NewValue("x")
	v.Subscribe(l)
	v.Set("y")

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	if ListenerFunc(func() {}).ID() == l.ID() {
		t.Error("distinct ListenerFunc values should have distinct IDs")
	}
}
