package reactive

import "testing"

func TestBatchCoalescesNotifications(t *testing.T) {
	a := NewValue(0)
	b := NewValue(0)
	listener := newTestListener()
	a.Subscribe(listener)
	b.Subscribe(listener)

	Batch(func() {
		a.Set(1)
		b.Set(2)
		a.Set(3)
	})

	if listener.dirtyCount() != 1 {
		t.Errorf("expected 1 coalesced notification, got %d", listener.dirtyCount())
	}
}

func TestBatchNested(t *testing.T) {
	a := NewValue(0)
	listener := newTestListener()
	a.Subscribe(listener)

	Batch(func() {
		a.Set(1)
		Batch(func() {
			a.Set(2)
		})
		// Inner batch completion must not flush early
		if listener.dirtyCount() != 0 {
			t.Errorf("inner batch flushed early: %d notifications", listener.dirtyCount())
		}
	})

	if listener.dirtyCount() != 1 {
		t.Errorf("expected 1 notification after outer batch, got %d", listener.dirtyCount())
	}
}

func TestBatchNoChangesNoNotification(t *testing.T) {
	a := NewValue(1)
	listener := newTestListener()
	a.Subscribe(listener)

	Batch(func() {
		a.Set(1)
	})

	if listener.dirtyCount() != 0 {
		t.Errorf("expected no notifications, got %d", listener.dirtyCount())
	}
}

func TestBatchDistinctListeners(t *testing.T) {
	a := NewValue(0)
	b := NewValue(0)
	la := newTestListener()
	lb := newTestListener()
	a.Subscribe(la)
	b.Subscribe(lb)

	Batch(func() {
		a.Set(1)
		b.Set(1)
	})

	if la.dirtyCount() != 1 || lb.dirtyCount() != 1 {
		t.Errorf("expected one notification each, got %d and %d", la.dirtyCount(), lb.dirtyCount())
	}
}

func TestSetOutsideBatchNotifiesImmediately(t *testing.T) {
	a := NewValue(0)
	listener := newTestListener()
	a.Subscribe(listener)

	a.Set(1)
	if listener.dirtyCount() != 1 {
		t.Errorf("expected immediate notification, got %d", listener.dirtyCount())
	}
}
