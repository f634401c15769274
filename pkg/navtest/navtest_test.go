package navtest

import (
	"testing"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
)

func TestRecorderCountsNotifications(t *testing.T) {
	router := nav.NewRouter(DemoMain)
	rec := NewRecorder()
	router.Subscribe(rec)

	router.Select(TabLibrary)
	router.Push(DemoScreen{Name: "album"})
	if got := rec.DirtyCount(); got != 2 {
		t.Errorf("expected 2 notifications, got %d", got)
	}

	rec.Reset()
	// A presentation touches two values but batches to one notification.
	router.PresentSheet(DemoModal{Name: "settings"})
	if got := rec.DirtyCount(); got != 1 {
		t.Errorf("expected 1 notification after reset, got %d", got)
	}

	router.Unsubscribe(rec)
	router.Select(TabHome)
	if got := rec.DirtyCount(); got != 1 {
		t.Errorf("expected no notifications after unsubscribe, got %d", got)
	}
}

func TestRecorderIdentity(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	if a.ID() == b.ID() {
		t.Errorf("recorders must have distinct listener IDs, both %d", a.ID())
	}
}

func TestCommandLogRecordsInOrder(t *testing.T) {
	router := nav.NewRouter(DemoMain)
	log := NewCommandLog()
	router.Observe(log)

	router.Select(TabProfile).
		Push(DemoScreen{Name: "friends"}).
		Pop()

	if log.Len() != 3 {
		t.Fatalf("expected 3 commands, got %d", log.Len())
	}
	want := []nav.Op{nav.OpSelect, nav.OpPush, nav.OpPop}
	for i, cmd := range log.Commands() {
		if cmd.Op != want[i] {
			t.Errorf("command %d: expected op %q, got %q", i, want[i], cmd.Op)
		}
		if cmd.Context != router.Key() {
			t.Errorf("command %d: expected context %s, got %s", i, router.Key(), cmd.Context)
		}
	}
}

func TestDemoTreeRegistersAllContexts(t *testing.T) {
	meta, err := nav.NewMetaRouter(NewDemoTree(), nav.WithStrictKeys())
	if err != nil {
		t.Fatalf("NewMetaRouter: %v", err)
	}
	if meta.Len() != 3 {
		t.Errorf("expected 3 contexts, got %d", meta.Len())
	}
	for _, name := range []string{"main", "onboarding", "player"} {
		if _, ok := meta.Lookup(nav.KeyFromString(name)); !ok {
			t.Errorf("missing context %q", name)
		}
	}
}
