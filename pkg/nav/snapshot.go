package nav

import (
	"encoding/json"

	"github.com/wayfarer-ui/wayfarer/pkg/reactive"
)

// SnapshotVersion is the current snapshot format version. Increment on
// breaking changes to the encoded form.
const SnapshotVersion = 1

// Snapshot is the serializable form of a router's state. For JSON
// encoding the tab type S must be usable as an object key (a string or
// integer type, or a type implementing encoding.TextMarshaler).
type Snapshot[S, P, M comparable] struct {
	// ActiveTab is the selected tab. Required.
	ActiveTab S `json:"active_tab"`

	// Paths maps each tab to its push stack. Required; one entry per
	// enumerated tab, possibly empty.
	Paths map[S][]P `json:"paths"`

	// PresentedSheet and PresentedCover are the optional modal
	// presentations; absence decodes to nil.
	PresentedSheet *M `json:"presented_sheet,omitempty"`
	PresentedCover *M `json:"presented_cover,omitempty"`

	// Version is the snapshot format version.
	Version int `json:"version"`
}

// UnmarshalJSON decodes a snapshot, failing hard when a required field is
// missing or malformed. Absent presentation fields decode to nil rather
// than an error.
func (s *Snapshot[S, P, M]) UnmarshalJSON(data []byte) error {
	var raw struct {
		ActiveTab      json.RawMessage `json:"active_tab"`
		Paths          json.RawMessage `json:"paths"`
		PresentedSheet json.RawMessage `json:"presented_sheet"`
		PresentedCover json.RawMessage `json:"presented_cover"`
		Version        int             `json:"version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ActiveTab == nil {
		return &SnapshotFieldError{Field: "active_tab"}
	}
	if raw.Paths == nil {
		return &SnapshotFieldError{Field: "paths"}
	}

	var decoded Snapshot[S, P, M]
	if err := json.Unmarshal(raw.ActiveTab, &decoded.ActiveTab); err != nil {
		return &SnapshotFieldError{Field: "active_tab", Err: err}
	}
	if err := json.Unmarshal(raw.Paths, &decoded.Paths); err != nil {
		return &SnapshotFieldError{Field: "paths", Err: err}
	}
	if raw.PresentedSheet != nil {
		if err := json.Unmarshal(raw.PresentedSheet, &decoded.PresentedSheet); err != nil {
			return &SnapshotFieldError{Field: "presented_sheet", Err: err}
		}
	}
	if raw.PresentedCover != nil {
		if err := json.Unmarshal(raw.PresentedCover, &decoded.PresentedCover); err != nil {
			return &SnapshotFieldError{Field: "presented_cover", Err: err}
		}
	}
	decoded.Version = raw.Version

	*s = decoded
	return nil
}

// Snapshot captures the router's current state.
func (r *Router[S, P, M]) Snapshot() Snapshot[S, P, M] {
	paths := r.paths.Get()
	out := make(map[S][]P, len(paths))
	for tab, stack := range paths {
		if len(stack) == 0 {
			out[tab] = nil
			continue
		}
		cp := make([]P, len(stack))
		copy(cp, stack)
		out[tab] = cp
	}

	return Snapshot[S, P, M]{
		ActiveTab:      r.active.Get(),
		Paths:          out,
		PresentedSheet: clonePtr(r.sheet.Get()),
		PresentedCover: clonePtr(r.cover.Get()),
		Version:        SnapshotVersion,
	}
}

// Restore replaces the router's state with the snapshot's. Every tab the
// configuration enumerates keeps a stack entry even when the snapshot
// omits it. If the snapshot carries both presentation fields the cover
// wins, preserving mutual exclusion.
func (r *Router[S, P, M]) Restore(snap Snapshot[S, P, M]) *Router[S, P, M] {
	paths := make(map[S][]P, len(r.cfg.Tabs))
	for _, tab := range r.cfg.Tabs {
		paths[tab] = nil
	}
	for tab, stack := range snap.Paths {
		if len(stack) == 0 {
			paths[tab] = nil
			continue
		}
		cp := make([]P, len(stack))
		copy(cp, stack)
		paths[tab] = cp
	}

	sheet := clonePtr(snap.PresentedSheet)
	cover := clonePtr(snap.PresentedCover)
	if cover != nil {
		sheet = nil
	}

	reactive.Batch(func() {
		r.active.Set(snap.ActiveTab)
		r.paths.Set(paths)
		r.sheet.Set(sheet)
		r.cover.Set(cover)
	})
	r.emit(OpRestore)
	return r
}

// EncodeState implements AnyRouter by marshaling the current snapshot.
func (r *Router[S, P, M]) EncodeState() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}

// RestoreState implements AnyRouter by decoding data and restoring it.
func (r *Router[S, P, M]) RestoreState(data []byte) error {
	var snap Snapshot[S, P, M]
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	r.Restore(snap)
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
