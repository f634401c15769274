// Package navtest provides helpers for testing code built on the
// navigation core: a change-notification recorder, a command log, and a
// small demo context tree shared by the package tests and the CLI's
// inspect command.
package navtest

import (
	"sync"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
	"github.com/wayfarer-ui/wayfarer/pkg/reactive"
)

// Recorder is a reactive.Listener that counts notifications.
//
// Example:
//
//	rec := navtest.NewRecorder()
//	router.Subscribe(rec)
//	router.Select(TabSearch)
//	if rec.DirtyCount() != 1 { ... }
type Recorder struct {
	id uint64

	mu    sync.Mutex
	dirty int
}

var recorderID uint64
var recorderIDMu sync.Mutex

// NewRecorder creates a recorder with a fresh listener identity.
func NewRecorder() *Recorder {
	recorderIDMu.Lock()
	recorderID++
	id := recorderID
	recorderIDMu.Unlock()
	return &Recorder{id: id}
}

// MarkDirty implements reactive.Listener.
func (r *Recorder) MarkDirty() {
	r.mu.Lock()
	r.dirty++
	r.mu.Unlock()
}

// ID implements reactive.Listener.
func (r *Recorder) ID() uint64 { return r.id }

// DirtyCount returns how many notifications the recorder received.
func (r *Recorder) DirtyCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirty
}

// Reset clears the notification count.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.dirty = 0
	r.mu.Unlock()
}

var _ reactive.Listener = (*Recorder)(nil)

// CommandLog is a nav.CommandObserver that records every command.
type CommandLog struct {
	mu       sync.Mutex
	commands []nav.Command
}

// NewCommandLog creates an empty command log.
func NewCommandLog() *CommandLog {
	return &CommandLog{}
}

// NavigationChanged implements nav.CommandObserver.
func (l *CommandLog) NavigationChanged(cmd nav.Command) {
	l.mu.Lock()
	l.commands = append(l.commands, cmd)
	l.mu.Unlock()
}

// Commands returns a copy of the recorded commands in order.
func (l *CommandLog) Commands() []nav.Command {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]nav.Command, len(l.commands))
	copy(out, l.commands)
	return out
}

// Len returns the number of recorded commands.
func (l *CommandLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.commands)
}

var _ nav.CommandObserver = (*CommandLog)(nil)
