package nav

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned by the typed registry accessors when the
// requested configuration was not part of the flattened context tree.
var ErrNotRegistered = errors.New("nav: routing configuration not registered")

// ErrKindMismatch is returned when a registered router exists under the
// requested key but was built for different destination kinds. This
// indicates two configurations sharing one name.
var ErrKindMismatch = errors.New("nav: registered router has different destination kinds")

// ErrDuplicateKey is returned by NewMetaRouter when WithStrictKeys is set
// and two tree nodes share a routing key.
var ErrDuplicateKey = errors.New("nav: duplicate routing key in tree")

// SnapshotFieldError reports a required snapshot field that was missing
// or malformed during decoding.
type SnapshotFieldError struct {
	Field string
	Err   error
}

func (e *SnapshotFieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nav: snapshot field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("nav: snapshot field %q missing", e.Field)
}

func (e *SnapshotFieldError) Unwrap() error { return e.Err }
