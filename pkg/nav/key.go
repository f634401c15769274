package nav

// Key identifies one routing configuration within a context tree.
// Keys derived from the same configuration are always equal, regardless
// of how many times they are constructed. A Key has no behavior beyond
// identity; it is only used for registry lookups.
type Key struct {
	name string
}

// KeyOf derives the routing key for a configuration.
func KeyOf[S, P, M comparable](cfg Config[S, P, M]) Key {
	return Key{name: cfg.Name}
}

// KeyFromString reconstructs a Key from its string form. Intended for
// callers that persist or transmit keys, such as snapshot stores and the
// inspector's per-context endpoints.
func KeyFromString(name string) Key {
	return Key{name: name}
}

func (k Key) String() string { return k.name }

// IsZero reports whether k is the zero Key, which identifies nothing.
func (k Key) IsZero() bool { return k.name == "" }
