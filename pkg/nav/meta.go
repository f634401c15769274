package nav

import (
	"fmt"
	"sort"
)

// MetaRouter is the session-scoped registry of routers, built once by
// flattening a context tree and immutable afterwards. It is the shared
// half of every Routing cursor: cursors ask it for the router of another
// configuration when a command chain crosses contexts.
type MetaRouter struct {
	routers map[Key]AnyRouter
}

// MetaOption configures MetaRouter construction.
type MetaOption func(*metaOptions)

type metaOptions struct {
	strictKeys bool
}

// WithStrictKeys makes duplicate routing keys in the tree a construction
// error instead of silently letting the later node win.
func WithStrictKeys() MetaOption {
	return func(o *metaOptions) {
		o.strictKeys = true
	}
}

// NewMetaRouter flattens tree into a registry. With WithStrictKeys the
// construction fails on duplicate keys, wrapping ErrDuplicateKey.
func NewMetaRouter(tree *Tree, opts ...MetaOption) (*MetaRouter, error) {
	var options metaOptions
	for _, opt := range opts {
		opt(&options)
	}

	if options.strictKeys {
		seen := make(map[Key]bool)
		var dup *Key
		tree.walk(func(c *Context) {
			if seen[c.key] && dup == nil {
				k := c.key
				dup = &k
			}
			seen[c.key] = true
		})
		if dup != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, dup)
		}
	}

	return &MetaRouter{routers: tree.Flatten()}, nil
}

// Lookup returns the type-erased router registered under key.
func (m *MetaRouter) Lookup(key Key) (AnyRouter, bool) {
	r, ok := m.routers[key]
	return r, ok
}

// Keys returns the registered routing keys in sorted order.
func (m *MetaRouter) Keys() []Key {
	keys := make([]Key, 0, len(m.routers))
	for k := range m.routers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].name < keys[j].name })
	return keys
}

// Len returns the number of registered routers.
func (m *MetaRouter) Len() int { return len(m.routers) }

// Observe registers obs on every registered router.
func (m *MetaRouter) Observe(obs CommandObserver) {
	for _, k := range m.Keys() {
		m.routers[k].ObserveAny(obs)
	}
}

// RouterFor returns the router registered for cfg. It fails with
// ErrNotRegistered when cfg's key was not in the flattened tree and with
// ErrKindMismatch when the registered router was built for different
// destination kinds (two configurations sharing a name).
//
// This is a package-level function because Go methods cannot introduce
// type parameters.
func RouterFor[S, P, M comparable](m *MetaRouter, cfg Config[S, P, M]) (*Router[S, P, M], error) {
	key := KeyOf(cfg)
	entry, ok := m.routers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}
	router, ok := entry.(*Router[S, P, M])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKindMismatch, key)
	}
	return router, nil
}

// MustRouterFor is RouterFor, panicking on error. Intended for startup
// wiring where an unregistered configuration is a programming error.
func MustRouterFor[S, P, M comparable](m *MetaRouter, cfg Config[S, P, M]) *Router[S, P, M] {
	router, err := RouterFor(m, cfg)
	if err != nil {
		panic(err)
	}
	return router
}

// RoutingFor returns a fresh cursor bound to cfg's router and this
// registry. The same errors as RouterFor apply.
func RoutingFor[S, P, M comparable](m *MetaRouter, cfg Config[S, P, M]) (*Routing[S, P, M], error) {
	router, err := RouterFor(m, cfg)
	if err != nil {
		return nil, err
	}
	return &Routing[S, P, M]{router: router, meta: m}, nil
}

// MustRoutingFor is RoutingFor, panicking on error.
func MustRoutingFor[S, P, M comparable](m *MetaRouter, cfg Config[S, P, M]) *Routing[S, P, M] {
	cursor, err := RoutingFor(m, cfg)
	if err != nil {
		panic(err)
	}
	return cursor
}
