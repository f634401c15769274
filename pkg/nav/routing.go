package nav

// Routing is a transient, chainable cursor bound to one router and the
// shared registry. Forwarding operations return the same cursor; JumpTo
// returns a new cursor bound to another context, which is how a single
// command chain crosses contexts:
//
//	cur := nav.MustRoutingFor(meta, Main)
//	player, err := nav.JumpTo(cur.Select(TabLibrary), Player)
//	if err != nil {
//	    return err
//	}
//	player.Push(QueueScreen{})
//
// Cursors are built on demand and discarded after the chain; they hold
// no state of their own and are never persisted.
//
// The cursor deliberately exposes no pop operations. Cross-context
// chains navigate forward and present or dismiss; popping a stack is
// reserved for code holding the Router directly.
type Routing[S, P, M comparable] struct {
	router *Router[S, P, M]
	meta   *MetaRouter
}

// Router returns the router the cursor is bound to.
func (c *Routing[S, P, M]) Router() *Router[S, P, M] { return c.router }

// Meta returns the shared registry the cursor was created from.
func (c *Routing[S, P, M]) Meta() *MetaRouter { return c.meta }

// Select forwards to Router.Select and returns the same cursor.
func (c *Routing[S, P, M]) Select(tab S) *Routing[S, P, M] {
	c.router.Select(tab)
	return c
}

// SetPath forwards to Router.SetPath (an append, see there) and returns
// the same cursor.
func (c *Routing[S, P, M]) SetPath(items ...P) *Routing[S, P, M] {
	c.router.SetPath(items...)
	return c
}

// Push forwards to Router.Push and returns the same cursor.
func (c *Routing[S, P, M]) Push(items ...P) *Routing[S, P, M] {
	c.router.Push(items...)
	return c
}

// PresentSheet forwards to Router.PresentSheet and returns the same cursor.
func (c *Routing[S, P, M]) PresentSheet(m M) *Routing[S, P, M] {
	c.router.PresentSheet(m)
	return c
}

// PresentCover forwards to Router.PresentCover and returns the same cursor.
func (c *Routing[S, P, M]) PresentCover(m M) *Routing[S, P, M] {
	c.router.PresentCover(m)
	return c
}

// Dismiss forwards to Router.Dismiss and returns the same cursor.
func (c *Routing[S, P, M]) Dismiss() *Routing[S, P, M] {
	c.router.Dismiss()
	return c
}

// JumpTo returns a new cursor bound to cfg's router, looked up in the
// cursor's shared registry. The originating cursor is left untouched;
// subsequent calls in the chain operate on the returned cursor.
func JumpTo[S2, P2, M2, S, P, M comparable](from *Routing[S, P, M], cfg Config[S2, P2, M2]) (*Routing[S2, P2, M2], error) {
	return RoutingFor(from.meta, cfg)
}

// MustJumpTo is JumpTo, panicking on error.
func MustJumpTo[S2, P2, M2, S, P, M comparable](from *Routing[S, P, M], cfg Config[S2, P2, M2]) *Routing[S2, P2, M2] {
	return MustRoutingFor(from.meta, cfg)
}
