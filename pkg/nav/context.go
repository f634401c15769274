package nav

// AnyRouter is the type-erased view of a Router held by context nodes,
// the registry, and the persistence and inspection layers. The typed
// accessors (RouterFor, RoutingFor) recover the concrete type.
type AnyRouter interface {
	// Key returns the routing key of the router's configuration.
	Key() Key

	// EncodeState marshals the router's snapshot to JSON.
	EncodeState() ([]byte, error)

	// RestoreState decodes a JSON snapshot and restores it.
	// Malformed or incomplete data is an error; state is untouched then.
	RestoreState(data []byte) error

	// Observe registers a command observer on the router.
	ObserveAny(obs CommandObserver)
}

// ObserveAny implements the type-erased observer registration.
func (r *Router[S, P, M]) ObserveAny(obs CommandObserver) {
	r.Observe(obs)
}

// Context is one immutable node of the navigation hierarchy. It owns a
// freshly constructed router for its configuration and an ordered list
// of child contexts. Children hold no reference back to their parent.
type Context struct {
	key      Key
	router   AnyRouter
	children []*Context
}

// NewContext builds a context node for cfg with the given children.
// The node's router is created empty. The node is frozen on return:
// its key, router, and children never change afterwards.
func NewContext[S, P, M comparable](cfg Config[S, P, M], children ...*Context) *Context {
	kids := make([]*Context, len(children))
	copy(kids, children)
	return &Context{
		key:      KeyOf(cfg),
		router:   NewRouter(cfg),
		children: kids,
	}
}

// Key returns the node's routing key.
func (c *Context) Key() Key { return c.key }

// Router returns the node's router.
func (c *Context) Router() AnyRouter { return c.router }

// Children returns a copy of the node's child list.
func (c *Context) Children() []*Context {
	out := make([]*Context, len(c.children))
	copy(out, c.children)
	return out
}

// Tree wraps the root of a context hierarchy.
type Tree struct {
	root *Context
}

// NewTree wraps root into a tree. Root must not be nil.
func NewTree(root *Context) *Tree {
	if root == nil {
		panic("nav: tree root is nil")
	}
	return &Tree{root: root}
}

// Root returns the tree's root context.
func (t *Tree) Root() *Context { return t.root }

// Flatten walks the tree in pre-order and returns the key-to-router
// mapping for every node. When two nodes share a key, the later-visited
// node's router wins; NewMetaRouter's strict mode rejects that instead.
func (t *Tree) Flatten() map[Key]AnyRouter {
	routers := make(map[Key]AnyRouter)
	t.walk(func(c *Context) {
		routers[c.key] = c.router
	})
	return routers
}

// walk visits every node pre-order, parent before children, children in
// declaration order.
func (t *Tree) walk(visit func(*Context)) {
	var rec func(*Context)
	rec = func(c *Context) {
		visit(c)
		for _, child := range c.children {
			rec(child)
		}
	}
	rec(t.root)
}
