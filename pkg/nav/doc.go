// Package nav implements the navigation state model: per-context routers
// holding tab selection, per-tab push stacks, and modal presentation, plus
// the meta-routing registry that lets one navigation context drive another.
//
// # Core Types
//
// Config declares the shape of one navigation context: which tab values
// exist, what can be pushed, and what can be presented. Router owns the
// navigation state for one Config. Context and Tree declare the context
// hierarchy, MetaRouter flattens it into a registry, and Routing is a
// chainable cursor for cross-context command chains.
//
//	var Main = nav.Config[MainTab, MainScreen, MainModal]{
//	    Name: "main",
//	    Tabs: []MainTab{TabHome, TabLibrary},
//	}
//
//	tree := nav.NewTree(nav.NewContext(Main, nav.NewContext(Player)))
//	meta, err := nav.NewMetaRouter(tree)
//
//	cur := nav.MustRoutingFor(meta, Main)
//	player, err := nav.JumpTo(cur.Select(TabLibrary), Player)
//	if err == nil {
//	    player.Push(QueueScreen{})
//	}
//
// # Concurrency
//
// Routers are confined state machines: all reads and mutations are
// expected to happen on a single goroutine (conventionally the UI loop).
// The package takes no locks of its own beyond what subscription
// management in pkg/reactive requires; issuing navigation commands from
// multiple goroutines concurrently is a caller contract violation.
package nav
