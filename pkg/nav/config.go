package nav

import "fmt"

// None is the absent destination kind. A Config that fixes a type
// parameter to None declares that the context has no tabs, no push stack,
// or no modal presentation for that slot.
type None struct{}

// MarshalText lets None serve as a snapshot map key.
func (None) MarshalText() ([]byte, error) { return []byte("none"), nil }

// UnmarshalText accepts any text; None carries no information.
func (*None) UnmarshalText([]byte) error { return nil }

// Config declares the shape of one navigation context.
//
// The three type parameters fix the destination kinds:
//   - S (selectable): the enumerable tab set
//   - P (pushable): navigation-stack entries
//   - M (presentable): modal destinations
//
// Configs are plain values, typically declared once at package level and
// passed to NewContext and the typed registry accessors. Name must be
// unique across the application's context tree; it is the identity the
// routing Key is derived from.
type Config[S, P, M comparable] struct {
	// Name uniquely identifies this configuration.
	Name string

	// Tabs enumerates the selectable set. Every tab owns one push stack.
	// The first entry is the default selection unless DefaultTab is set.
	// An empty Tabs slice is a fatal configuration error.
	Tabs []S

	// DefaultTab overrides the default selection. Must be a member of
	// Tabs if set.
	DefaultTab *S
}

// defaultTab resolves the initial selection for a fresh router.
// An empty tab set is a misdeclared configuration, not a runtime
// condition, so it panics.
func (c Config[S, P, M]) defaultTab() S {
	if len(c.Tabs) == 0 {
		panic(fmt.Sprintf("nav: configuration %q declares no tabs", c.Name))
	}
	if c.DefaultTab != nil {
		return *c.DefaultTab
	}
	return c.Tabs[0]
}

// validate panics on configurations that cannot produce a working router.
func (c Config[S, P, M]) validate() {
	if c.Name == "" {
		panic("nav: configuration has no name")
	}
	if len(c.Tabs) == 0 {
		panic(fmt.Sprintf("nav: configuration %q declares no tabs", c.Name))
	}
}

// noTabs is the single-member tab set for contexts without tabs.
// The one None value carries the context's only push stack.
func noTabs() []None {
	return []None{{}}
}

// TabsConfig declares a context with tabs only.
func TabsConfig[S comparable](name string, tabs ...S) Config[S, None, None] {
	return Config[S, None, None]{Name: name, Tabs: tabs}
}

// StackConfig declares a context with a single push stack and nothing else.
func StackConfig[P comparable](name string) Config[None, P, None] {
	return Config[None, P, None]{Name: name, Tabs: noTabs()}
}

// ModalConfig declares a context with modal presentation only.
func ModalConfig[M comparable](name string) Config[None, None, M] {
	return Config[None, None, M]{Name: name, Tabs: noTabs()}
}

// TabStackConfig declares a context with tabs and per-tab push stacks.
func TabStackConfig[S, P comparable](name string, tabs ...S) Config[S, P, None] {
	return Config[S, P, None]{Name: name, Tabs: tabs}
}

// TabModalConfig declares a context with tabs and modal presentation.
func TabModalConfig[S, M comparable](name string, tabs ...S) Config[S, None, M] {
	return Config[S, None, M]{Name: name, Tabs: tabs}
}

// StackModalConfig declares a context with a single push stack and modal
// presentation.
func StackModalConfig[P, M comparable](name string) Config[None, P, M] {
	return Config[None, P, M]{Name: name, Tabs: noTabs()}
}
