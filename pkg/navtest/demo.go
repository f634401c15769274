package navtest

import "github.com/wayfarer-ui/wayfarer/pkg/nav"

// DemoTab is the root context's tab set for the demo tree.
type DemoTab string

const (
	TabHome    DemoTab = "home"
	TabLibrary DemoTab = "library"
	TabProfile DemoTab = "profile"
)

// DemoScreen is a push destination in the demo tree.
type DemoScreen struct {
	Name string `json:"name"`
	ID   int    `json:"id,omitempty"`
}

// DemoModal is a modal destination in the demo tree.
type DemoModal struct {
	Name string `json:"name"`
}

// DemoMain is the root configuration: three tabs, screens, modals.
var DemoMain = nav.Config[DemoTab, DemoScreen, DemoModal]{
	Name: "main",
	Tabs: []DemoTab{TabHome, TabLibrary, TabProfile},
}

// DemoPlayer is a child context with a single push stack and modals.
var DemoPlayer = nav.StackModalConfig[DemoScreen, DemoModal]("player")

// DemoOnboarding is a child context with a push stack only.
var DemoOnboarding = nav.StackConfig[DemoScreen]("onboarding")

// NewDemoTree builds the demo hierarchy: main at the root with player
// and onboarding as children.
func NewDemoTree() *nav.Tree {
	return nav.NewTree(
		nav.NewContext(DemoMain,
			nav.NewContext(DemoPlayer),
			nav.NewContext(DemoOnboarding),
		),
	)
}
