package nav

// Op names a mutating router operation.
type Op string

const (
	OpSelect       Op = "select"
	OpSetPath      Op = "set_path"
	OpPush         Op = "push"
	OpPop          Op = "pop"
	OpPopToRoot    Op = "pop_to_root"
	OpReplacePath  Op = "replace_path"
	OpPresentSheet Op = "present_sheet"
	OpPresentCover Op = "present_cover"
	OpDismiss      Op = "dismiss"
	OpRestore      Op = "restore"
)

// Command describes one completed navigation command. Observers receive
// it after the router's state has already changed.
type Command struct {
	// Context identifies the router the command ran on.
	Context Key `json:"context"`

	// Op is the operation that ran.
	Op Op `json:"op"`

	// Tab is the active tab after the command, rendered as a string.
	Tab string `json:"tab"`

	// Depth is the active stack depth after the command.
	Depth int `json:"depth"`

	// Presenting reports whether a sheet or cover is up after the command.
	Presenting bool `json:"presenting"`
}

// CommandObserver receives a Command after every mutating router
// operation. Implementations must not issue navigation commands from
// inside the callback.
type CommandObserver interface {
	NavigationChanged(Command)
}

// CommandObserverFunc adapts a function to the CommandObserver interface.
type CommandObserverFunc func(Command)

func (f CommandObserverFunc) NavigationChanged(cmd Command) { f(cmd) }
