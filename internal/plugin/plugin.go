package plugin

import tea "github.com/charmbracelet/bubbletea"

// Plugin is one tab of the app.
type Plugin interface {
	ID() string
	Name() string
	Icon() string
	Init(ctx *Context) error
	Start() tea.Cmd
	Stop()
	Update(msg tea.Msg) (Plugin, tea.Cmd)
	View(width, height int) string
	IsFocused() bool
	SetFocused(bool)
	Commands() []Command
	FocusContext() string
}

// TextInputConsumer is an optional capability for plugins that need
// alphanumeric key input to be forwarded as typed text instead of being
// intercepted by app-level shortcuts.
type TextInputConsumer interface {
	ConsumesTextInput() bool
}

// Flusher is implemented by plugins holding unsaved work. The app runs the
// returned command to completion before quitting.
type Flusher interface {
	Flush() tea.Cmd
}

// Category represents a logical grouping of commands.
type Category string

const (
	CategoryNavigation Category = "Navigation"
	CategoryActions    Category = "Actions"
	CategoryEdit       Category = "Edit"
	CategoryView       Category = "View"
	CategorySystem     Category = "System"
)

// Command represents a keybinding shown in the footer.
type Command struct {
	ID          string   // Unique identifier (e.g., "delete-list")
	Key         string   // Key label shown in the footer
	Name        string   // Short name for footer (e.g., "Delete")
	Description string   // Longer description
	Category    Category // Logical grouping
	Context     string   // Activation context
	Priority    int      // Footer display priority: 1=highest, 0=default (treated as 99)
}

// PluginFocusedMsg is sent to a plugin when it becomes the active tab.
type PluginFocusedMsg struct{}
