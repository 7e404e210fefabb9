package keymap

// Command IDs handled by the app.
const (
	CmdQuit         = "quit"
	CmdNextTab      = "next-tab"
	CmdPrevTab      = "prev-tab"
	CmdToggleHelp   = "toggle-help"
	CmdToggleFooter = "toggle-footer"
	CmdFocusTab1    = "focus-tab-1"
	CmdFocusTab2    = "focus-tab-2"
	CmdFocusTab3    = "focus-tab-3"
	CmdFocusTab4    = "focus-tab-4"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: CmdQuit, Context: "global"},
		{Key: "ctrl+c", Command: CmdQuit, Context: "global"},
		{Key: "tab", Command: CmdNextTab, Context: "global"},
		{Key: "shift+tab", Command: CmdPrevTab, Context: "global"},
		{Key: "1", Command: CmdFocusTab1, Context: "global"},
		{Key: "2", Command: CmdFocusTab2, Context: "global"},
		{Key: "3", Command: CmdFocusTab3, Context: "global"},
		{Key: "4", Command: CmdFocusTab4, Context: "global"},
		{Key: "?", Command: CmdToggleHelp, Context: "global"},
		{Key: "ctrl+h", Command: CmdToggleFooter, Context: "global"},
	}
}

// TabIndex returns the zero-based tab for a focus-tab command.
func TabIndex(command string) (int, bool) {
	switch command {
	case CmdFocusTab1:
		return 0, true
	case CmdFocusTab2:
		return 1, true
	case CmdFocusTab3:
		return 2, true
	case CmdFocusTab4:
		return 3, true
	}
	return 0, false
}
