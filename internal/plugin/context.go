package plugin

import (
	"log/slog"

	"github.com/marcus/placenotes/internal/config"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/state"
	"github.com/marcus/placenotes/internal/typeahead"
)

// Context carries the shared services handed to every plugin.
type Context struct {
	Config *config.Config
	Logger *slog.Logger
	Notes  *notes.Store
	Prefs  *state.Prefs
	Places []typeahead.Suggestion
}
