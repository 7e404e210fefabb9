package lists

import "github.com/marcus/placenotes/internal/editor"

// EditorSavedMsg is returned once the editor's save-on-exit finished.
type EditorSavedMsg struct {
	Result editor.Result
	Title  string
	Err    error
}

// EditorDeletedMsg is returned after the list open in the editor was deleted.
type EditorDeletedMsg struct {
	Title string
	Err   error
}

// editorDeleteConfirmedMsg starts deleting the list open in the editor once
// the user confirmed.
type editorDeleteConfirmedMsg struct{}

// NoteDeletedMsg is returned after a list was deleted from the list view.
type NoteDeletedMsg struct {
	ID    string
	Title string
	Err   error
}
