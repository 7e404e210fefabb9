package lists

import (
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
)

func TestSetValueAt(t *testing.T) {
	tests := []struct {
		text   string
		offset int
	}{
		{"", 0},
		{"abc", 1},
		{"ab\ncd\nef", 4},
		{"ab\ncd\nef", 0},
		{"ab\ncd\nef", 8},
		{"  • Canon\n  • ", 14},
	}
	for _, tt := range tests {
		ta := textarea.New()
		ta.SetWidth(80)
		setValueAt(&ta, tt.text, tt.offset)
		if got := cursorOffset(ta); got != tt.offset {
			t.Errorf("setValueAt(%q, %d): cursor at %d", tt.text, tt.offset, got)
		}
	}
}

func TestSetValueAtClamps(t *testing.T) {
	ta := textarea.New()
	setValueAt(&ta, "abc", 10)
	if got := cursorOffset(ta); got != 3 {
		t.Errorf("cursor = %d, want 3", got)
	}
}
