package places

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/placenotes/internal/mention"
)

func TestDefault(t *testing.T) {
	list := Default()
	if len(list) != 20 {
		t.Fatalf("len(Default()) = %d, want 20", len(list))
	}
	if err := Validate(list); err != nil {
		t.Errorf("built-in list invalid: %v", err)
	}
	list[0].Name = "mutated"
	if Default()[0].Name != "Canon" {
		t.Error("Default should return a copy")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	list, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != len(builtin) {
		t.Errorf("Load(\"\") returned %d places", len(list))
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.yaml")
	content := []byte(`places:
  - id: "a"
    name: Corner Bistro
    address: 1 Main St
  - id: "b"
    name: Night Owl
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Corner Bistro" || list[1].Address != "" {
		t.Errorf("Load() = %+v", list)
	}
	if p, ok := ByID(list, "b"); !ok || p.Name != "Night Owl" {
		t.Errorf("ByID(b) = %+v, %v", p, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"reserved bracket", "places:\n  - id: \"1\"\n    name: \"a]b\"\n", mention.ErrReservedDelimiter},
		{"reserved paren", "places:\n  - id: \"1)\"\n    name: ab\n", mention.ErrReservedDelimiter},
		{"missing id", "places:\n  - name: ab\n", mention.ErrEmptyField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseDuplicateID(t *testing.T) {
	_, err := Parse([]byte("places:\n  - id: \"1\"\n    name: a\n  - id: \"1\"\n    name: b\n"))
	if err == nil {
		t.Error("expected duplicate id error")
	}
}
