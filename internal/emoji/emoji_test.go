package emoji

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Best Seattle Breweries", Beer},
		{"Weekend Coffee Spots", Coffee},
		{"Date Night Restaurants", Date},
		{"Happy Hour Spots", Bar},
		{"Live Music Venues", Music},
		{"Great Museums for kids", Culture},
		{"", DefaultCategory},
		{"Something else", DefaultCategory},
	}
	for _, tt := range tests {
		if got := CategoryFor(tt.title); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default() != "🍽️" {
		t.Errorf("Default() = %q", Default())
	}
	if ForTitle("")[0] != Default() {
		t.Error("empty title should lead with the default emoji")
	}
}

func TestReorder(t *testing.T) {
	list := []string{"a", "b", "c"}
	if diff := cmp.Diff([]string{"c", "a", "b"}, Reorder(list, "c")); diff != "" {
		t.Errorf("Reorder mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(list, Reorder(list, "z")); diff != "" {
		t.Errorf("Reorder with missing emoji mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, list); diff != "" {
		t.Error("Reorder must not modify its input")
	}
}

func TestCategoryCopy(t *testing.T) {
	c := Category(Bar)
	c[0] = "x"
	if Category(Bar)[0] == "x" {
		t.Error("Category should return a copy")
	}
}
