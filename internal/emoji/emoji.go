// Package emoji picks emoji candidates for a list from its title.
package emoji

import "strings"

// Category names.
const (
	Restaurant = "restaurant"
	Bar        = "bar"
	Coffee     = "coffee"
	Beer       = "beer"
	Music      = "music"
	Date       = "date"
	Outdoors   = "outdoors"
	Travel     = "travel"
	Shopping   = "shopping"
	Culture    = "culture"
)

// DefaultCategory is used when no keyword matches.
const DefaultCategory = Restaurant

var categories = map[string][]string{
	Restaurant: {"🍽️", "🍕", "🍝", "🍣", "🌮", "🍔", "🥗", "🍜"},
	Bar:        {"🍸", "🍹", "🥃", "🍷", "🍾", "🍺"},
	Coffee:     {"☕", "🥐", "🧁", "🍵", "🥯"},
	Beer:       {"🍺", "🍻", "🌭", "🥨"},
	Music:      {"🎵", "🎸", "🎤", "🎷", "🎧", "🥁"},
	Date:       {"🥂", "🌹", "🕯️", "💕", "🍷"},
	Outdoors:   {"🥾", "🏔️", "🌲", "🏕️", "🌊", "☀️"},
	Travel:     {"✈️", "🚗", "🗺️", "🏨", "🧳"},
	Shopping:   {"🛍️", "🧺", "🥕", "🍎", "🌻"},
	Culture:    {"🏛️", "🎨", "🖼️", "📚", "🎭"},
}

// keywords are checked in order; the first category with a hit wins.
var keywords = []struct {
	category string
	words    []string
}{
	{Beer, []string{"brewery", "breweries", "brewing", "beer", "ipa", "pub"}},
	{Coffee, []string{"coffee", "cafe", "café", "espresso", "bakery", "brunch", "breakfast"}},
	{Bar, []string{"bar", "cocktail", "happy hour", "drinks", "wine", "whiskey", "speakeasy"}},
	{Music, []string{"music", "concert", "venue", "jazz", "live", "karaoke"}},
	{Date, []string{"date", "romantic", "anniversary"}},
	{Outdoors, []string{"hike", "hiking", "trail", "park", "beach", "camping"}},
	{Travel, []string{"trip", "travel", "getaway", "hotel", "road"}},
	{Shopping, []string{"shop", "market", "store", "farmers"}},
	{Culture, []string{"museum", "gallery", "art", "theater", "theatre", "library"}},
	{Restaurant, []string{"restaurant", "food", "dinner", "lunch", "eat", "italian", "sushi", "pizza", "taco"}},
}

// Category returns the candidates for a named category.
func Category(name string) []string {
	return append([]string(nil), categories[name]...)
}

// Default returns the default emoji.
func Default() string {
	return categories[DefaultCategory][0]
}

// CategoryFor returns the category name that best fits title.
func CategoryFor(title string) string {
	t := strings.ToLower(title)
	for _, k := range keywords {
		for _, w := range k.words {
			if strings.Contains(t, w) {
				return k.category
			}
		}
	}
	return DefaultCategory
}

// ForTitle returns the ordered emoji candidates for a list title.
func ForTitle(title string) []string {
	return Category(CategoryFor(title))
}

// Reorder moves selected to the front of list when present and keeps the
// rest in order.
func Reorder(list []string, selected string) []string {
	out := make([]string, 0, len(list))
	found := false
	for _, e := range list {
		if e == selected {
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		return append([]string(nil), list...)
	}
	return append([]string{selected}, out...)
}

// Contains reports whether e is in list.
func Contains(list []string, e string) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
