package notes

import "time"

const day = 24 * time.Hour

// SampleNotes returns the starter lists, dated relative to now.
func SampleNotes(now time.Time) []Note {
	at := func(daysAgo int) time.Time { return now.Add(-time.Duration(daysAgo) * day) }
	return []Note{
		{
			ID:        "sample1",
			Title:     "Best Seattle Breweries",
			Content:   "  • {@}[Fremont Brewing](4)\n  • {@}[Holy Mountain Brewing](20)\n\nGreat atmosphere and amazing IPAs!",
			Emoji:     "🍺",
			CreatedAt: at(3),
			UpdatedAt: at(3),
		},
		{
			ID:        "sample2",
			Title:     "Weekend Coffee Spots",
			Content:   "  • {@}[Capitol Cider](17)\n  • {@}[Unicorn](6)\n\nPerfect for weekend mornings and laptop work.",
			Emoji:     "☕",
			CreatedAt: at(5),
			UpdatedAt: at(5),
		},
		{
			ID:        "sample3",
			Title:     "Date Night Restaurants",
			Content:   "  • {@}[Canon](1)\n  • {@}[The Walrus and the Carpenter](3)\n  • {@}[Tavern Law](13)\n\nMake reservations well in advance!",
			Emoji:     "🥂",
			CreatedAt: at(35),
			UpdatedAt: at(35),
		},
		{
			ID:        "sample4",
			Title:     "Happy Hour Spots",
			Content:   "  • {@}[Bathtub Gin & Co](2)\n  • {@}[Navy Strength](8)\n  • {@}[Rob Roy](9)\n\nBest deals are between 4-6 PM weekdays.",
			Emoji:     "🍸",
			CreatedAt: at(40),
			UpdatedAt: at(40),
		},
		{
			ID:        "sample5",
			Title:     "Live Music Venues",
			Content:   "  • {@}[The Crocodile](11)\n  • {@}[Witness Bar](14)\n\nCheck their calendars for upcoming shows!",
			Emoji:     "🎵",
			IsPrivate: true,
			CreatedAt: at(42),
			UpdatedAt: at(42),
		},
	}
}
