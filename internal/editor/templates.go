package editor

// Template is a starter list offered on an empty new list.
type Template struct {
	Icon    string
	Title   string
	Content string
}

var templates = []Template{
	{Icon: "🍝", Title: "Best Italian restaurants in Seattle"},
	{Icon: "🍷", Title: "My favorite dive bars"},
	{Icon: "🏛️", Title: "Great Museums for kids"},
	{Icon: "☕", Title: "Coffee shops with wifi"},
	{Icon: "✈️", Title: "Weekend getaway destinations"},
	{Icon: "🧺", Title: "Local farmers markets"},
	{Icon: "🥾", Title: "Best hiking trails nearby"},
	{Icon: "🎵", Title: "Live music venues"},
	{Icon: "🚗", Title: "Road trip stops"},
}

// Templates returns the starter lists.
func Templates() []Template {
	return append([]Template(nil), templates...)
}
