package lists

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/marcus/placenotes/internal/bullet"
	"github.com/marcus/placenotes/internal/mention"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/styles"
)

// previewRenderer renders a list as markdown for the preview pane. Output is
// cached per note revision and width.
type previewRenderer struct {
	renderer *glamour.TermRenderer
	width    int
	theme    string
	cache    map[string]string
}

func newPreviewRenderer() *previewRenderer {
	return &previewRenderer{cache: make(map[string]string)}
}

// reset drops the renderer and cache, e.g. after a theme change.
func (r *previewRenderer) reset() {
	r.renderer = nil
	r.cache = make(map[string]string)
}

func (r *previewRenderer) ensure(width int) error {
	theme := styles.GetMarkdownTheme()
	if r.renderer != nil && r.width == width && r.theme == theme {
		return nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	r.renderer = tr
	r.width = width
	r.theme = theme
	r.cache = make(map[string]string)
	return nil
}

// Render returns n rendered to width cells. When glamour fails the plain
// markdown is returned.
func (r *previewRenderer) Render(n notes.Note, width int) string {
	if width < 20 {
		width = 20
	}
	md := toMarkdown(n)
	if err := r.ensure(width); err != nil {
		return md
	}
	key := fmt.Sprintf("%s:%d", n.ID, n.UpdatedAt.UnixNano())
	if out, ok := r.cache[key]; ok {
		return out
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")
	r.cache[key] = out
	return out
}

// toMarkdown converts a list to markdown: the title becomes a heading,
// bullets become nested list items and mentions are shown in bold.
func toMarkdown(n notes.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", n.Emoji, n.Title)
	for _, line := range strings.Split(n.Content, "\n") {
		text := mention.Render(line, func(s mention.Segment) string {
			if s.IsMention() {
				return "**" + s.Name + "**"
			}
			return s.Text
		})
		if level, ok := bullet.Level(line); ok {
			body := strings.TrimPrefix(strings.TrimLeft(text, " "), bullet.Glyph+" ")
			b.WriteString(strings.Repeat("  ", level))
			b.WriteString("- ")
			b.WriteString(body)
			b.WriteString("\n")
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return b.String()
}
