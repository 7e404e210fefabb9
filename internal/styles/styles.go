package styles

import "github.com/charmbracelet/lipgloss"

// Color variables, set by ApplyThemeColors.
var (
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	BgPrimary   lipgloss.Color
	BgSecondary lipgloss.Color
	BgTertiary  lipgloss.Color

	BorderNormal lipgloss.Color
	BorderActive lipgloss.Color

	ToastTextColor lipgloss.Color

	CurrentMarkdownTheme = "dark"
)

// Text styles
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	KeyHint  lipgloss.Style
	Danger   lipgloss.Style
)

// List styles
var (
	ListItemNormal   lipgloss.Style
	ListItemSelected lipgloss.Style
	ListCursor       lipgloss.Style
	ListPreview      lipgloss.Style
	ListDate         lipgloss.Style
)

// Pills
var (
	MentionPill   lipgloss.Style
	PrivatePill   lipgloss.Style
	PublicPill    lipgloss.Style
	TemplatePill  lipgloss.Style
	EmojiSelected lipgloss.Style
	EmojiNormal   lipgloss.Style
)

// Tabs, bars and panels
var (
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Panel       lipgloss.Style
	PanelActive lipgloss.Style
	Popover     lipgloss.Style
	PopoverItem lipgloss.Style
	PopoverSel  lipgloss.Style
)

// Toasts, modals and buttons
var (
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	ModalBox    lipgloss.Style
	ModalTitle  lipgloss.Style
	ModalDanger lipgloss.Style

	Button              lipgloss.Style
	ButtonFocused       lipgloss.Style
	ButtonDanger        lipgloss.Style
	ButtonDangerFocused lipgloss.Style
)

// rebuildStyles recreates all lipgloss styles with current colors
func rebuildStyles() {
	Title = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	Subtitle = lipgloss.NewStyle().Foreground(TextSecondary)
	Body = lipgloss.NewStyle().Foreground(TextPrimary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	KeyHint = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 1)
	Danger = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ListItemNormal = lipgloss.NewStyle().Foreground(TextPrimary)
	ListItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary)
	ListCursor = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	ListPreview = lipgloss.NewStyle().Foreground(TextSecondary)
	ListDate = lipgloss.NewStyle().Foreground(TextMuted)

	MentionPill = lipgloss.NewStyle().
		Foreground(Secondary).
		Background(BgTertiary).
		Bold(true)
	PrivatePill = lipgloss.NewStyle().
		Foreground(ToastTextColor).
		Background(Warning).
		Padding(0, 1)
	PublicPill = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 1)
	TemplatePill = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)
	EmojiSelected = lipgloss.NewStyle().
		Background(BgTertiary).
		Padding(0, 1)
	EmojiNormal = lipgloss.NewStyle().Padding(0, 1)

	TabActive = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Padding(0, 1)
	TabInactive = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)
	Header = lipgloss.NewStyle().Background(BgSecondary)
	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgSecondary)
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)
	PanelActive = Panel.BorderForeground(BorderActive)
	Popover = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Background(BgSecondary)
	PopoverItem = lipgloss.NewStyle().Foreground(TextPrimary)
	PopoverSel = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary).
		Bold(true)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastTextColor).
		Bold(true).
		Padding(0, 1)
	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastTextColor).
		Bold(true).
		Padding(0, 1)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgSecondary).
		Padding(1, 2)
	ModalDanger = ModalBox.BorderForeground(Error)
	ModalTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true).
		MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)
	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Secondary).
		Padding(0, 2).
		Bold(true)
	ButtonDanger = lipgloss.NewStyle().
		Foreground(Error).
		Background(BgTertiary).
		Padding(0, 2)
	ButtonDangerFocused = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Error).
		Padding(0, 2).
		Bold(true)
}

// RenderTab renders a tab label.
func RenderTab(label string, isActive bool) string {
	if isActive {
		return TabActive.Render(label)
	}
	return TabInactive.Render(label)
}
