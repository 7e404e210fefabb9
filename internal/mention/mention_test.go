package mention

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		display string
		id      string
		want    string
		wantErr error
	}{
		{name: "simple", display: "Canon", id: "1", want: "{@}[Canon](1)"},
		{name: "spaces and ampersand", display: "Bathtub Gin & Co", id: "2", want: "{@}[Bathtub Gin & Co](2)"},
		{name: "opening bracket allowed", display: "[Canon", id: "x", want: "{@}[[Canon](x)"},
		{name: "closing bracket in name", display: "Can]on", id: "1", wantErr: ErrReservedDelimiter},
		{name: "closing paren in id", display: "Canon", id: "1)", wantErr: ErrReservedDelimiter},
		{name: "empty name", display: "", id: "1", wantErr: ErrEmptyField},
		{name: "empty id", display: "Canon", id: "", wantErr: ErrEmptyField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.display, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Encode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"Canon", "1"},
		{"The Walrus and the Carpenter", "3"},
		{"Café Ψ (upstairs", "id-with-(paren"},
		{"  padded  ", "  "},
		{"multi\nline", "9"},
	}
	for _, p := range pairs {
		tok, err := Encode(p[0], p[1])
		if err != nil {
			t.Fatalf("Encode(%q, %q): %v", p[0], p[1], err)
		}
		segs := Segments(tok)
		want := []Segment{{Kind: KindMention, Name: p[0], ID: p[1]}}
		if diff := cmp.Diff(want, segs); diff != "" {
			t.Errorf("Segments(%q) mismatch (-want +got):\n%s", tok, diff)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Segment
	}{
		{name: "empty", text: "", want: nil},
		{
			name: "plain only",
			text: "  just text\n",
			want: []Segment{{Kind: KindText, Text: "  just text\n"}},
		},
		{
			name: "bulleted list",
			text: "  • {@}[Canon](1)\n  • {@}[Rob Roy](9)\n\nNice.",
			want: []Segment{
				{Kind: KindText, Text: "  • "},
				{Kind: KindMention, Name: "Canon", ID: "1"},
				{Kind: KindText, Text: "\n  • "},
				{Kind: KindMention, Name: "Rob Roy", ID: "9"},
				{Kind: KindText, Text: "\n\nNice."},
			},
		},
		{
			name: "adjacent tokens",
			text: "{@}[A](1){@}[B](2)",
			want: []Segment{
				{Kind: KindMention, Name: "A", ID: "1"},
				{Kind: KindMention, Name: "B", ID: "2"},
			},
		},
		{
			name: "malformed token stays literal",
			text: "{@}[Broken] and {@}[](1)",
			want: []Segment{{Kind: KindText, Text: "{@}[Broken] and {@}[](1)"}},
		},
		{
			name: "first closing pair wins",
			text: "{@}[A](1)x)",
			want: []Segment{
				{Kind: KindMention, Name: "A", ID: "1"},
				{Kind: KindText, Text: "x)"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segments() mismatch (-want +got):\n%s", diff)
			}
			if r := Reconstruct(got); r != tt.text {
				t.Errorf("Reconstruct() = %q, want %q", r, tt.text)
			}
		})
	}
}

func TestDecodeIsRestartable(t *testing.T) {
	seq := Decode("a {@}[B](2) c")
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Errorf("segment counts = %d, %d; want 3, 3", first, second)
	}
}

func TestDecodeEarlyStop(t *testing.T) {
	n := 0
	for seg := range Decode("x{@}[A](1)y{@}[B](2)z") {
		n++
		if seg.IsMention() {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d segments before break, want 2", n)
	}
}

func TestCountAndMentions(t *testing.T) {
	text := "  • {@}[Fremont Brewing](4)\n  • {@}[Holy Mountain Brewing](20)\n\nGreat IPAs!"
	if got := Count(text); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	ms := Mentions(text)
	if len(ms) != 2 || ms[1].ID != "20" {
		t.Errorf("Mentions() = %+v", ms)
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText("Go to {@}[Canon](1) then {@}[Unicorn](6).")
	want := "Go to Canon then Unicorn."
	if got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	got := Render("- {@}[Canon](1)", func(s Segment) string { return "**" + s.Name + "**" })
	if got != "- **Canon**" {
		t.Errorf("Render() = %q", got)
	}
}
