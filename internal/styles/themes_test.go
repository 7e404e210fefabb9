package styles

import "testing"

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		// Valid 6-char hex colors
		{"valid uppercase", "#FF5500", true},
		{"valid lowercase", "#aabbcc", true},
		{"valid mixed case", "#AbCdEf", true},
		{"valid all zeros", "#000000", true},
		{"valid all Fs", "#FFFFFF", true},

		// Valid 8-char hex colors with alpha
		{"valid with alpha 80", "#00000080", true},
		{"valid with alpha FF", "#FF5500FF", true},
		{"valid with alpha 00", "#aabbcc00", true},

		// Invalid formats - wrong length
		{"invalid 3-char", "#FFF", false},
		{"invalid 4-char", "#FFFF", false},
		{"invalid 5-char", "#FF550", false},
		{"invalid 7-char", "#FF55001", false},
		{"invalid 9-char", "#FF5500801", false},

		// Invalid formats - no hash
		{"no hash 6-char", "FF5500", false},
		{"no hash 8-char", "FF550080", false},

		// Invalid formats - invalid characters
		{"invalid char G", "#GGGGGG", false},
		{"invalid char Z", "#ZZZZZZ", false},
		{"invalid char space", "#FF 550", false},
		{"invalid char dash", "#FF-550", false},

		// Edge cases
		{"empty string", "", false},
		{"just hash", "#", false},
		{"very long", "#FF5500FF5500FF5500", false},
		{"hash only no digits", "#XXXXXX", false},

		// Boundary cases
		{"exactly 6 hex digits", "#123456", true},
		{"exactly 8 hex digits", "#12345678", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidHexColor(tt.input)
			if got != tt.valid {
				t.Errorf("IsValidHexColor(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestThemeTextContrast(t *testing.T) {
	for _, theme := range []Theme{DarkTheme, LightTheme} {
		c := theme.Colors
		var bgs []RGB
		for _, hex := range []string{c.BgPrimary, c.BgSecondary} {
			rgb, ok := HexToRGB(hex)
			if !ok {
				t.Fatalf("%s: bad background %q", theme.Name, hex)
			}
			bgs = append(bgs, rgb)
		}
		for name, hex := range map[string]string{"textPrimary": c.TextPrimary, "textSecondary": c.TextSecondary} {
			fg, ok := HexToRGB(hex)
			if !ok {
				t.Fatalf("%s: bad %s %q", theme.Name, name, hex)
			}
			if r := minContrastRatio(fg, bgs); r < 4.5 {
				t.Errorf("%s %s contrast %.2f, want >= 4.5", theme.Name, name, r)
			}
		}
	}
}

func TestApplyTheme(t *testing.T) {
	defer ApplyTheme(DarkThemeName)

	ApplyTheme(ForMode(false))
	if got := GetCurrentTheme().Name; got != LightThemeName {
		t.Errorf("current theme = %q, want light", got)
	}
	if TextPrimary != "#000000" {
		t.Errorf("TextPrimary = %q, want light palette", TextPrimary)
	}
	if GetMarkdownTheme() != "light" {
		t.Errorf("markdown theme = %q, want light", GetMarkdownTheme())
	}

	ApplyTheme("unknown")
	if got := GetCurrentTheme().Name; got != DarkThemeName {
		t.Errorf("unknown theme should fall back to dark, got %q", got)
	}
}

func TestListThemes(t *testing.T) {
	got := ListThemes()
	if len(got) != 2 || got[0] != DarkThemeName || got[1] != LightThemeName {
		t.Errorf("ListThemes() = %v", got)
	}
}

func TestHexToRGB(t *testing.T) {
	got, ok := HexToRGB("#FF9F0A")
	if !ok || got != (RGB{255, 159, 10}) {
		t.Errorf("HexToRGB = %v, %v", got, ok)
	}
	if _, ok := HexToRGB("FF9F0A"); ok {
		t.Error("missing hash should fail")
	}
}
