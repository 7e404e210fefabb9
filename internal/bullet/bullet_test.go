package bullet

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hyphen at start", "- ", "  • "},
		{"asterisk at start", "* Canon", "  • Canon"},
		{"two space tier", "  - ", "    • "},
		{"four space tier", "    * x", "      • x"},
		{"six spaces untouched", "      - x", "      - x"},
		{"one space untouched", " - x", " - x"},
		{"three spaces untouched", "   - x", "   - x"},
		{"marker without space", "-x", "-x"},
		{"mid line hyphen", "a - b", "a - b"},
		{"already canonical", "  • Canon", "  • Canon"},
		{"multiple lines", "- a\n  - b\ntext", "  • a\n    • b\ntext"},
		{"no markers", "hello\nworld", "hello\nworld"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		want string
	}{
		{
			name: "typing marker at line start",
			old:  "-",
			new:  "- ",
			want: "  • ",
		},
		{
			name: "marker after indented bullet line",
			old:  "  • Canon\n  -",
			new:  "  • Canon\n  - ",
			want: "  • Canon\n    • ",
		},
		{
			name: "enter continues bullet",
			old:  "  • Canon",
			new:  "  • Canon\n",
			want: "  • Canon\n  • ",
		},
		{
			name: "enter continues nested bullet",
			old:  "    • Rob Roy",
			new:  "    • Rob Roy\n",
			want: "    • Rob Roy\n    • ",
		},
		{
			name: "enter between bullets",
			old:  "  • A\n  • B",
			new:  "  • A\n\n  • B",
			want: "  • A\n  • \n  • B",
		},
		{
			name: "enter on empty bullet does not continue",
			old:  "  • A\n  • ",
			new:  "  • A\n  • \n",
			want: "  • A\n  • \n",
		},
		{
			name: "enter mid line does not continue",
			old:  "  • AB",
			new:  "  • A\nB",
			want: "  • A\nB",
		},
		{
			name: "enter after plain text",
			old:  "notes",
			new:  "notes\n",
			want: "notes\n",
		},
		{
			name: "two newlines pasted",
			old:  "  • A",
			new:  "  • A\n\n",
			want: "  • A\n\n",
		},
		{
			name: "deletion leaves text alone",
			old:  "  • A\n  • ",
			new:  "  • A\n",
			want: "  • A\n",
		},
		{
			name: "existing blank after bullet is not filled by unrelated enter",
			old:  "  • A\n\nend",
			new:  "  • A\n\nend\n",
			want: "  • A\n\nend\n",
		},
		{
			name: "bullet with mention continues",
			old:  "  • {@}[Canon](1)",
			new:  "  • {@}[Canon](1)\n",
			want: "  • {@}[Canon](1)\n  • ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.old, tt.new)
			if got != tt.want {
				t.Errorf("Format(%q, %q) = %q, want %q", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	cases := [][2]string{
		{"", "- "},
		{"  • A", "  • A\n"},
		{"  • A\n\n  • B", "  • A\n\n\n  • B"},
		{"x", "* a\n  * b\n    * c\n      * d"},
	}
	for _, c := range cases {
		once := Format(c[0], c[1])
		twice := Format(c[1], once)
		if twice != once {
			t.Errorf("Format not idempotent for %q -> %q: once %q, twice %q", c[0], c[1], once, twice)
		}
		if again := Format(once, once); again != once {
			t.Errorf("Format(%q, %q) = %q, want no-op", once, once, again)
		}
	}
}

func TestIsBulletLine(t *testing.T) {
	if !IsBulletLine("  • Canon") {
		t.Error("expected bullet line")
	}
	if IsBulletLine("  • ") {
		t.Error("empty bullet should not count")
	}
	if IsBulletLine("Canon") {
		t.Error("plain line should not count")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		line  string
		level int
		ok    bool
	}{
		{"  • Canon", 0, true},
		{"    • Canon", 1, true},
		{"      • Canon", 2, true},
		{"• Canon", 0, false},
		{"   • Canon", 0, false},
		{"  - Canon", 0, false},
		{"Canon", 0, false},
	}
	for _, tt := range tests {
		level, ok := Level(tt.line)
		if level != tt.level || ok != tt.ok {
			t.Errorf("Level(%q) = %d, %v; want %d, %v", tt.line, level, ok, tt.level, tt.ok)
		}
	}
}
