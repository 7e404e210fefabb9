package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestEffective(t *testing.T) {
	tests := []struct {
		name string
		v    string
		bi   *debug.BuildInfo
		ok   bool
		want string
	}{
		{"ldflags wins", "v1.2.0", &debug.BuildInfo{}, true, "v1.2.0"},
		{"no build info", "", nil, false, "unknown"},
		{"module version", "", &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}}, true, "v0.3.1"},
		{"devel without vcs", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true, "devel"},
		{
			"vcs revision",
			"",
			&debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			true,
			"devel+0123456789ab+dirty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effective(tt.v, tt.bi, tt.ok); got != tt.want {
				t.Errorf("effective() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetPrefersBuildVersion(t *testing.T) {
	info := Get("v9.9.9")
	if info.Version != "v9.9.9" {
		t.Errorf("Version = %q", info.Version)
	}
	if !strings.HasPrefix(info.String(), "placenotes v9.9.9") {
		t.Errorf("String() = %q", info.String())
	}
}
