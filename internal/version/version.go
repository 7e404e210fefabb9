// Package version reports the build version of placenotes.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Info describes the running build.
type Info struct {
	Version   string
	Revision  string
	Dirty     bool
	GoVersion string
}

// String formats the info for `placenotes version`.
func (i Info) String() string {
	s := "placenotes " + i.Version
	if i.Revision != "" && !strings.HasPrefix(i.Version, "devel") {
		s += fmt.Sprintf(" (%s", shortRevision(i.Revision))
		if i.Dirty {
			s += ", dirty"
		}
		s += ")"
	}
	return s + " " + i.GoVersion
}

// Get returns build info. v is the version set at build time via ldflags
// and wins when non-empty.
func Get(v string) Info {
	info := Info{GoVersion: runtime.Version()}
	bi, ok := debug.ReadBuildInfo()
	if ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Revision = setting.Value
			case "vcs.modified":
				info.Dirty = setting.Value == "true"
			}
		}
	}
	info.Version = effective(v, bi, ok)
	return info
}

// effective returns the version string, with fallback to build info.
func effective(v string, bi *debug.BuildInfo, ok bool) string {
	if v != "" {
		return v
	}
	if !ok {
		return "unknown"
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return "devel"
	}
	ver := "devel+" + shortRevision(revision)
	if dirty {
		ver += "+dirty"
	}
	return ver
}

// shortRevision returns the first 12 chars of a revision.
func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
