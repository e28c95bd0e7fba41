// Package version carries the build identity stamped into the binary.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/virtui/virtui/internal/version.Version=v1.2.3 \
//	                   -X github.com/virtui/virtui/internal/version.Commit=abc123"
//
// Unset values fall back to the module's VCS build info, then to "dev"
// markers, so a hand-built binary still identifies itself.
var (
	// Version is the semantic version of the release
	Version = ""
	// Commit is the git commit the binary was built from
	Commit = ""
)

func init() {
	revision, modified, buildTime := vcsInfo()

	if Commit == "" && revision != "" {
		Commit = shortHash(revision)
		if modified {
			Commit += "-dirty"
		}
	}
	if Version == "" && !buildTime.IsZero() {
		Version = "dev-" + buildTime.Format("20060102")
	}

	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102-150405")
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// vcsInfo pulls the VCS stamps out of the module build info. Tags are
// not recorded there, so Version can only ever resolve to a dev marker
// without ldflags.
func vcsInfo() (revision string, modified bool, buildTime time.Time) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false, time.Time{}
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
				buildTime = t
			}
		}
	}
	return revision, modified, buildTime
}

func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Full returns the version with its commit, e.g. "v1.2.3 (commit: abc1234)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
