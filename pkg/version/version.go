package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const devVersion = "0.0.0-dev"

// Valores padrão (sobrescritos por ldflags ou por build info)
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

func init() {
	populateFromBuildInfo(debug.ReadBuildInfo)
}

// populateFromBuildInfo preenche os campos vazios a partir do build info do Go.
// Valores vindos de ldflags têm precedência.
func populateFromBuildInfo(read func() (*debug.BuildInfo, bool)) {
	if Version != "" && Version != devVersion {
		return
	}
	bi, ok := read()
	if !ok || bi == nil {
		return
	}

	settings := make(map[string]string, len(bi.Settings))
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}

	if rev := settings["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}
	if ts, err := time.Parse(time.RFC3339, settings["vcs.time"]); BuildTime == "" && err == nil {
		BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
	}

	// Module version is set for `go install ...@vX.Y.Z` builds.
	if v := strings.TrimPrefix(bi.Main.Version, "v"); v != "" && v != "(devel)" {
		Version = v
		if strings.EqualFold(settings["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

// Get returns the current build information.
func Get() Info {
	v := Version
	if v == "" {
		v = devVersion
	}
	return Info{Version: v, Commit: Commit, BuildTime: BuildTime}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	info := Get()
	switch {
	case info.Commit == "" && info.BuildTime == "":
		return fmt.Sprintf("%s (development)", info.Version)
	case info.BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", info.Version, info.Commit)
	}
	commit := info.Commit
	if commit == "" {
		commit = "development"
	}
	return fmt.Sprintf("%s (commit: %s, built at: %s)", info.Version, commit, info.BuildTime)
}

// UserAgent identifies outgoing HTTP requests.
func UserAgent() string {
	return "aws-costbot/" + Get().Version
}
