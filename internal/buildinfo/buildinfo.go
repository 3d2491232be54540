// Package buildinfo holds version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/mailadmin/internal/buildinfo.buildVersion=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const notAvailable = "N/A"

// Data is the resolved build metadata.
type Data struct {
	Version string
	Date    string
	Commit  string
}

// Resolve merges linker values with the VCS stamp in info. Linker values
// win; anything still unknown is reported as "N/A".
func Resolve(info *debug.BuildInfo) Data {
	d := Data{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if info != nil {
		if d.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			d.Version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if d.Commit == "" {
					d.Commit = s.Value
				}
			case "vcs.time":
				if d.Date == "" {
					d.Date = s.Value
				}
			}
		}
	}
	if d.Version == "" {
		d.Version = notAvailable
	}
	if d.Date == "" {
		d.Date = notAvailable
	}
	if d.Commit == "" {
		d.Commit = notAvailable
	}
	return d
}

// PrintBuildData writes the build version, date and commit to w.
func PrintBuildData(w io.Writer) {
	info, _ := debug.ReadBuildInfo()
	d := Resolve(info)
	fmt.Fprintf(w, "Build version: %s\n", d.Version)
	fmt.Fprintf(w, "Build date: %s\n", d.Date)
	fmt.Fprintf(w, "Build commit: %s\n", d.Commit)
}
