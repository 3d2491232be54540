package buildinfo

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Defaults(t *testing.T) {
	d := Resolve(nil)
	assert.Equal(t, Data{Version: "N/A", Date: "N/A", Commit: "N/A"}, d)
}

func TestResolve_FromBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
		},
	}
	d := Resolve(info)
	assert.Equal(t, "v1.2.3", d.Version)
	assert.Equal(t, "abc123", d.Commit)
	assert.Equal(t, "2025-01-02T03:04:05Z", d.Date)
}

func TestResolve_LinkerWins(t *testing.T) {
	old := buildVersion
	buildVersion = "v9.9.9"
	t.Cleanup(func() { buildVersion = old })

	d := Resolve(&debug.BuildInfo{Main: debug.Module{Version: "v1.0.0"}})
	assert.Equal(t, "v9.9.9", d.Version)
}

func TestResolve_DevelIgnored(t *testing.T) {
	d := Resolve(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, "N/A", d.Version)
}

func TestPrintBuildData(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	assert.Contains(t, buf.String(), "Build version: ")
	assert.Contains(t, buf.String(), "Build commit: ")
}
