package adg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLibraryPicksNewestWithCoreLibrary(t *testing.T) {
	fsys := mapFS{dirs: map[string][]string{
		"/Applications": {"Ableton Live 11 Suite.app", "Ableton Live 12 Suite.app", "Ableton Live 13 Beta.app", "Logic Pro.app"},
		"/Applications/Ableton Live 11 Suite.app/Contents/App-Resources/Core Library": nil,
		"/Applications/Ableton Live 12 Suite.app/Contents/App-Resources/Core Library": nil,
	}}

	assert.Equal(t,
		"/Applications/Ableton Live 12 Suite.app/Contents/App-Resources/Core Library",
		DetectLibraryIn(fsys, "/Applications"))
}

func TestDetectLibraryComparesVersionsNumerically(t *testing.T) {
	fsys := mapFS{dirs: map[string][]string{
		"/Applications": {"Ableton Live 9 Suite.app", "Ableton Live 12 Suite.app", "Ableton Live.app"},
		"/Applications/Ableton Live 9 Suite.app/Contents/App-Resources/Core Library":  nil,
		"/Applications/Ableton Live 12 Suite.app/Contents/App-Resources/Core Library": nil,
		"/Applications/Ableton Live.app/Contents/App-Resources/Core Library":          nil,
	}}

	assert.Equal(t,
		"/Applications/Ableton Live 12 Suite.app/Contents/App-Resources/Core Library",
		DetectLibraryIn(fsys, "/Applications"))
}

func TestLiveVersion(t *testing.T) {
	assert.Equal(t, 12, liveVersion("Ableton Live 12 Suite.app"))
	assert.Equal(t, 9, liveVersion("Ableton Live 9 Lite.app"))
	assert.Equal(t, 0, liveVersion("Ableton Live.app"))
}

func TestDetectLibraryNone(t *testing.T) {
	fsys := mapFS{dirs: map[string][]string{"/Applications": {"Logic Pro.app"}}}
	assert.Equal(t, "", DetectLibraryIn(fsys, "/Applications"))
	assert.Equal(t, "", DetectLibraryIn(fsys, "/Nowhere"))
}

func TestDetectLibraryOnDisk(t *testing.T) {
	apps := t.TempDir()
	touch(t, filepath.Join(apps, "Ableton Live 12 Lite.app", "Contents", "App-Resources", "Core Library", ".keep"))
	touch(t, filepath.Join(apps, "Ableton Live 10.app", "README"))

	assert.Equal(t,
		filepath.Join(apps, "Ableton Live 12 Lite.app", "Contents", "App-Resources", "Core Library"),
		DetectLibraryIn(OSFS{}, apps))
}
