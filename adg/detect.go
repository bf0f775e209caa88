package adg

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultAppsDir is where Live installations are searched for
const DefaultAppsDir = "/Applications"

const (
	livePattern     = "Ableton Live*"
	coreLibraryPath = "Contents/App-Resources/Core Library"
)

// DetectLibrary looks for the newest Live installation under
// DefaultAppsDir and returns its Core Library, or "" if none is found.
func DetectLibrary() string {
	return DetectLibraryIn(OSFS{}, DefaultAppsDir)
}

// DetectLibraryIn scans appsDir for "Ableton Live*" directories and
// returns the Core Library of the highest version that has it. Equal
// versions fall back to name order.
func DetectLibraryIn(fsys FS, appsDir string) string {
	names, err := fsys.ListDirs(appsDir)
	if err != nil {
		return ""
	}

	var installs []string
	for _, name := range names {
		if ok, _ := filepath.Match(livePattern, name); ok {
			installs = append(installs, name)
		}
	}
	sort.Slice(installs, func(i, j int) bool {
		vi, vj := liveVersion(installs[i]), liveVersion(installs[j])
		if vi != vj {
			return vi < vj
		}
		return installs[i] < installs[j]
	})

	for i := len(installs) - 1; i >= 0; i-- {
		lib := filepath.Join(appsDir, installs[i], filepath.FromSlash(coreLibraryPath))
		if fsys.IsDir(lib) {
			return lib
		}
	}
	return ""
}

// liveVersion returns the major version in names like
// "Ableton Live 12 Suite.app", or 0 if there is none.
func liveVersion(name string) int {
	rest := strings.TrimLeft(strings.TrimPrefix(name, "Ableton Live"), " ")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0
	}
	return v
}
