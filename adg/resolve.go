package adg

import (
	"os"
	"path/filepath"
	"strings"
)

// Path types stored in a FileRef's RelativePathType element
const (
	PathMissing        = 0
	PathExternal       = 1
	PathLibrary        = 2
	PathCurrentProject = 3
	PathCoreLibrary    = 5
	PathUserLibrary    = 6
)

// DefaultPathType is assumed when a FileRef carries no RelativePathType
const DefaultPathType = PathCoreLibrary

// FS is the filesystem probe used for existence checks and library
// detection. OSFS is the real one.
type FS interface {
	IsFile(path string) bool
	IsDir(path string) bool
	ListDirs(path string) ([]string, error)
}

// OSFS probes the local filesystem
type OSFS struct{}

func (OSFS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListDirs returns the names of the subdirectories of path
func (OSFS) ListDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Resolver turns stored sample paths into absolute paths.
//
// A Resolver is not safe for concurrent use while LibraryRoot is being
// changed; give each concurrent import its own Resolver.
type Resolver struct {
	LibraryRoot string // Core Library directory, may be empty
	UserLibrary string // User Library directory, may be empty
	FS          FS
}

// NewResolver returns a resolver on the real filesystem using the
// default User Library location.
func NewResolver(libraryRoot string) *Resolver {
	return &Resolver{
		LibraryRoot: libraryRoot,
		UserLibrary: DefaultUserLibrary(),
		FS:          OSFS{},
	}
}

// DefaultUserLibrary returns ~/Music/Ableton/User Library
func DefaultUserLibrary() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Music", "Ableton", "User Library")
}

// SetLibraryRoot changes the Core Library used by later imports
func (r *Resolver) SetLibraryRoot(path string) {
	r.LibraryRoot = path
}

// Resolve maps raw, stored with the given path type, to a best-effort
// absolute path. The result is not guaranteed to exist.
func (r *Resolver) Resolve(raw string, pathType int) string {
	switch pathType {
	case PathExternal:
		return raw

	case PathLibrary, PathCoreLibrary:
		if r.LibraryRoot == "" || !r.fs().IsDir(r.LibraryRoot) {
			return raw
		}
		rel := trimLeadingSeparator(raw)
		direct := filepath.Join(r.LibraryRoot, rel)
		if r.fs().IsFile(direct) {
			return direct
		}
		if samples := filepath.Join(r.LibraryRoot, "Samples", rel); r.fs().IsFile(samples) {
			return samples
		}
		return direct

	case PathUserLibrary:
		if r.UserLibrary == "" || !r.fs().IsDir(r.UserLibrary) {
			return raw
		}
		if p := filepath.Join(r.UserLibrary, trimLeadingSeparator(raw)); r.fs().IsFile(p) {
			return p
		}
	}

	// missing, current project, unknown, or no hit above
	return raw
}

// Exists reports whether path is an existing file
func (r *Resolver) Exists(path string) bool {
	return path != "" && r.fs().IsFile(path)
}

func (r *Resolver) fs() FS {
	if r.FS == nil {
		return OSFS{}
	}
	return r.FS
}

func trimLeadingSeparator(p string) string {
	p = filepath.FromSlash(p)
	if strings.HasPrefix(p, string(filepath.Separator)) {
		return p[1:]
	}
	return p
}
