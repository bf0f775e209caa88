// Package preset keeps the browsable list of drum kit presets: .adg
// files found under the scan directories plus custom JSON presets.
package preset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"drumrack/debug"
	"drumrack/kit"
)

const (
	extADG  = ".adg"
	extJSON = ".json"
)

// Importer turns a preset file into a kit
type Importer interface {
	ParseFile(path string) kit.Kit
}

// Entry is one preset in the catalog
type Entry struct {
	Name   string
	Path   string
	Custom bool
}

// Catalog lists presets and tracks the one currently loaded.
// It is not safe for concurrent use.
type Catalog struct {
	importer  Importer
	dirs      []string
	customDir string
	entries   []Entry
	current   int
	kit       kit.Kit

	// OnLoaded is called after every successful Load
	OnLoaded func(kit.Kit)
}

// NewCatalog creates an empty catalog. customDir may be empty.
func NewCatalog(importer Importer, customDir string) *Catalog {
	return &Catalog{
		importer:  importer,
		customDir: customDir,
		current:   -1,
	}
}

// AddDir adds a scan directory. Paths that are not directories are ignored.
func (c *Catalog) AddDir(dir string) bool {
	if !isDir(dir) {
		debug.Log("preset", "addDir: %s is not a directory", dir)
		return false
	}
	for _, d := range c.dirs {
		if d == dir {
			return true
		}
	}
	c.dirs = append(c.dirs, dir)
	debug.Log("preset", "addDir: %s", dir)
	return true
}

// ClearDirs removes every scan directory
func (c *Catalog) ClearDirs() {
	c.dirs = nil
}

// Dirs returns the scan directories
func (c *Catalog) Dirs() []string {
	return append([]string(nil), c.dirs...)
}

// CustomDir returns the custom preset directory
func (c *Catalog) CustomDir() string {
	return c.customDir
}

// Scan rebuilds the preset list, sorted by name ignoring case. The
// current selection follows its file if it is still present.
func (c *Catalog) Scan() {
	var currentPath string
	if c.current >= 0 && c.current < len(c.entries) {
		currentPath = c.entries[c.current].Path
	}

	c.entries = nil
	debug.Log("preset", "scan: %d directories", len(c.dirs))

	for _, dir := range c.dirs {
		files := findFiles(dir, extADG)
		debug.Log("preset", "scan: %s found %d %s files", dir, len(files), extADG)
		for _, f := range files {
			c.entries = append(c.entries, Entry{Name: kit.Stem(f), Path: f})
		}
	}

	if c.customDir != "" && isDir(c.customDir) {
		for _, f := range findFiles(c.customDir, extJSON) {
			c.entries = append(c.entries, Entry{Name: kit.Stem(f), Path: f, Custom: true})
		}
	}

	sort.SliceStable(c.entries, func(i, j int) bool {
		return strings.ToLower(c.entries[i].Name) < strings.ToLower(c.entries[j].Name)
	})

	c.current = -1
	for i, e := range c.entries {
		if currentPath != "" && e.Path == currentPath {
			c.current = i
			break
		}
	}

	debug.Log("preset", "scan: total presets found = %d", len(c.entries))
}

// Len returns the number of presets
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the preset list
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Name returns the name of preset i, or "" if out of range
func (c *Catalog) Name(i int) string {
	if i < 0 || i >= len(c.entries) {
		return ""
	}
	return c.entries[i].Name
}

// Current returns the index of the loaded preset, -1 if none
func (c *Catalog) Current() int {
	return c.current
}

// Kit returns the loaded kit
func (c *Catalog) Kit() kit.Kit {
	return c.kit
}

// Load imports preset i and makes it current
func (c *Catalog) Load(i int) bool {
	if i < 0 || i >= len(c.entries) {
		debug.Log("preset", "load: index %d out of range (size=%d)", i, len(c.entries))
		return false
	}

	e := c.entries[i]
	debug.Log("preset", "load: index=%d name=%s file=%s", i, e.Name, e.Path)

	if e.Custom {
		k, err := LoadCustom(e.Path)
		if err != nil {
			debug.Log("preset", "load: %v", err)
			return false
		}
		c.kit = k
	} else {
		c.kit = c.importer.ParseFile(e.Path)
		debug.Log("preset", "load: parsed kit has %d mappings", len(c.kit.Mappings))
	}

	c.current = i

	if c.OnLoaded != nil {
		c.OnLoaded(c.kit)
	}
	return true
}

// Next loads the following preset, wrapping to the first
func (c *Catalog) Next() bool {
	if len(c.entries) == 0 {
		return false
	}
	next := c.current + 1
	if next >= len(c.entries) {
		next = 0
	}
	return c.Load(next)
}

// Previous loads the preceding preset, wrapping to the last
func (c *Catalog) Previous() bool {
	if len(c.entries) == 0 {
		return false
	}
	prev := c.current - 1
	if prev < 0 {
		prev = len(c.entries) - 1
	}
	return c.Load(prev)
}

// IndexOf returns the index of the first preset whose name starts with
// prefix (case-insensitive), or -1.
func (c *Catalog) IndexOf(prefix string) int {
	prefix = strings.ToLower(prefix)
	for i, e := range c.entries {
		if strings.HasPrefix(strings.ToLower(e.Name), prefix) {
			return i
		}
	}
	return -1
}

// findFiles returns every file under dir with extension ext, in lexical order
func findFiles(dir, ext string) []string {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		debug.Log("preset", "walk %s: %v", dir, err)
	}
	return files
}
