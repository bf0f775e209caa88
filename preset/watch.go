package preset

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"drumrack/debug"
)

// Watch monitors the scan and custom directories and signals on the
// returned channel when a preset file appears, disappears or is
// renamed, or when a watched folder is moved away. Signals coalesce: a pending one is not repeated. The
// channel is closed when ctx is done.
func (c *Catalog) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	roots := c.Dirs()
	if c.customDir != "" && isDir(c.customDir) {
		roots = append(roots, c.customDir)
	}

	dirs := watchedDirs{watcher: watcher, set: make(map[string]bool)}
	count := 0
	for _, root := range roots {
		count += dirs.addTree(root)
	}
	debug.Log("preset", "watching %d directories", count)

	changed := make(chan struct{}, 1)
	go func() {
		defer close(changed)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if dirs.handle(event) {
					select {
					case changed <- struct{}{}:
					default:
					}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				debug.Log("preset", "watcher error: %v", err)
			}
		}
	}()

	return changed, nil
}

// watchedDirs tracks the directories added to the watcher. inotify
// forgets a directory once it is moved away, so the set is kept here.
type watchedDirs struct {
	watcher *fsnotify.Watcher
	set     map[string]bool
}

// handle reports whether event affects the preset list
func (w *watchedDirs) handle(event fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	if event.Op&fsnotify.Create != 0 && isDir(event.Name) {
		w.addTree(event.Name)
		return true
	}

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 && w.forget(event.Name) {
		debug.Log("preset", "directory gone: %s", event.Name)
		return true
	}

	if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
		return false
	}
	return isPresetFile(event.Name)
}

// forget drops dir and everything beneath it from the set, reporting
// whether dir was being watched.
func (w *watchedDirs) forget(dir string) bool {
	dir = filepath.Clean(dir)
	if !w.set[dir] {
		return false
	}
	prefix := dir + string(filepath.Separator)
	for d := range w.set {
		if d == dir || strings.HasPrefix(d, prefix) {
			delete(w.set, d)
			// already gone from inotify's side, the error is expected
			_ = w.watcher.Remove(d)
		}
	}
	return true
}

// addTree watches root and every non-hidden directory beneath it
func (w *watchedDirs) addTree(root string) int {
	count := 0
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			debug.Log("preset", "failed to watch %s: %v", path, err)
			return nil
		}
		w.set[filepath.Clean(path)] = true
		count++
		return nil
	})
	return count
}

func isPresetFile(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, extADG) || strings.EqualFold(ext, extJSON)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
