package shader

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/hello-gl/internal/logger"
)

// Watcher reports shader files that changed on disk.
// Events arrive on a background goroutine; the render loop collects them with
// Changed and recompiles on the GL thread.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewWatcher watches dir for shader edits. Watching the directory also
// catches files that editors replace by rename.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		done:    make(chan struct{}),
		pending: make(map[string]struct{}),
	}
	w.wg.Add(1)
	go w.run()

	logger.Info("watching shaders", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !IsShaderFile(event.Name) {
				continue
			}
			w.mu.Lock()
			w.pending[filepath.Clean(event.Name)] = struct{}{}
			w.mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("shader watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

// Changed returns, sorted, the shader files modified since the last call.
// It never blocks.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	sort.Strings(paths)
	return paths
}

// Close stops watching and waits for the event goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// IsShaderFile reports whether path has a GLSL extension the lessons use.
func IsShaderFile(path string) bool {
	switch filepath.Ext(path) {
	case ".vert", ".frag", ".glsl":
		return true
	}
	return false
}

// Matches reports whether any of the changed paths belongs to s inside dir.
func (s Source) Matches(dir string, changed []string) bool {
	vp, fp := s.Paths(dir)
	vp, fp = filepath.Clean(vp), filepath.Clean(fp)
	for _, c := range changed {
		if c == vp || c == fp {
			return true
		}
	}
	return false
}
