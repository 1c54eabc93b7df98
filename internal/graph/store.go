package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatching is returned by Watch when the store is already watching.
var ErrWatching = errors.New("graph store is already watching")

// Store serves the current graph to concurrent readers and reloads it
// from disk on demand or when the file changes.
type Store struct {
	mu    sync.RWMutex
	graph Graph
	path  string
	log   *slog.Logger

	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Open loads the graph at path. A load error is returned, but the store
// is still usable and serves an empty graph describing the failure.
func Open(path string, log *slog.Logger) (*Store, error) {
	s := &Store{path: path, log: log}
	err := s.Reload()
	return s, err
}

// Path is the graph file the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Graph returns the current graph. Callers must not modify it.
func (s *Store) Graph() Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph
}

// Reload reads the graph file again. On failure the previous graph is
// replaced by an empty one carrying the error message.
func (s *Store) Reload() error {
	g, err := Load(s.path)

	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()

	if err != nil {
		s.log.Error("graph load failed", "path", s.path, "error", err)
		return err
	}

	detached := 0
	for _, n := range g.Nodes {
		for _, e := range n.Connections {
			if e.Detached {
				detached++
				s.log.Debug("detached edge", "from", e.From, "to", e.To)
			}
		}
	}
	s.log.Info("graph loaded", "path", s.path, "nodes", len(g.Nodes), "detached_edges", detached)
	return nil
}

// Watch reloads the graph whenever its file is written or replaced, until
// ctx is done or Stop is called. The parent directory is watched so that
// editors that save by renaming are noticed.
func (s *Store) Watch(ctx context.Context) error {
	if s.watcher != nil {
		return ErrWatching
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	s.watcher = w
	s.cancel = cancel

	target := filepath.Clean(s.path)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-watchCtx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					s.log.Debug("graph file changed", "op", ev.Op.String())
					if err := s.reloadWithRetry(watchCtx); err != nil {
						s.log.Warn("graph reload gave up", "attempts", maxReloadAttempts, "error", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("graph watcher error", "error", err)
			}
		}
	}()
	return nil
}

// Stop ends watching and waits for the watcher goroutine to exit. The
// store may be watched again afterwards.
func (s *Store) Stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
}
