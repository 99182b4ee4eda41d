package storage

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"careerpro/internal/errors"
)

// SnapshotWatcher watches the snapshot file and invokes a callback when it
// is rewritten by another process (a second instance importing, or a manual
// edit). Events are debounced: editors and atomic renames produce bursts.
type SnapshotWatcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	debounceTimer *time.Timer

	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}

	reloadCallback func()
	logger         *errors.Logger

	running bool
}

// NewSnapshotWatcher creates a watcher for the given snapshot path.
func NewSnapshotWatcher(path string, debounceDelay time.Duration, reloadCallback func(), logger *errors.Logger) *SnapshotWatcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}
	return &SnapshotWatcher{
		path:           path,
		debounceDelay:  debounceDelay,
		stopChan:       make(chan struct{}),
		reloadCallback: reloadCallback,
		logger:         logger,
	}
}

// Start begins watching. The parent directory is watched rather than the
// file itself so atomic write-then-rename saves are observed.
func (sw *SnapshotWatcher) Start() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.running {
		return fmt.Errorf("snapshot watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(sw.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(sw.path), err)
	}

	sw.fsWatcher = watcher
	sw.running = true
	go sw.watchLoop()

	if sw.logger != nil {
		sw.logger.Info("Snapshot watcher started",
			"path", sw.path,
			"debounce_delay", sw.debounceDelay)
	}
	return nil
}

// Stop ends watching and releases the file system watcher.
func (sw *SnapshotWatcher) Stop() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if !sw.running {
		return
	}
	close(sw.stopChan)
	if sw.debounceTimer != nil {
		sw.debounceTimer.Stop()
	}
	if err := sw.fsWatcher.Close(); err != nil && sw.logger != nil {
		sw.logger.LogError(err, "Failed to close snapshot watcher")
	}
	sw.running = false
}

func (sw *SnapshotWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-sw.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(sw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			sw.scheduleReload()

		case err, ok := <-sw.fsWatcher.Errors:
			if !ok {
				return
			}
			if sw.logger != nil {
				sw.logger.LogError(err, "Snapshot watcher error")
			}

		case <-sw.stopChan:
			return
		}
	}
}

func (sw *SnapshotWatcher) scheduleReload() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.debounceTimer != nil {
		sw.debounceTimer.Stop()
	}
	sw.debounceTimer = time.AfterFunc(sw.debounceDelay, func() {
		if sw.logger != nil {
			sw.logger.Debug("Snapshot changed externally, reloading",
				"path", sw.path)
		}
		sw.reloadCallback()
	})
}
