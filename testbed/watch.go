package testbed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/extramath/engine/core"
)

// Run loads and evaluates the rig at path once. The outcome is also fired as
// EVENT_CODE_RIG_LOADED followed by EVENT_CODE_RIG_EVALUATED, or as
// EVENT_CODE_RIG_FAILED.
func Run(path string) (*Report, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		core.EventFire(core.EVENT_CODE_RIG_FAILED, nil, core.EventContext{Path: path, Err: err})
		return nil, err
	}
	core.EventFire(core.EVENT_CODE_RIG_LOADED, nil, core.EventContext{Path: path, Data: cfg})

	report, err := Evaluate(cfg)
	if err != nil {
		core.EventFire(core.EVENT_CODE_RIG_FAILED, nil, core.EventContext{Path: path, Err: err})
		return nil, err
	}
	core.EventFire(core.EVENT_CODE_RIG_EVALUATED, nil, core.EventContext{
		RunID: report.RunID,
		Path:  path,
		Data:  report,
	})
	return report, nil
}

// Watcher re-runs a rig every time its file is written.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	done     chan struct{}
	stop     sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("failed to watch rig: %w", err)
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file instead of writing it, so the directory
	// is watched and events are filtered by name.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Start evaluates the rig once and then again after each change, until ctx is
// cancelled or EVENT_CODE_APPLICATION_QUIT is fired. Evaluation errors are
// reported through events and never stop the loop.
func (w *Watcher) Start(ctx context.Context) error {
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, w, w.onQuit)
	defer core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, w)
	defer w.fsnotify.Close()

	w.reload()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}
			if e.Op&fsnotify.Remove != 0 {
				core.LogWarn("rig %s was removed, waiting for it to come back", w.path)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return nil
			}
			core.LogError(err.Error())

		case <-w.done:
			return nil

		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		}
	}
}

func (w *Watcher) reload() {
	if _, err := Run(w.path); err != nil {
		core.LogError("rig %s: %s", w.path, err)
	}
}

func (w *Watcher) onQuit(code core.SystemEventCode, sender, listenerInst interface{}, data core.EventContext) bool {
	w.Stop()
	return false
}

// Stop ends a running Start loop. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stop.Do(func() { close(w.done) })
}
