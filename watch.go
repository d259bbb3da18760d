package sceneedit

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settingsDebounce is how long the file must stay quiet before a reload.
const settingsDebounce = 100 * time.Millisecond

// SettingsWatcher reloads a settings file whenever it changes on disk.
// Reloaded settings arrive on Updates; load failures arrive on Errors. Both
// channels are closed after Close.
type SettingsWatcher struct {
	Updates chan Settings
	Errors  chan error

	watcher *fsnotify.Watcher
	path    string
	closeCh chan struct{}
	once    sync.Once
}

// WatchSettings starts watching path. The parent directory is watched so
// editors that save by rename are picked up.
func WatchSettings(path string) (*SettingsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch settings %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch settings %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch settings %s: %w", path, err)
	}

	sw := &SettingsWatcher{
		Updates: make(chan Settings, 1),
		Errors:  make(chan error, 1),
		watcher: w,
		path:    abs,
		closeCh: make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Close stops the watcher.
func (w *SettingsWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *SettingsWatcher) run() {
	defer close(w.Updates)
	defer close(w.Errors)

	// Reload once the file has been quiet for settingsDebounce, so a
	// truncate-then-write save is read after the final write.
	timer := time.NewTimer(settingsDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(settingsDebounce)
		case <-timer.C:
			s, err := LoadSettings(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			w.sendUpdate(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendUpdate replaces any unread update so the receiver always sees the
// newest settings.
func (w *SettingsWatcher) sendUpdate(s Settings) {
	for {
		select {
		case w.Updates <- s:
			return
		case <-w.closeCh:
			return
		default:
		}
		select {
		case <-w.Updates:
		default:
		}
	}
}

func (w *SettingsWatcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
		logger.Warn("settings watcher error dropped", "err", err)
	}
}
