package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the duplicate events editors emit for a single
// save (write + rename, or several short writes).
const debounceWindow = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk and delivers the
// merged result on Updates. Parse failures are logged and skipped, so a
// half-saved file never replaces a good tuning set.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching a tuning file. The file's directory is watched
// rather than the file itself, so editors that save via rename keep working.
//
// Parameters:
//   - path: path to the YAML tuning file
//
// Returns:
//   - *Watcher: the running watcher
//   - error: an error if the underlying filesystem watch cannot be created
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating tuning watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("error watching tuning directory: %w", err)
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		Updates: make(chan Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call more than once, and safe to call
// while a reload is in flight: Updates and Errors are owned and closed by
// the run goroutine once it drains out.
//
// Returns:
//   - error: an error from closing the underlying filesystem watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Updates)

	var lastEvent time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isTuningFile(event.Name) || filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent) < debounceWindow {
				continue
			}
			lastEvent = now

			tuning, err := Load(w.path)
			if err != nil {
				log.Printf("tuning reload skipped: %v", err)
				continue
			}
			select {
			case w.Updates <- tuning:
			default:
				// A pending update the consumer never drained is stale; drop
				// it in favor of the newest tuning.
				select {
				case <-w.Updates:
				default:
				}
				w.Updates <- tuning
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isTuningFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
