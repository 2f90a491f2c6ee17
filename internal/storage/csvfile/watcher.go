package csvfile

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the file must stay quiet after the last
// event before a change is reported. Editors and atomic renames fire
// several events per logical save.
const settleDelay = 250 * time.Millisecond

// Watcher reports changes to one library file. It watches the parent
// directory rather than the file itself so that atomic saves (write
// temp, rename over target) are seen as changes to the target.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	andThen func()

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// NewWatcher starts watching the library file at path and calls
// onChange after each settled change. Stop releases the watch.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch library directory: %w", err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		fsw:     fsw,
		andThen: onChange,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Stop ends the watch. Pending debounce timers are cancelled; the
// callback is not invoked after Stop returns.
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.bump()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// bump restarts the settle timer; the callback fires once the file has
// been quiet for settleDelay.
func (w *Watcher) bump() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(settleDelay, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.andThen()
	})
}
